package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mobilert/pkg/core"
	"mobilert/pkg/geometry"
)

// TestTriangleHit implements spec.md §8 end-to-end scenario 3: a single
// triangle hit by a ray pointed at its vertex (0,0,0) hits at length ~= 2.
func TestTriangleHit(t *testing.T) {
	tri := geometry.NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1, 0),
		0,
	)

	origin := core.NewVec3(2, 0, 0)
	dir := core.NewVec3(0, 0, 0).Sub(origin).Normalize()
	ray := core.NewRay(origin, dir)

	isect := core.NewIntersection(ray)
	ref := core.PrimitiveRef{Kind: core.KindTriangle, Index: 0, Valid: true}
	hit := tri.Intersect(ray, &isect, ref)

	assert.True(t, hit)
	assert.InDelta(t, float32(2), isect.Length, 1e-4)
}

// TestTriangleMiss implements spec.md §8 end-to-end scenario 4: nudging
// the ray direction off the triangle's surface misses entirely.
func TestTriangleMiss(t *testing.T) {
	tri := geometry.NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1, 0),
		0,
	)

	origin := core.NewVec3(2, 0, 0)
	dir := core.NewVec3(0, 1.000001, 0).Sub(origin).Normalize()
	ray := core.NewRay(origin, dir)

	isect := core.NewIntersection(ray)
	ref := core.PrimitiveRef{Kind: core.KindTriangle, Index: 0, Valid: true}
	hit := tri.Intersect(ray, &isect, ref)

	assert.False(t, hit)
}

func TestTriangleDefaultNormal(t *testing.T) {
	tri := geometry.NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		0,
	)
	ray := core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1))
	isect := core.NewIntersection(ray)
	hit := tri.Intersect(ray, &isect, core.NilPrimitiveRef)
	assert.True(t, hit)
	assert.True(t, isect.Normal.IsUnit(1e-5))
}

func TestTriangleSelfIntersectionSuppressed(t *testing.T) {
	tri := geometry.NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		0,
	)
	ref := core.PrimitiveRef{Kind: core.KindTriangle, Index: 0, Valid: true}
	ray := core.NewRayFrom(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1), ref, 1)

	isect := core.NewIntersection(ray)
	hit := tri.Intersect(ray, &isect, ref)
	assert.False(t, hit, "a ray sourced from its own hit primitive must never report that primitive again")
}

func TestTriangleBoundingBox(t *testing.T) {
	tri := geometry.NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		0,
	)
	box := tri.BoundingBox()
	assert.Equal(t, core.NewVec3(0, 0, 0), box.Min)
	assert.Equal(t, core.NewVec3(2, 2, 0), box.Max)
}

func TestTriangleIntersectAABB(t *testing.T) {
	tri := geometry.NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		0,
	)
	overlapping := core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
	distant := core.NewAABB(core.NewVec3(100, 100, 100), core.NewVec3(101, 101, 101))
	assert.True(t, tri.IntersectAABB(overlapping))
	assert.False(t, tri.IntersectAABB(distant))
}
