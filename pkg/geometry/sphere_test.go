package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mobilert/pkg/core"
	"mobilert/pkg/geometry"
)

func TestSphereHitFromOutside(t *testing.T) {
	sph := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, 0)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))

	isect := core.NewIntersection(ray)
	hit := sph.Intersect(ray, &isect, core.NilPrimitiveRef)

	assert.True(t, hit)
	assert.InDelta(t, float32(4), isect.Length, 1e-4)
	assert.True(t, isect.Normal.IsUnit(1e-5))
	assert.InDelta(t, float32(-1), isect.Normal.Z, 1e-4)
}

func TestSphereMissesWhenRayPassesBy(t *testing.T) {
	sph := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, 0)
	ray := core.NewRay(core.NewVec3(10, 0, 0), core.NewVec3(0, 0, 1))

	isect := core.NewIntersection(ray)
	hit := sph.Intersect(ray, &isect, core.NilPrimitiveRef)
	assert.False(t, hit)
}

func TestSphereFromInsideUsesFarRoot(t *testing.T) {
	sph := geometry.NewSphere(core.Vec3{}, 2, 0)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0))

	isect := core.NewIntersection(ray)
	hit := sph.Intersect(ray, &isect, core.NilPrimitiveRef)

	assert.True(t, hit)
	assert.InDelta(t, float32(2), isect.Length, 1e-4)
}

func TestSphereBoundingBox(t *testing.T) {
	sph := geometry.NewSphere(core.NewVec3(1, 2, 3), 2, 0)
	box := sph.BoundingBox()
	assert.Equal(t, core.NewVec3(-1, 0, 1), box.Min)
	assert.Equal(t, core.NewVec3(3, 4, 5), box.Max)
}

func TestSphereIntersectAABB(t *testing.T) {
	sph := geometry.NewSphere(core.Vec3{}, 1, 0)
	touching := core.NewAABB(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(2, 2, 2))
	distant := core.NewAABB(core.NewVec3(10, 10, 10), core.NewVec3(11, 11, 11))
	assert.True(t, sph.IntersectAABB(touching))
	assert.False(t, sph.IntersectAABB(distant))
}
