package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mobilert/pkg/core"
	"mobilert/pkg/geometry"
	"mobilert/pkg/scene"
)

func TestAddMaterialDeduplicates(t *testing.T) {
	s := scene.New()
	a := s.AddMaterial(core.NewMaterial(core.NewVec3(0.1, 0.2, 0.3), core.Vec3{}, core.Vec3{}, core.Vec3{}))
	b := s.AddMaterial(core.NewMaterial(core.NewVec3(0.1, 0.2, 0.3), core.Vec3{}, core.Vec3{}, core.Vec3{}))
	c := s.AddMaterial(core.NewMaterial(core.NewVec3(0.9, 0.2, 0.3), core.Vec3{}, core.Vec3{}, core.Vec3{}))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, s.Materials, 2)
}

func TestMaterialOutOfRangeReturnsZeroValue(t *testing.T) {
	s := scene.New()
	assert.Equal(t, core.Material{}, s.Material(-1))
	assert.Equal(t, core.Material{}, s.Material(5))
}

func TestAddPrimitivesAssignSequentialRefs(t *testing.T) {
	s := scene.New()
	t1 := s.AddTriangle(geometry.NewTriangle(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 0))
	t2 := s.AddTriangle(geometry.NewTriangle(core.NewVec3(5, 0, 0), core.NewVec3(6, 0, 0), core.NewVec3(5, 1, 0), 0))
	sp := s.AddSphere(geometry.NewSphere(core.Vec3{}, 1, 0))
	pl := s.AddPlane(geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), 0))

	assert.Equal(t, core.PrimitiveRef{Kind: core.KindTriangle, Index: 0, Valid: true}, t1)
	assert.Equal(t, core.PrimitiveRef{Kind: core.KindTriangle, Index: 1, Valid: true}, t2)
	assert.Equal(t, core.PrimitiveRef{Kind: core.KindSphere, Index: 0, Valid: true}, sp)
	assert.Equal(t, core.PrimitiveRef{Kind: core.KindPlane, Index: 0, Valid: true}, pl)
	assert.Equal(t, 4, s.PrimitiveCount())
}

func TestTraceFindsNearestAcrossPrimitiveKinds(t *testing.T) {
	s := scene.New()
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, 10), 1, 0))
	s.AddTriangle(geometry.NewTriangle(
		core.NewVec3(-1, -1, 3), core.NewVec3(1, -1, 3), core.NewVec3(-1, 1, 3), 0,
	))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	isect := s.Trace(core.NewIntersection(ray), ray)

	assert.True(t, isect.Hit())
	assert.InDelta(t, float32(3), isect.Length, 1e-3)
}

func TestShadowTraceExitsOnFirstHit(t *testing.T) {
	s := scene.New()
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, 0))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	isect := s.ShadowTrace(core.NewIntersection(ray), ray)
	assert.True(t, isect.Hit())
}

func TestBoundsUnionsAllPrimitives(t *testing.T) {
	s := scene.New()
	s.AddSphere(geometry.NewSphere(core.NewVec3(10, 0, 0), 1, 0))
	s.AddTriangle(geometry.NewTriangle(core.NewVec3(-10, 0, 0), core.NewVec3(-9, 0, 0), core.NewVec3(-10, 1, 0), 0))

	box := s.Bounds()
	assert.LessOrEqual(t, box.Min.X, float32(-10))
	assert.GreaterOrEqual(t, box.Max.X, float32(11))
}

func TestBoundsOfEmptySceneIsZeroValue(t *testing.T) {
	s := scene.New()
	assert.Equal(t, core.AABB{}, s.Bounds())
}
