package camera_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobilert/pkg/camera"
	"mobilert/pkg/core"
)

func TestNewFrameIsOrthonormal(t *testing.T) {
	f := camera.NewFrame(core.NewVec3(0, 0, -5), core.Vec3{}, core.NewVec3(0, 1, 0))

	assert.True(t, f.Direction.IsUnit(1e-5))
	assert.True(t, f.Right.IsUnit(1e-5))
	assert.True(t, f.Up.IsUnit(1e-5))
	assert.InDelta(t, float32(0), f.Direction.Dot(f.Right), 1e-5)
	assert.InDelta(t, float32(0), f.Direction.Dot(f.Up), 1e-5)
	assert.InDelta(t, float32(0), f.Right.Dot(f.Up), 1e-5)
}

func TestPerspectiveGenerateRayIsNormalized(t *testing.T) {
	cam := camera.NewPerspective(core.NewVec3(0, 0, -5), core.Vec3{}, core.NewVec3(0, 1, 0), 1.0, 1.0)
	ray := cam.GenerateRay(0.5, 0.5, 0, 0)
	assert.True(t, ray.Direction.IsUnit(1e-5))
	assert.Equal(t, 1, ray.Depth)
}

func TestPerspectiveCenterPixelPointsTowardLookAt(t *testing.T) {
	cam := camera.NewPerspective(core.NewVec3(0, 0, -5), core.Vec3{}, core.NewVec3(0, 1, 0), 1.0, 1.0)
	ray := cam.GenerateRay(0.5, 0.5, 0, 0)
	assert.InDelta(t, float32(0), ray.Direction.X, 1e-4)
	assert.InDelta(t, float32(0), ray.Direction.Y, 1e-4)
	assert.Greater(t, ray.Direction.Z, float32(0))
}

func TestPerspectiveAABBIsDegenerateAtEye(t *testing.T) {
	cam := camera.NewPerspective(core.NewVec3(1, 2, 3), core.Vec3{}, core.NewVec3(0, 1, 0), 1, 1)
	box := cam.AABB()
	assert.Equal(t, box.Min, box.Max)
	assert.Equal(t, core.NewVec3(1, 2, 3), box.Min)
}

func TestOrthographicGenerateRayUsesSharedDirection(t *testing.T) {
	cam := camera.NewOrthographic(core.NewVec3(0, 0, -5), core.Vec3{}, core.NewVec3(0, 1, 0), 2, 2)
	a := cam.GenerateRay(0.1, 0.1, 0, 0)
	b := cam.GenerateRay(0.9, 0.9, 0, 0)
	assert.Equal(t, a.Direction, b.Direction)
	assert.NotEqual(t, a.Origin, b.Origin)
}

func TestLoadCamParsesGrammarAndInvertsX(t *testing.T) {
	input := strings.Join([]string{
		"t perspective",
		"p 1 2 3",
		"l 0 0 0",
		"u 0 1 0",
		"f 45 30",
	}, "\n")

	def, err := camera.LoadCam(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "perspective", def.Type)
	assert.Equal(t, core.NewVec3(-1, 2, 3), def.Position)
	assert.Equal(t, core.NewVec3(0, 0, 0), def.LookAt)
	assert.Equal(t, core.NewVec3(0, 1, 0), def.Up)
	assert.True(t, def.HasFov)
	assert.Equal(t, float32(45), def.HFovDeg)
	assert.Equal(t, float32(30), def.VFovDeg)
}

func TestLoadCamSkipsUnknownKeys(t *testing.T) {
	input := "t perspective\nx 1 2 3\np 0 0 0\nl 0 0 1\nu 0 1 0\n"
	def, err := camera.LoadCam(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "perspective", def.Type)
}

func TestLoadCamMissingTypeIsError(t *testing.T) {
	_, err := camera.LoadCam(strings.NewReader("p 0 0 0\n"))
	assert.Error(t, err)
}

func TestBuildPerspectiveScalesHFovByAspect(t *testing.T) {
	def := camera.Definition{
		Type: "perspective", Position: core.NewVec3(0, 0, -5),
		LookAt: core.Vec3{}, Up: core.NewVec3(0, 1, 0),
		HFovDeg: 45, VFovDeg: 45, HasFov: true,
	}
	cam := camera.BuildPerspective(def, 1920, 1080)
	assert.NotNil(t, cam)
	assert.InDelta(t, float32(45*math.Pi/180*1920.0/1080.0), cam.HFov, 1e-5)
	assert.InDelta(t, float32(45*math.Pi/180), cam.VFov, 1e-5)
}
