// Package demoscene builds the four hard-coded built-in scenes selected
// by Config.SceneIndex 0-3 (spec.md §6). These are CLI glue, not core
// behavior (spec.md §1 lists "hard-coded demo scene factories" as an
// external collaborator), grounded on the shape and naming of the
// teacher's own pkg/scene/default_scene.go and pkg/scene/cornell-style
// builders.
package demoscene

import (
	"fmt"

	"mobilert/pkg/camera"
	"mobilert/pkg/core"
	"mobilert/pkg/geometry"
	"mobilert/pkg/light"
	"mobilert/pkg/sampler"
	"mobilert/pkg/scene"
)

// Scene bundles a built Scene with the camera its geometry was laid out
// for, since a demo scene and its camera placement are designed together.
type Scene struct {
	Scene  *scene.Scene
	Camera camera.Camera
}

// Build returns the built-in scene for index (0-3), or an error if index
// is out of the built-in range (spec.md §6: "scene_index 0-3 built-in").
func Build(index int, imageWidth, imageHeight int) (Scene, error) {
	switch index {
	case 0:
		return cornellBox(imageWidth, imageHeight), nil
	case 1:
		return spheresOnPlane(imageWidth, imageHeight), nil
	case 2:
		return singleTriangle(imageWidth, imageHeight), nil
	case 3:
		return glassAndMirror(imageWidth, imageHeight), nil
	default:
		return Scene{}, fmt.Errorf("demoscene: scene index %d has no built-in scene", index)
	}
}

func aspectCamera(imageWidth, imageHeight int, position, lookAt, up core.Vec3, vFovDeg float32) camera.Camera {
	aspect := float32(imageWidth) / float32(imageHeight)
	vFov := vFovDeg * (3.14159265 / 180)
	hFov := vFov * aspect
	return camera.NewPerspective(position, lookAt, up, hFov, vFov)
}

// cornellBox is the classic five-wall box with an area light in the
// ceiling and two spheres: planes for the walls, a triangle for the
// light's geometry.
func cornellBox(imageWidth, imageHeight int) Scene {
	s := scene.New()

	red := s.AddMaterial(core.NewMaterial(core.NewVec3(0.65, 0.05, 0.05), core.Vec3{}, core.Vec3{}, core.Vec3{}))
	green := s.AddMaterial(core.NewMaterial(core.NewVec3(0.12, 0.45, 0.15), core.Vec3{}, core.Vec3{}, core.Vec3{}))
	white := s.AddMaterial(core.NewMaterial(core.NewVec3(0.73, 0.73, 0.73), core.Vec3{}, core.Vec3{}, core.Vec3{}))
	light_ := s.AddMaterial(core.NewMaterial(core.Vec3{}, core.Vec3{}, core.Vec3{}, core.NewVec3(15, 15, 15)))

	s.AddPlane(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), white)) // floor
	s.AddPlane(geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), white)) // ceiling
	s.AddPlane(geometry.NewPlane(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1), white)) // back
	s.AddPlane(geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), red))   // left
	s.AddPlane(geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), green)) // right

	s.AddSphere(geometry.NewSphere(core.NewVec3(-0.4, -0.6, -1.2), 0.4, white))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0.4, -0.7, -0.6), 0.3, white))

	ceilLightA := core.NewVec3(-0.3, 0.99, -1.3)
	ceilLightAB := core.NewVec3(0.6, 0, 0)
	ceilLightAC := core.NewVec3(0, 0, 0.6)
	s.AddTriangle(geometry.NewTriangle(ceilLightA, ceilLightA.Add(ceilLightAB), ceilLightA.Add(ceilLightAC), light_))
	s.AddLight(light.NewAreaLight(ceilLightA, ceilLightAB, ceilLightAC, core.NewVec3(15, 15, 15), sampler.NewMersenneTwister(1)))

	cam := aspectCamera(imageWidth, imageHeight, core.NewVec3(0, 0, 2.5), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 40)
	return Scene{Scene: s, Camera: cam}
}

// spheresOnPlane is a simple ground-plane-plus-spheres scene lit by a
// single point light, useful for quick NoShadows/Whitted smoke tests.
func spheresOnPlane(imageWidth, imageHeight int) Scene {
	s := scene.New()

	ground := s.AddMaterial(core.NewMaterial(core.NewVec3(0.5, 0.5, 0.5), core.Vec3{}, core.Vec3{}, core.Vec3{}))
	blue := s.AddMaterial(core.NewMaterial(core.NewVec3(0.2, 0.3, 0.8), core.Vec3{}, core.Vec3{}, core.Vec3{}))
	gold := s.AddMaterial(core.NewMaterial(core.NewVec3(0.3, 0.2, 0.05), core.NewVec3(0.8, 0.6, 0.2), core.Vec3{}, core.Vec3{}))

	s.AddPlane(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), ground))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-0.7, 0, -2), 0.5, blue))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0.7, 0.2, -2.5), 0.7, gold))
	s.AddLight(light.NewPointLight(core.NewVec3(2, 3, 1), core.NewVec3(30, 30, 30)))

	cam := aspectCamera(imageWidth, imageHeight, core.NewVec3(0, 1, 3), core.NewVec3(0, 0, -2), core.NewVec3(0, 1, 0), 50)
	return Scene{Scene: s, Camera: cam}
}

// singleTriangle is the minimal possible scene: one triangle and one
// point light, used for quick BVH/grid sanity checks.
func singleTriangle(imageWidth, imageHeight int) Scene {
	s := scene.New()
	white := s.AddMaterial(core.NewMaterial(core.NewVec3(0.8, 0.8, 0.8), core.Vec3{}, core.Vec3{}, core.Vec3{}))

	s.AddTriangle(geometry.NewTriangle(
		core.NewVec3(-1, -1, -3),
		core.NewVec3(1, -1, -3),
		core.NewVec3(0, 1, -3),
		white,
	))
	s.AddLight(light.NewPointLight(core.NewVec3(0, 2, 0), core.NewVec3(20, 20, 20)))

	cam := aspectCamera(imageWidth, imageHeight, core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -3), core.NewVec3(0, 1, 0), 60)
	return Scene{Scene: s, Camera: cam}
}

// glassAndMirror exercises Whitted's specular reflection and
// transmission arms against a diffuse backdrop.
func glassAndMirror(imageWidth, imageHeight int) Scene {
	s := scene.New()

	white := s.AddMaterial(core.NewMaterial(core.NewVec3(0.7, 0.7, 0.7), core.Vec3{}, core.Vec3{}, core.Vec3{}))
	mirror := s.AddMaterial(core.NewMaterial(core.Vec3{}, core.NewVec3(0.9, 0.9, 0.9), core.Vec3{}, core.Vec3{}))
	glassMat := core.NewMaterial(core.Vec3{}, core.Vec3{}, core.NewVec3(0.9, 0.9, 0.9), core.Vec3{})
	glassMat.RefractiveIdx = 1.5
	glass := s.AddMaterial(glassMat)

	s.AddPlane(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), white))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-0.8, 0, -2.5), 0.6, mirror))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0.8, 0, -2.5), 0.6, glass))
	s.AddLight(light.NewPointLight(core.NewVec3(0, 3, 1), core.NewVec3(25, 25, 25)))

	cam := aspectCamera(imageWidth, imageHeight, core.NewVec3(0, 0.5, 2), core.NewVec3(0, 0, -2.5), core.NewVec3(0, 1, 0), 45)
	return Scene{Scene: s, Camera: cam}
}
