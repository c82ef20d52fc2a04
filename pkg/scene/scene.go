package scene

import (
	"github.com/filiptrplan/zharko/pkg/core"
	"github.com/filiptrplan/zharko/pkg/geometry"
	"github.com/filiptrplan/zharko/pkg/material"
	"github.com/filiptrplan/zharko/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera      *renderer.Camera
	World       *geometry.HittableList
	TopColor    core.Vec3 // Sky gradient color straight up
	BottomColor core.Vec3 // Sky gradient color at the horizon
	Sampling    renderer.SamplingConfig
}

// GetCamera implements the renderer Scene interface
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors implements the renderer Scene interface
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetWorld implements the renderer Scene interface
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

// mustSphere builds a sphere for the built-in scenes, where the geometry
// is known to be valid
func mustSphere(center core.Vec3, radius float64, mat core.Material) *geometry.Sphere {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		panic(err)
	}
	return sphere
}

// mustCamera builds a camera for the built-in scenes
func mustCamera(config renderer.CameraConfig) *renderer.Camera {
	camera, err := renderer.NewCamera(config)
	if err != nil {
		panic(err)
	}
	return camera
}

// skyBlue and white are the classic sky gradient endpoints
var (
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
	white   = core.NewVec3(1.0, 1.0, 1.0)
)

// NewDefaultScene creates the default scene: a diffuse ground sphere with
// one diffuse, one glass and one fuzzy metal sphere, viewed with a slight
// depth-of-field blur
func NewDefaultScene() *Scene {
	camera := mustCamera(renderer.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  0.6,
		FocusDistance: 0, // Focus on the look-at point
	})

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	world := geometry.NewHittableList(
		mustSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		mustSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		mustSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		mustSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return &Scene{
		Camera:      camera,
		World:       world,
		TopColor:    skyBlue,
		BottomColor: white,
		Sampling:    renderer.DefaultSamplingConfig(),
	}
}

// NewGradientScene creates an empty scene showing only the sky gradient
func NewGradientScene() *Scene {
	camera := mustCamera(renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	})

	return &Scene{
		Camera:      camera,
		World:       geometry.NewHittableList(),
		TopColor:    skyBlue,
		BottomColor: white,
		Sampling: renderer.SamplingConfig{
			SamplesPerPixel: 10,
			MaxDepth:        5,
		},
	}
}
