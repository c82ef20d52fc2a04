package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/filiptrplan/zharko/pkg/core"
)

// minHitDistance is the lower intersection bound used to suppress
// self-intersection ("shadow acne") at the surface a ray just left
const minHitDistance = 1e-4

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface consumed by the raytracer
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() core.Hittable
}

// Raytracer renders a scene by stochastic path tracing
type Raytracer struct {
	scene  Scene
	config SamplingConfig
	random *rand.Rand
}

// NewRaytracer creates a raytracer for the given scene. The seed makes
// renders reproducible. Invalid sampling configuration is rejected eagerly.
func NewRaytracer(scene Scene, config SamplingConfig, seed int64) (*Raytracer, error) {
	if config.SamplesPerPixel < 1 {
		return nil, fmt.Errorf("samples per pixel must be at least 1, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must not be negative, got %d", config.MaxDepth)
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		random: rand.New(rand.NewSource(seed)),
	}, nil
}

// backgroundGradient returns the sky color for a ray that missed everything
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1, 1] to [0, 1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColor returns the light transported along a ray, bouncing recursively
// until absorption, a miss, or the depth budget runs out
func (rt *Raytracer) rayColor(r core.Ray, depth int) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.GetWorld().Hit(r, core.NewInterval(minHitDistance, math.Inf(1)))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, rt.random)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}
	}

	// Each bounce multiplicatively discounts the accumulated color
	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1))
}

// vec3ToColor converts a linear color to display RGBA with gamma
// correction and clamping
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Square-root gamma approximation (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	// Clamp below 1.0 so the 8-bit scale never overflows
	colorVec = colorVec.Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}

// RenderPass renders the full image with multi-sampling
func (rt *Raytracer) RenderPass() *image.RGBA {
	camera := rt.scene.GetCamera()
	width, height := camera.Width(), camera.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			colorAccum := core.Vec3{}

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				ray := camera.GetRay(i, j, rt.random)
				colorAccum = colorAccum.Add(rt.rayColor(ray, rt.config.MaxDepth))
			}

			colorVec := colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
			img.SetRGBA(i, j, rt.vec3ToColor(colorVec))
		}
	}

	return img
}
