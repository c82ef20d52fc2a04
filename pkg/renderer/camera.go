package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/filiptrplan/zharko/pkg/core"
)

// CameraConfig holds camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (lookfrom)
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction for the camera
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Aperture cone angle in degrees; 0 disables depth of field
	FocusDistance float64   // Distance to the focus plane; 0 means focus on LookAt
}

// Camera generates primary rays for rendering
type Camera struct {
	config      CameraConfig
	center      core.Vec3
	pixel00Loc  core.Vec3 // Center of the upper-left pixel
	pixelDeltaU core.Vec3 // Offset to the pixel to the right
	pixelDeltaV core.Vec3 // Offset to the pixel below
	// Orthonormal view basis
	u, v, w core.Vec3
	// Defocus disk basis vectors, scaled by the disk radius
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	width        int
	height       int
}

// NewCamera creates a camera from the given configuration, deriving the
// view basis, viewport geometry, and defocus disk. Invalid configuration
// is rejected eagerly.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 {
		return nil, fmt.Errorf("camera width must be positive, got %d", config.Width)
	}
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("camera vertical fov must be in (0, 180) degrees, got %g", config.VFov)
	}
	if config.DefocusAngle < 0 {
		return nil, fmt.Errorf("camera defocus angle must not be negative, got %g", config.DefocusAngle)
	}
	if config.FocusDistance < 0 {
		return nil, fmt.Errorf("camera focus distance must not be negative, got %g", config.FocusDistance)
	}
	direction := config.Center.Subtract(config.LookAt)
	if direction.NearZero() {
		return nil, fmt.Errorf("camera center and look-at point must differ")
	}

	camera := &Camera{config: config}
	camera.initialize()
	return camera, nil
}

// initialize recomputes all derived camera state from the configuration
func (c *Camera) initialize() {
	config := c.config

	c.width = config.Width
	c.height = int(float64(config.Width) / config.AspectRatio)
	if c.height < 1 {
		c.height = 1
	}

	c.center = config.Center

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		// Focus on the look-at point
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	// Viewport dimensions from the vertical field of view.
	// The aspect ratio is recomputed from the integer image dimensions to
	// avoid rounding mismatch.
	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * (float64(c.width) / float64(c.height))

	// Right-handed view basis: y is up, x is right, -w is the view direction
	c.w = config.Center.Subtract(config.LookAt).Normalize()
	c.u = config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors spanning the viewport, v pointing down the image
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Multiply(-viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(c.width))
	c.pixelDeltaV = viewportV.Divide(float64(c.height))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(focusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// GetRay generates a jittered ray through pixel (i, j). The origin is
// sampled from the defocus disk when depth of field is enabled.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	// Jitter uniformly within the pixel for anti-aliasing
	offsetX := random.Float64() - 0.5
	offsetY := random.Float64() - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(random)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

// degreesToRadians converts an angle in degrees to radians
func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
