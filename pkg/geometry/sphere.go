package geometry

import (
	"fmt"
	"math"

	"github.com/filiptrplan/zharko/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere. The radius must be positive and the
// material non-nil; degenerate geometry is rejected at construction time.
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	if material == nil {
		return nil, fmt.Errorf("sphere material must not be nil")
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}, nil
}

// Hit tests if a ray intersects with the sphere within tRange
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !tRange.Surrounds(root) {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if !tRange.Surrounds(root) {
			// Both intersections are outside the valid range
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal from center to hit point, already unit length
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
