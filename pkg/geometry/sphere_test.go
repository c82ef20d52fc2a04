package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/filiptrplan/zharko/pkg/core"
)

// testMaterial is a minimal material for intersection tests
type testMaterial struct{}

func (testMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func mustTestSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	sphere, err := NewSphere(center, radius, testMaterial{})
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	return sphere
}

func TestNewSphere_InvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		material core.Material
	}{
		{"Zero radius", 0, testMaterial{}},
		{"Negative radius", -0.5, testMaterial{}},
		{"Nil material", 1.0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere, err := NewSphere(core.NewVec3(0, 0, 0), tt.radius, tt.material)
			if err == nil {
				t.Error("Expected construction error, got none")
			}
			if sphere != nil {
				t.Errorf("Expected nil sphere on error, got %v", sphere)
			}
		})
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := mustTestSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 1000.0))
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_AimedAwayMisses(t *testing.T) {
	// Same origin as a hitting ray, but pointing in the opposite direction
	sphere := mustTestSphere(t, core.NewVec3(0, 0, -5), 1.0)
	origin := core.NewVec3(0, 0, 2)

	toward := core.NewRay(origin, core.NewVec3(0, 0, -1))
	if _, isHit := sphere.Hit(toward, core.NewInterval(0.001, 1000.0)); !isHit {
		t.Fatal("Expected hit for ray aimed at the sphere")
	}

	away := core.NewRay(origin, core.NewVec3(0, 0, 1))
	if hit, isHit := sphere.Hit(away, core.NewInterval(0.001, 1000.0)); isHit {
		t.Errorf("Expected miss for ray aimed away, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_AnalyticPoint(t *testing.T) {
	// Ray through the center of a sphere of radius r centered at C hits
	// the surface at distance |origin - C| - r
	center := core.NewVec3(1, -2, -6)
	radius := 0.75
	sphere := mustTestSphere(t, center, radius)

	origin := core.NewVec3(1, -2, 3)
	ray := core.NewRay(origin, core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 1000.0))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, -2, center.Z+radius)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}

	expectedT := origin.Z - (center.Z + radius)
	if math.Abs(hit.T-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expectedT, hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := mustTestSphere(t, core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 1000.0))

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_IntervalBounds(t *testing.T) {
	sphere := mustTestSphere(t, core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Closer root at t=4, farther at t=6
	tests := []struct {
		name      string
		tRange    core.Interval
		expectHit bool
		expectedT float64
	}{
		{"both roots inside", core.NewInterval(0.001, 100), true, 4.0},
		{"closer root excluded", core.NewInterval(5, 100), true, 6.0},
		{"both roots excluded", core.NewInterval(7, 100), false, 0},
		{"roots exactly on bounds are excluded", core.NewInterval(4, 6), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tRange)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_MaterialReference(t *testing.T) {
	material := testMaterial{}
	sphere := mustTestSphere(t, core.NewVec3(0, 0, -2), 0.5)
	sphere.Material = material

	hit, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, 1000.0))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material != core.Material(material) {
		t.Error("Hit record should reference the sphere's material")
	}
}
