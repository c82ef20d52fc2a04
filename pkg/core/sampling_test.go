package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomVec3InRange_Bounds(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := RandomVec3InRange(-2, 3, random)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < -2 || c >= 3 {
				t.Fatalf("Component %f outside [-2, 3)", c)
			}
		}
	}
}

func TestRandomUnitVector_UnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	const tolerance = 1e-12
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1.0) > tolerance {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
	}
}

func TestRandomUnitVector_CoversAllOctants(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	// With 1000 uniform samples every octant should be populated
	seen := make(map[[3]bool]bool)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(random)
		seen[[3]bool{v.X > 0, v.Y > 0, v.Z > 0}] = true
	}

	if len(seen) != 8 {
		t.Errorf("Expected samples in all 8 octants, got %d", len(seen))
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 {
			t.Fatalf("Expected Z=0, got %f", p.Z)
		}
		if p.LengthSquared() > 1.0 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}
}
