package core

import "math/rand"

// RandomVec3 generates a vector with components uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{
		X: random.Float64(),
		Y: random.Float64(),
		Z: random.Float64(),
	}
}

// RandomVec3InRange generates a vector with components uniform in [min, max)
func RandomVec3InRange(min, max float64, random *rand.Rand) Vec3 {
	return Vec3{
		X: min + (max-min)*random.Float64(),
		Y: min + (max-min)*random.Float64(),
		Z: min + (max-min)*random.Float64(),
	}
}

// RandomUnitVector generates a uniformly distributed point on the unit sphere.
// Uses rejection sampling: candidates outside the unit ball are discarded,
// as are candidates too short to normalize safely.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3InRange(-1, 1, random)
		lenSq := p.LengthSquared()
		if 1e-160 < lenSq && lenSq <= 1.0 {
			return p.Normalize()
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		// Accept if inside unit disk
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}
