package core

import "math"

// Interval represents a closed range [Min, Max] of ray parameters
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval. Invariant: min <= max for a
// non-empty interval.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval contains no values
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UniverseInterval contains all values
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// Contains reports whether t lies in the closed interval [Min, Max]
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t <= i.Max
}

// Surrounds reports whether t lies strictly inside the interval
func (i Interval) Surrounds(t float64) bool {
	return i.Min < t && t < i.Max
}

// Clamp limits t to the interval bounds
func (i Interval) Clamp(t float64) float64 {
	if t < i.Min {
		return i.Min
	}
	if t > i.Max {
		return i.Max
	}
	return t
}

// Size returns the width of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}
