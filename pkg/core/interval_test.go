package core

import "testing"

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	interval := NewInterval(1, 3)

	tests := []struct {
		name      string
		value     float64
		contains  bool
		surrounds bool
	}{
		{"Below min", 0.5, false, false},
		{"At min", 1.0, true, false},
		{"Inside", 2.0, true, true},
		{"At max", 3.0, true, false},
		{"Above max", 3.5, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Contains(tt.value); got != tt.contains {
				t.Errorf("Contains(%f): expected %t, got %t", tt.value, tt.contains, got)
			}
			if got := interval.Surrounds(tt.value); got != tt.surrounds {
				t.Errorf("Surrounds(%f): expected %t, got %t", tt.value, tt.surrounds, got)
			}
		})
	}
}

func TestInterval_Clamp(t *testing.T) {
	interval := NewInterval(0, 1)

	tests := []struct {
		value    float64
		expected float64
	}{
		{-0.5, 0},
		{0.25, 0.25},
		{1.5, 1},
	}

	for _, tt := range tests {
		if got := interval.Clamp(tt.value); got != tt.expected {
			t.Errorf("Clamp(%f): expected %f, got %f", tt.value, tt.expected, got)
		}
	}
}

func TestInterval_EmptyAndUniverse(t *testing.T) {
	if EmptyInterval.Contains(0) {
		t.Error("Empty interval should contain nothing")
	}
	if !UniverseInterval.Surrounds(1e100) || !UniverseInterval.Surrounds(-1e100) {
		t.Error("Universe interval should surround everything")
	}
}
