package utils

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	if got := Lerp(10, 0, 0.25); got != 7.5 {
		t.Errorf("Lerp(10, 0, 0.25) = %v, want 7.5", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, want float64 }{
		{-1, 0},
		{0.5, 0.5},
		{3, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestLerpAngleTakesShortestPath(t *testing.T) {
	got := LerpAngle(170, -170, 0.5)
	if math.Abs(math.Abs(got)-180) > 1e-9 {
		t.Errorf("LerpAngle(170, -170, 0.5) = %v, want ±180", got)
	}
	if got := LerpAngle(10, 30, 0.5); math.Abs(got-20) > 1e-9 {
		t.Errorf("LerpAngle(10, 30, 0.5) = %v, want 20", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(370); math.Abs(got-10) > 1e-9 {
		t.Errorf("NormalizeAngle(370) = %v, want 10", got)
	}
	if got := NormalizeAngle(-190); math.Abs(got-170) > 1e-9 {
		t.Errorf("NormalizeAngle(-190) = %v, want 170", got)
	}
}

func TestPRNGServiceIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed should produce the same sequence")
		}
	}
	v := Range(a, 135, 225)
	if v < 135 || v >= 225 {
		t.Errorf("Range out of bounds: %v", v)
	}
}
