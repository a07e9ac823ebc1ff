package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonum/floats"
)

func TestTrailCapacityBound(t *testing.T) {
	trail := NewTrail(5)
	for i := 0; i < 50; i++ {
		trail.Push(mgl32.Vec3{float32(i), 0, 0})
	}
	if trail.Len() != 5 {
		t.Fatalf("trail grew past capacity: %d", trail.Len())
	}
	// Oldest points were evicted, newest survive.
	if trail.points[4] != (mgl32.Vec3{49, 0, 0}) {
		t.Fatalf("newest point missing, got %v", trail.points[4])
	}
	if trail.points[0] != (mgl32.Vec3{45, 0, 0}) {
		t.Fatalf("wrong eviction order, oldest is %v", trail.points[0])
	}
}

func TestTrailSkipsDuplicates(t *testing.T) {
	trail := NewTrail(10)
	p := mgl32.Vec3{1, 2, 3}
	for i := 0; i < 8; i++ {
		trail.Push(p)
	}
	if trail.Len() != 1 {
		t.Fatalf("repeated position should not grow the trail, got %d points", trail.Len())
	}
	trail.Push(mgl32.Vec3{2, 2, 3})
	if trail.Len() != 2 {
		t.Fatal("distinct position must append")
	}
}

func TestTrailAlphaRamp(t *testing.T) {
	trail := NewTrail(10)
	for i := 0; i < 4; i++ {
		trail.Push(mgl32.Vec3{float32(i), 0, 0})
	}
	alphas := trail.Alphas()
	if len(alphas) != 4 {
		t.Fatalf("expected 4 alphas, got %d", len(alphas))
	}
	if alphas[0] != 0 || alphas[3] != 1 {
		t.Fatalf("ramp must run 0 to 1, got %v", alphas)
	}
	for i := 1; i < len(alphas); i++ {
		if alphas[i] <= alphas[i-1] {
			t.Fatal("alpha ramp must be strictly increasing")
		}
	}
	if !floats.EqualWithinAbs(float64(alphas[1]), 1.0/3.0, 1e-6) {
		t.Fatalf("ramp not linear: %v", alphas)
	}
}

func TestTrailMinimumCapacity(t *testing.T) {
	trail := NewTrail(0)
	trail.Push(mgl32.Vec3{0, 0, 0})
	trail.Push(mgl32.Vec3{1, 0, 0})
	trail.Push(mgl32.Vec3{2, 0, 0})
	if trail.Len() != 2 {
		t.Fatalf("capacity floor is 2, got %d points", trail.Len())
	}
}
