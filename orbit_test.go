package orrery

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonum/floats"
)

func earthLike() OrbitalElements {
	return OrbitalElements{
		Name:            "TestEarth",
		RadiusKm:        6371,
		SemiMajorAxisAU: 1.0,
		PeriodDays:      365.25,
	}
}

func vec3Close(a, b mgl32.Vec3, tol float64) bool {
	for i := 0; i < 3; i++ {
		if !floats.EqualWithinAbs(float64(a[i]), float64(b[i]), tol) {
			return false
		}
	}
	return true
}

func TestPositionAtDeterminism(t *testing.T) {
	el := earthLike()
	for _, d := range []float64{0, 0.5, 42.123456, 365.25, 1e6} {
		p1 := PositionAt(el, d)
		p2 := PositionAt(el, d)
		if p1 != p2 {
			t.Fatalf("position at %f not reproducible: %v != %v", d, p1, p2)
		}
	}
}

func TestPositionAtEpoch(t *testing.T) {
	el := earthLike()
	R := float32(el.SemiMajorAxisAU) * Conf().AUScale
	got := PositionAt(el, 0)
	if !vec3Close(got, mgl32.Vec3{R, 0, 0}, 1e-5) {
		t.Fatalf("epoch position should be (R, 0, 0), got %v", got)
	}
}

func TestPositionAtQuarterPeriod(t *testing.T) {
	el := earthLike()
	R := float64(el.SemiMajorAxisAU) * float64(Conf().AUScale)
	got := PositionAt(el, el.PeriodDays/4)
	// Zero inclination: quarter period lands on (0, 0, R), 90 degrees
	// around from the epoch position, at the same radius.
	if !vec3Close(got, mgl32.Vec3{0, 0, float32(R)}, 1e-3) {
		t.Fatalf("quarter-period position should be (0, 0, R), got %v", got)
	}
	if !floats.EqualWithinAbs(float64(got.Len()), R, 1e-3) {
		t.Fatalf("orbit radius changed: %f != %f", got.Len(), R)
	}
}

func TestPositionAtPeriodicity(t *testing.T) {
	el := earthLike()
	el.InclinationRad = Deg2rad(5)
	el.InitialPhaseRad = 1.2
	for _, start := range []float64{0, 17.5, 300} {
		p0 := PositionAt(el, start)
		p1 := PositionAt(el, start+el.PeriodDays)
		if !vec3Close(p0, p1, 1e-3) {
			t.Fatalf("position after one period drifted: %v != %v", p0, p1)
		}
	}
}

func TestPositionAtStar(t *testing.T) {
	star := OrbitalElements{Name: "TestStar", IsStar: true, SemiMajorAxisAU: 0, PeriodDays: 1}
	for _, d := range []float64{0, 10, 1e4} {
		if got := PositionAt(star, d); got != (mgl32.Vec3{}) {
			t.Fatalf("star must stay at origin, got %v at %f days", got, d)
		}
	}
}

func TestPositionAtInclination(t *testing.T) {
	el := earthLike()
	el.InclinationRad = Deg2rad(7)
	// A quarter period into the orbit the body is at max excursion from the
	// reference plane: y = d sin(i).
	got := PositionAt(el, el.PeriodDays/4)
	d := float64(el.SemiMajorAxisAU) * float64(Conf().AUScale)
	wantY := d * math.Sin(el.InclinationRad)
	if !floats.EqualWithinAbs(float64(got.Y()), wantY, 1e-3) {
		t.Fatalf("inclination tilt wrong: y=%f want %f", got.Y(), wantY)
	}
}

func TestOrbitPathClosedLoop(t *testing.T) {
	el := earthLike()
	el.InclinationRad = Deg2rad(3)
	for _, segments := range []int{16, 128} {
		path := OrbitPath(el, segments)
		if len(path) != segments+1 {
			t.Fatalf("expected %d points, got %d", segments+1, len(path))
		}
		if !vec3Close(path[0], path[len(path)-1], 1e-4) {
			t.Fatalf("path is not a closed loop: %v != %v", path[0], path[len(path)-1])
		}
	}
}

func TestOrbitPathOnCircle(t *testing.T) {
	el := earthLike()
	path := OrbitPath(el, 64)
	R := float64(el.SemiMajorAxisAU) * float64(Conf().AUScale)
	for i, p := range path {
		if !floats.EqualWithinAbs(float64(p.Len()), R, 1e-3) {
			t.Fatalf("point %d off the circle: |p|=%f want %f", i, p.Len(), R)
		}
	}
}

func TestDisplayRadiusMonotonic(t *testing.T) {
	radii := []float64{0.5, 1, 100, 2439.7, 3389.5, 6371, 24622, 69911, 695700}
	prev := float32(-1)
	for _, r := range radii {
		dr := DisplayRadius(r)
		if dr < prev {
			t.Fatalf("display radius not monotonic at %f km: %f < %f", r, dr, prev)
		}
		prev = dr
	}
}

func TestDisplayRadiusDegenerate(t *testing.T) {
	for _, r := range []float64{-10, 0, 0.001, 1} {
		dr := DisplayRadius(r)
		if math.IsNaN(float64(dr)) || dr <= 0 {
			t.Fatalf("radius %f km produced invalid display radius %f", r, dr)
		}
	}
	cfg := Conf()
	if DisplayRadius(1) != cfg.RadiusLogFloor*cfg.RadiusLogScale {
		t.Fatal("1 km body should sit exactly on the visibility floor")
	}
}
