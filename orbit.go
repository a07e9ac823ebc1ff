package orrery

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PositionAt returns the heliocentric display position of a body at the
// given absolute elapsed time in days. It is a pure function: the angle is
// recomputed from elapsed time on every call, never integrated, so the same
// input always yields the same bit pattern regardless of step history.
//
// The orbit is circular with radius a (scaled to display units), swept at
// the mean rate ω = 2π/P and tilted by the inclination about the
// ascending-node (X) axis. The star always sits at the origin.
func PositionAt(el OrbitalElements, elapsedDays float64) mgl32.Vec3 {
	if el.IsStar || el.SemiMajorAxisAU == 0 {
		return mgl32.Vec3{}
	}
	ω := 2 * math.Pi / el.PeriodDays
	θ := el.InitialPhaseRad + ω*elapsedDays
	d := float32(el.SemiMajorAxisAU) * Conf().AUScale
	sinθ, cosθ := math.Sincos(θ)
	sinI, cosI := math.Sincos(el.InclinationRad)
	return mgl32.Vec3{
		d * float32(cosθ),
		d * float32(sinθ*sinI),
		d * float32(sinθ*cosI),
	}
}

// OrbitPath samples the body's circular orbit at segments evenly spaced
// angles and returns a closed loop (first point equals last, segments+1
// points) suitable for line-strip rendering. The path is independent of
// simulated time.
func OrbitPath(el OrbitalElements, segments int) []mgl32.Vec3 {
	d := float32(el.SemiMajorAxisAU) * Conf().AUScale
	sinI, cosI := math.Sincos(el.InclinationRad)
	path := make([]mgl32.Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		θ := float64(i) / float64(segments) * 2 * math.Pi
		sinθ, cosθ := math.Sincos(θ)
		path[i] = mgl32.Vec3{
			d * float32(cosθ),
			d * float32(sinθ*sinI),
			d * float32(sinθ*cosI),
		}
	}
	return path
}

// DisplayRadius log-scales a true radius in km to display units so that all
// bodies stay visible while preserving relative ordering. Radii at or below
// 1 km are clamped before the logarithm so the result is never negative or
// NaN, and a floor keeps the smallest bodies visible.
func DisplayRadius(radiusKm float64) float32 {
	cfg := Conf()
	if radiusKm < 1 {
		radiusKm = 1
	}
	logR := float32(math.Log10(radiusKm)) - 3
	if logR < cfg.RadiusLogFloor {
		logR = cfg.RadiusLogFloor
	}
	return logR * cfg.RadiusLogScale
}
