package orrery

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	deg2rad = math.Pi / 180
)

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// clampf keeps v within [lo, hi].
func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerpVec moves a toward b by fraction t.
func lerpVec(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Spherical2Cartesian converts (r, polar, azimuth) to Cartesian coordinates
// with the polar angle measured from +Y. This is the camera eye placement
// mapping, so +Y is world up.
func Spherical2Cartesian(r, polar, azimuth float32) mgl32.Vec3 {
	sp, cp := math.Sincos(float64(polar))
	sa, ca := math.Sincos(float64(azimuth))
	return mgl32.Vec3{
		r * float32(sp*ca),
		r * float32(cp),
		r * float32(sp*sa),
	}
}
