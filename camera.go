package orrery

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits a target point using spherical coordinates. The polar angle
// is measured from +Y and clamped strictly inside (margin, π-margin) so the
// up vector never inverts, and the distance is clamped to
// [MinDistance, MaxDistance].
type Camera struct {
	Target   mgl32.Vec3
	Distance float32
	Azimuth  float32 // unbounded, wraps naturally through trig
	Polar    float32

	Aspect      float32
	FOV         float32 // radians
	Near, Far   float32
	MinDistance float32
	MaxDistance float32

	rotSens     float32
	zoomSens    float32
	polarMargin float32
	lerpSpeed   float32

	// Transition goals; nil when no animation is active.
	lerpTarget   *mgl32.Vec3
	lerpDistance *float32
}

// NewCamera returns a camera at the configured default orientation.
func NewCamera(aspect float32) *Camera {
	cfg := Conf()
	c := &Camera{
		Distance:    cfg.CameraDistance,
		Azimuth:     cfg.CameraAzimuth,
		Polar:       cfg.CameraPolar,
		Aspect:      aspect,
		FOV:         mgl32.DegToRad(cfg.CameraFOVDegrees),
		Near:        cfg.CameraNear,
		Far:         cfg.CameraFar,
		MinDistance: cfg.CameraMinDistance,
		MaxDistance: cfg.CameraMaxDistance,
		rotSens:     cfg.RotateSensitivity,
		zoomSens:    cfg.ZoomSensitivity,
		polarMargin: cfg.PolarMargin,
		lerpSpeed:   cfg.LerpSpeed,
	}
	c.Polar = clampf(c.Polar, c.polarMargin, math.Pi-c.polarMargin)
	c.Distance = clampf(c.Distance, c.MinDistance, c.MaxDistance)
	return c
}

// Drag rotates the orbit from pointer deltas in pixels.
func (c *Camera) Drag(dx, dy float32) {
	c.Azimuth -= dx * c.rotSens
	c.Polar += dy * c.rotSens
	c.Polar = clampf(c.Polar, c.polarMargin, float32(math.Pi)-c.polarMargin)
}

// Zoom scales the orbit distance from a wheel or pinch delta. The scaling is
// multiplicative so zooming stays usable from planet range out to the edge of
// the system, and the result is clamped to the distance bounds.
func (c *Camera) Zoom(delta float32) {
	c.Distance *= 1 + delta*c.zoomSens
	c.Distance = clampf(c.Distance, c.MinDistance, c.MaxDistance)
}

// EyePosition derives the camera world position from the orbit parameters.
func (c *Camera) EyePosition() mgl32.Vec3 {
	return c.Target.Add(Spherical2Cartesian(c.Distance, c.Polar, c.Azimuth))
}

// ViewMatrix returns the look-at matrix with world up. The polar clamp
// guarantees the eye is never at a pole.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.EyePosition(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection. The far plane is
// configured to contain the outermost orbit and the starfield.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// SetAspect updates the viewport aspect ratio on resize. Idempotent: it
// touches no other camera state.
func (c *Camera) SetAspect(width, height int) {
	if height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}

// Retarget begins a smooth transition to a new focus point and orbit
// distance.
func (c *Camera) Retarget(target mgl32.Vec3, distance float32) {
	distance = clampf(distance, c.MinDistance, c.MaxDistance)
	t := target
	c.lerpTarget = &t
	c.lerpDistance = &distance
}

// FollowTarget keeps an active transition tracking a moving focus point
// without restarting the distance animation.
func (c *Camera) FollowTarget(target mgl32.Vec3) {
	t := target
	c.lerpTarget = &t
}

// StepTransition advances any active transition. Call once per frame with
// the real elapsed seconds. Within 0.01 display units the transition snaps
// and deactivates.
func (c *Camera) StepTransition(dt float32) {
	alpha := dt * c.lerpSpeed
	if alpha > 1 {
		alpha = 1
	}
	if c.lerpTarget != nil {
		c.Target = lerpVec(c.Target, *c.lerpTarget, alpha)
		if c.Target.Sub(*c.lerpTarget).Len() < 0.01 {
			c.Target = *c.lerpTarget
			c.lerpTarget = nil
		}
	}
	if c.lerpDistance != nil {
		c.Distance += (*c.lerpDistance - c.Distance) * alpha
		if float32(math.Abs(float64(c.Distance-*c.lerpDistance))) < 0.01 {
			c.Distance = *c.lerpDistance
			c.lerpDistance = nil
		}
	}
}
