package orrery

import (
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// Engine is the command surface over the simulation and camera. The input
// layer (pointer, touch, keyboard) translates raw events into these calls;
// the renderer reads the resulting state once per frame. Data flow is
// one-directional: input → clock/camera → positions → draw.
type Engine struct {
	sys    *System
	cam    *Camera
	sink   EventSink
	logger kitlog.Logger

	maxFrameDT float64
	fps        float64

	selected int // index into sys.Bodies, -1 when nothing is selected
	follow   bool
}

// NewEngine bundles an existing system and camera. A nil sink or logger is
// replaced by a no-op implementation.
func NewEngine(sys *System, cam *Camera, sink EventSink, logger kitlog.Logger) *Engine {
	if sink == nil {
		sink = NopSink{}
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Engine{
		sys:        sys,
		cam:        cam,
		sink:       sink,
		logger:     logger,
		maxFrameDT: Conf().MaxFrameDT,
		selected:   -1,
	}
}

// Drag applies a pointer drag delta to the camera orbit.
func (e *Engine) Drag(dx, dy float32) {
	e.cam.Drag(dx, dy)
}

// Zoom applies a wheel or pinch delta to the camera distance.
func (e *Engine) Zoom(delta float32) {
	e.cam.Zoom(delta)
}

// SetPaused sets the simulation pause flag.
func (e *Engine) SetPaused(paused bool) {
	e.sys.Clock.SetPaused(paused)
}

// TogglePause flips the simulation pause flag.
func (e *Engine) TogglePause() {
	e.sys.Clock.TogglePause()
}

// AdjustSpeed multiplies the time scale; non-positive factors are ignored.
func (e *Engine) AdjustSpeed(factor float64) {
	e.sys.Clock.AdjustSpeed(factor)
}

// ResetTime rewinds simulated time to zero without touching speed or pause.
func (e *Engine) ResetTime() {
	e.sys.Clock.Reset()
}

// Resize updates the camera aspect ratio. Viewport dimensions are the
// renderer's concern; simulation and camera orientation are untouched.
func (e *Engine) Resize(width, height int) {
	e.cam.SetAspect(width, height)
}

// SelectBody focuses the camera on a body and follows it as it orbits.
// Selecting the star clears any follow since the default target already
// tracks it. Out-of-range indices are ignored.
func (e *Engine) SelectBody(i int) {
	if i < 0 || i >= len(e.sys.Bodies) {
		return
	}
	e.selected = i
	e.follow = !e.sys.Bodies[i].Elements().IsStar
	b := e.sys.Bodies[i]
	// Pull in close enough that the body fills a good part of the view.
	e.cam.Retarget(b.Position, b.DisplayRadius*12)
	e.logger.Log("level", "info", "subsys", "input", "selected", b.Elements().Name)
}

// ClearSelection returns the camera focus to the star.
func (e *Engine) ClearSelection() {
	e.selected = -1
	e.follow = false
}

// Selected returns the index of the followed body, or -1.
func (e *Engine) Selected() int {
	return e.selected
}

// Tick runs one simulation step: clock advance, position recompute, camera
// transition. dtSeconds is clamped to (0, MaxFrameDT] so a stalled frame
// cannot jump the simulation.
func (e *Engine) Tick(dtSeconds float64) {
	if dtSeconds < 0 {
		dtSeconds = 0
	}
	if dtSeconds > e.maxFrameDT {
		dtSeconds = e.maxFrameDT
	}
	e.sys.Update(dtSeconds)

	if e.follow && e.selected >= 0 && e.selected < len(e.sys.Bodies) {
		e.cam.FollowTarget(e.sys.Bodies[e.selected].Position)
	} else if star := e.sys.Star(); star != nil {
		// Default focus tracks the star so the view follows any drift.
		e.cam.FollowTarget(star.Position)
	}
	e.cam.StepTransition(float32(dtSeconds))

	if dtSeconds > 0 {
		// Exponentially smoothed frames-per-second.
		inst := 1 / dtSeconds
		if e.fps == 0 {
			e.fps = inst
		} else {
			e.fps = 0.9*e.fps + 0.1*inst
		}
	}
	e.sink.Emit(FrameStats{
		Date:          e.SimDate(),
		ElapsedDays:   e.sys.Clock.ElapsedDays,
		DaysPerSecond: e.sys.Clock.DaysPerSecond,
		Paused:        e.sys.Clock.Paused,
		FPS:           e.fps,
	})
}

// SimDate returns the current simulated calendar date.
func (e *Engine) SimDate() time.Time {
	return SimDate(e.sys.Clock.ElapsedDays)
}

// Speed returns the current time scale in days per real second.
func (e *Engine) Speed() float64 {
	return e.sys.Clock.DaysPerSecond
}

// IsPaused reports whether the simulation is paused.
func (e *Engine) IsPaused() bool {
	return e.sys.Clock.Paused
}

// FPS returns the smoothed frame rate.
func (e *Engine) FPS() float64 {
	return e.fps
}

// System exposes the simulation state for the renderer's per-frame read.
func (e *Engine) System() *System {
	return e.sys
}

// Camera exposes the camera for the renderer's per-frame read.
func (e *Engine) Camera() *Camera {
	return e.cam
}
