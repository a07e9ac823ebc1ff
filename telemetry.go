package orrery

import (
	"time"

	"github.com/soniakeys/meeus/julian"
)

// J2000 is the Julian date of the simulation epoch (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// FrameStats is the telemetry snapshot emitted once per frame for the host
// UI. The core never formats or renders these values.
type FrameStats struct {
	Date          time.Time
	ElapsedDays   float64
	DaysPerSecond float64
	Paused        bool
	FPS           float64
}

// EventSink receives engine telemetry. The host layer injects an
// implementation; the core never reaches into UI code itself.
type EventSink interface {
	Emit(FrameStats)
}

// NopSink discards all telemetry.
type NopSink struct{}

// Emit implements EventSink.
func (NopSink) Emit(FrameStats) {}

// SimDate converts elapsed days past the J2000 epoch to a calendar date.
func SimDate(elapsedDays float64) time.Time {
	return julian.JDToTime(J2000 + elapsedDays)
}
