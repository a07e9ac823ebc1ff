package orrery

import (
	"testing"

	"github.com/gonum/floats"
)

type captureSink struct {
	last  FrameStats
	count int
}

func (s *captureSink) Emit(stats FrameStats) {
	s.last = stats
	s.count++
}

func newTestEngine(sink EventSink) *Engine {
	return NewEngine(NewSystem(SolarSystem()), NewCamera(16./9.), sink, nil)
}

func TestEngineTickAdvances(t *testing.T) {
	sink := &captureSink{}
	e := newTestEngine(sink)
	e.Tick(1. / 60.)
	if sink.count != 1 {
		t.Fatal("tick must emit exactly one telemetry event")
	}
	if sink.last.ElapsedDays <= 0 {
		t.Fatal("elapsed days did not advance")
	}
	if sink.last.FPS <= 0 {
		t.Fatal("fps not reported")
	}
}

func TestEngineTickClampsDT(t *testing.T) {
	e := newTestEngine(nil)
	e.Tick(1e9)
	max := Conf().MaxFrameDT * e.Speed()
	if e.System().Clock.ElapsedDays > max+1e-9 {
		t.Fatalf("a stalled frame jumped the clock by %f days", e.System().Clock.ElapsedDays)
	}
	before := e.System().Clock.ElapsedDays
	e.Tick(-1)
	if e.System().Clock.ElapsedDays != before {
		t.Fatal("negative dt must not advance the clock")
	}
}

func TestEngineCommands(t *testing.T) {
	e := newTestEngine(nil)
	e.SetPaused(true)
	if !e.IsPaused() {
		t.Fatal("SetPaused(true) failed")
	}
	e.Tick(1)
	if e.System().Clock.ElapsedDays != 0 {
		t.Fatal("paused engine advanced time")
	}
	e.TogglePause()
	e.AdjustSpeed(2)
	if !floats.EqualWithinAbs(e.Speed(), 2*Conf().DaysPerSecond, 1e-12) {
		t.Fatalf("speed not doubled: %f", e.Speed())
	}
	e.Tick(1)
	e.ResetTime()
	if e.System().Clock.ElapsedDays != 0 {
		t.Fatal("ResetTime did not zero the clock")
	}
	e.Resize(800, 400)
	if !floats.EqualWithinAbs(float64(e.Camera().Aspect), 2, 1e-6) {
		t.Fatal("resize did not update the aspect ratio")
	}
}

func TestEngineSelection(t *testing.T) {
	e := newTestEngine(nil)
	e.SelectBody(3) // Earth
	if e.Selected() != 3 {
		t.Fatal("selection not recorded")
	}
	// Run the follow for a while: the camera target converges on the planet.
	for i := 0; i < 600; i++ {
		e.Tick(1. / 60.)
	}
	earth := e.System().Bodies[3]
	if e.Camera().Target.Sub(earth.Position).Len() > 1 {
		t.Fatalf("camera is not tracking the selected body: target %v, body %v",
			e.Camera().Target, earth.Position)
	}
	e.SelectBody(99)
	if e.Selected() != 3 {
		t.Fatal("out-of-range selection must be ignored")
	}
	e.ClearSelection()
	if e.Selected() != -1 {
		t.Fatal("selection not cleared")
	}
}
