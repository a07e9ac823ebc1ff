package orrery

import (
	"testing"

	"github.com/gonum/floats"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock()
	c.SetSpeed(1)
	c.Advance(2.0)
	if !floats.EqualWithinAbs(c.ElapsedDays, 2.0, 1e-12) {
		t.Fatalf("advance(2s) at 1 day/s should give 2 days, got %f", c.ElapsedDays)
	}
	c.SetSpeed(10)
	c.Advance(0.5)
	if !floats.EqualWithinAbs(c.ElapsedDays, 7.0, 1e-12) {
		t.Fatalf("expected 7 days, got %f", c.ElapsedDays)
	}
}

func TestClockAdvanceZeroAndNegative(t *testing.T) {
	c := NewClock()
	c.Advance(3)
	before := c.ElapsedDays
	c.Advance(0)
	if c.ElapsedDays != before {
		t.Fatal("advance(0) changed elapsed time")
	}
	c.Advance(-5)
	if c.ElapsedDays != before {
		t.Fatal("negative delta must be treated as zero")
	}
}

func TestClockPause(t *testing.T) {
	c := NewClock()
	c.TogglePause()
	if !c.Paused {
		t.Fatal("toggle should pause")
	}
	c.Advance(100)
	if c.ElapsedDays != 0 {
		t.Fatal("advancing while paused changed elapsed time")
	}
	c.TogglePause()
	c.Advance(1)
	if c.ElapsedDays == 0 {
		t.Fatal("clock did not resume")
	}
	c.SetPaused(true)
	if !c.Paused {
		t.Fatal("SetPaused(true) did not pause")
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock()
	c.SetSpeed(3)
	c.Advance(123.456)
	c.SetPaused(true)
	c.Reset()
	if c.ElapsedDays != 0 {
		t.Fatalf("reset must zero elapsed time exactly, got %f", c.ElapsedDays)
	}
	if c.DaysPerSecond != 3 || !c.Paused {
		t.Fatal("reset must leave speed and pause state untouched")
	}
}

func TestClockSpeedRejection(t *testing.T) {
	c := NewClock()
	c.SetSpeed(2)
	c.SetSpeed(0)
	if c.DaysPerSecond != 2 {
		t.Fatal("SetSpeed(0) must keep the previous speed")
	}
	c.SetSpeed(-4)
	if c.DaysPerSecond != 2 {
		t.Fatal("negative speed must keep the previous speed")
	}
	c.AdjustSpeed(0)
	c.AdjustSpeed(-1)
	if c.DaysPerSecond != 2 {
		t.Fatal("non-positive factors must be ignored")
	}
}

func TestClockSpeedClamp(t *testing.T) {
	cfg := Conf()
	c := NewClock()
	for i := 0; i < 64; i++ {
		c.AdjustSpeed(4)
	}
	if c.DaysPerSecond != cfg.MaxSpeed {
		t.Fatalf("speed should clamp at %f, got %f", cfg.MaxSpeed, c.DaysPerSecond)
	}
	for i := 0; i < 64; i++ {
		c.AdjustSpeed(0.25)
	}
	if c.DaysPerSecond != cfg.MinSpeed {
		t.Fatalf("speed should clamp at %f, got %f", cfg.MinSpeed, c.DaysPerSecond)
	}
}
