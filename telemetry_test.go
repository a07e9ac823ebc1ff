package orrery

import (
	"testing"
	"time"
)

func TestSimDateEpoch(t *testing.T) {
	d := SimDate(0)
	if d.Year() != 2000 || d.Month() != time.January || d.Day() != 1 {
		t.Fatalf("elapsed 0 should map to the J2000 epoch, got %s", d)
	}
	if d.Hour() != 12 {
		t.Fatalf("J2000 is the noon epoch, got hour %d", d.Hour())
	}
}

func TestSimDateAdvances(t *testing.T) {
	d := SimDate(365.25)
	if d.Year() != 2001 {
		t.Fatalf("one Julian year past J2000 should land in 2001, got %s", d)
	}
	if !SimDate(10).After(SimDate(5)) {
		t.Fatal("simulated dates must be ordered with elapsed days")
	}
}
