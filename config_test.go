package orrery

import (
	"math"
	"testing"
)

func TestConfDefaults(t *testing.T) {
	cfg := Conf()
	if cfg.AUScale <= 0 {
		t.Fatal("AU scale must be positive")
	}
	if cfg.CameraMinDistance <= 0 || cfg.CameraMinDistance >= cfg.CameraMaxDistance {
		t.Fatal("camera distance bounds are inverted")
	}
	if cfg.PolarMargin <= 0 || float64(cfg.PolarMargin) >= math.Pi/2 {
		t.Fatal("polar margin must sit strictly inside (0, π/2)")
	}
	if cfg.CameraNear <= 0 || cfg.CameraNear >= cfg.CameraFar {
		t.Fatal("clip planes are inverted")
	}
	if cfg.StarRadius <= cfg.CameraMaxDistance {
		t.Fatal("the starfield must sit beyond the farthest camera position")
	}
	if cfg.MinSpeed <= 0 || cfg.MinSpeed >= cfg.MaxSpeed {
		t.Fatal("speed bounds are inverted")
	}
	if cfg.OrbitSegments < 3 {
		t.Fatal("an orbit needs at least a triangle")
	}
}

func TestConfLoadedOnce(t *testing.T) {
	a := Conf()
	b := Conf()
	if a != b {
		t.Fatal("configuration must be stable across calls")
	}
}
