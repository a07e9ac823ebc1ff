package orrery

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitalElements defines a celestial body via its circular-orbit elements
// and display attributes. Instances are immutable and live in a shared
// catalog; bodies reference them by index rather than holding copies.
type OrbitalElements struct {
	Name            string
	Color           [3]float32 // RGB in 0–1
	RadiusKm        float64    // true equatorial radius
	SemiMajorAxisAU float64    // circular orbit radius; 0 for the star
	PeriodDays      float64
	InclinationRad  float64 // relative to the ecliptic
	InitialPhaseRad float64 // longitude at epoch
	HasRings        bool
	IsStar          bool
	Texture         string // texture filename, empty for flat color
}

func (el OrbitalElements) String() string {
	return el.Name + " body"
}

// hex converts a #RRGGBB color to normalized RGB.
func hex(r, g, b uint8) [3]float32 {
	return [3]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// solarSystem is the elements arena. Values from the NASA planetary fact
// sheet (https://nssdc.gsfc.nasa.gov/planetary/factsheet/). The arena
// outlives every Body and is never mutated after init.
var solarSystem = []OrbitalElements{
	{"Sun", hex(255, 204, 51), 695700, 0, 1, 0, 0, false, true, "sun.jpg"},
	{"Mercury", hex(181, 181, 181), 2439.7, 0.387, 87.97, Deg2rad(7.0), 0.0, false, false, "mercury.jpg"},
	{"Venus", hex(232, 205, 160), 6051.8, 0.723, 224.70, Deg2rad(3.39), 0.9, false, false, "venus.jpg"},
	{"Earth", hex(79, 163, 224), 6371.0, 1.0, 365.25, 0, 1.75, false, false, "earth.jpg"},
	{"Mars", hex(193, 68, 14), 3389.5, 1.524, 687.0, Deg2rad(1.85), 3.2, false, false, "mars.jpg"},
	{"Jupiter", hex(200, 139, 58), 69911.0, 5.203, 4332.59, Deg2rad(1.31), 4.8, false, false, "jupiter.jpg"},
	{"Saturn", hex(228, 209, 145), 58232.0, 9.537, 10759.22, Deg2rad(2.49), 5.5, true, false, "saturn.jpg"},
	{"Uranus", hex(125, 232, 232), 25362.0, 19.191, 30688.5, Deg2rad(0.77), 2.1, false, false, "uranus.jpg"},
	{"Neptune", hex(63, 84, 186), 24622.0, 30.069, 60182.0, Deg2rad(1.77), 0.4, false, false, "neptune.jpg"},
}

// SolarSystem returns the shared elements catalog. Callers must treat the
// returned slice as read-only.
func SolarSystem() []OrbitalElements {
	return solarSystem
}

// ElementsFromString returns the catalog entry for a body name.
func ElementsFromString(name string) (OrbitalElements, error) {
	for _, el := range solarSystem {
		if strings.EqualFold(el.Name, name) {
			return el, nil
		}
	}
	return OrbitalElements{}, fmt.Errorf("undefined body '%s'", name)
}

// Body is one celestial body during a session. It owns its position and its
// precomputed orbit path; the orbital elements stay in the shared catalog.
type Body struct {
	ref     int
	catalog []OrbitalElements

	DisplayRadius float32
	Position      mgl32.Vec3
	Path          []mgl32.Vec3 // closed loop, nil for the star
}

// Elements returns the read-only elements record for this body.
func (b *Body) Elements() *OrbitalElements {
	return &b.catalog[b.ref]
}

func (b *Body) String() string {
	return b.Elements().String()
}

// System bundles the celestial bodies with the simulation clock.
type System struct {
	Bodies []*Body
	Clock  *Clock

	driftEnabled bool
	driftSpeed   float32
}

// NewSystem builds the bodies from an elements catalog, precomputing display
// radii and orbit paths, and places everything at elapsed time zero.
func NewSystem(catalog []OrbitalElements) *System {
	cfg := Conf()
	bodies := make([]*Body, len(catalog))
	for i, el := range catalog {
		b := &Body{ref: i, catalog: catalog}
		if el.IsStar {
			b.DisplayRadius = cfg.SunDisplayRadii
		} else {
			b.DisplayRadius = DisplayRadius(el.RadiusKm)
			b.Path = OrbitPath(el, cfg.OrbitSegments)
		}
		bodies[i] = b
	}
	sys := &System{
		Bodies:       bodies,
		Clock:        NewClock(),
		driftEnabled: cfg.DriftEnabled,
		driftSpeed:   cfg.DriftSpeed,
	}
	sys.recompute()
	return sys
}

// Update advances the clock by dtSeconds of real time and recomputes every
// body position from the new absolute elapsed time.
func (s *System) Update(dtSeconds float64) {
	s.Clock.Advance(dtSeconds)
	s.recompute()
}

func (s *System) recompute() {
	t := s.Clock.ElapsedDays
	var offset mgl32.Vec3
	if s.driftEnabled {
		// The whole system drifts through the galaxy along +X. Positions
		// stay a pure function of elapsed time.
		offset = mgl32.Vec3{s.driftSpeed * float32(t), 0, 0}
	}
	for _, b := range s.Bodies {
		b.Position = PositionAt(*b.Elements(), t).Add(offset)
	}
}

// Star returns the central star, or nil if the catalog has none.
func (s *System) Star() *Body {
	for _, b := range s.Bodies {
		if b.Elements().IsStar {
			return b
		}
	}
	return nil
}

// Planets returns every body that is not the star.
func (s *System) Planets() []*Body {
	planets := make([]*Body, 0, len(s.Bodies))
	for _, b := range s.Bodies {
		if !b.Elements().IsStar {
			planets = append(planets, b)
		}
	}
	return planets
}
