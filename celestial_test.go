package orrery

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSolarSystemCatalog(t *testing.T) {
	catalog := SolarSystem()
	if len(catalog) != 9 {
		t.Fatalf("expected the star and 8 planets, got %d entries", len(catalog))
	}
	stars := 0
	for _, el := range catalog {
		if el.IsStar {
			stars++
			if el.SemiMajorAxisAU != 0 {
				t.Fatal("the star must be the degenerate zero-axis entry")
			}
		} else if el.SemiMajorAxisAU <= 0 || el.PeriodDays <= 0 {
			t.Fatalf("%s has invalid elements", el.Name)
		}
	}
	if stars != 1 {
		t.Fatalf("expected exactly one star, got %d", stars)
	}
}

func TestElementsFromString(t *testing.T) {
	for _, name := range []string{"earth", "Earth", "SATURN"} {
		if _, err := ElementsFromString(name); err != nil {
			t.Fatalf("lookup of %s failed: %s", name, err)
		}
	}
	if _, err := ElementsFromString("Vulcan"); err == nil {
		t.Fatal("unknown body should error")
	}
}

func TestBodySharesCatalog(t *testing.T) {
	sys := NewSystem(SolarSystem())
	for _, b := range sys.Bodies {
		if b.Elements() != &solarSystem[b.ref] {
			t.Fatal("body must reference the arena record, not a copy")
		}
	}
}

func TestSystemInit(t *testing.T) {
	sys := NewSystem(SolarSystem())
	if len(sys.Planets()) != 8 {
		t.Fatalf("expected 8 planets, got %d", len(sys.Planets()))
	}
	star := sys.Star()
	if star == nil {
		t.Fatal("no star found")
	}
	if star.Position != (mgl32.Vec3{}) {
		t.Fatalf("star should start at the origin, got %v", star.Position)
	}
	if star.Path != nil {
		t.Fatal("the star has no orbit path")
	}
	segments := Conf().OrbitSegments
	for _, p := range sys.Planets() {
		if len(p.Path) != segments+1 {
			t.Fatalf("%s path has %d points, want %d", p.Elements().Name, len(p.Path), segments+1)
		}
		if p.DisplayRadius <= 0 {
			t.Fatalf("%s has non-positive display radius", p.Elements().Name)
		}
	}
}

func TestSystemUpdateMovesPlanets(t *testing.T) {
	sys := NewSystem(SolarSystem())
	before := make([]mgl32.Vec3, len(sys.Bodies))
	for i, b := range sys.Bodies {
		before[i] = b.Position
	}
	sys.Update(1.0)
	moved := false
	for i, b := range sys.Bodies {
		if !b.Elements().IsStar && b.Position != before[i] {
			moved = true
		}
	}
	if !moved {
		t.Fatal("no planet moved after an update")
	}
	if sys.Star().Position != (mgl32.Vec3{}) {
		t.Fatal("star drifted with drift disabled")
	}
}

func TestMercuryOutpacesNeptune(t *testing.T) {
	mercury, _ := ElementsFromString("Mercury")
	neptune, _ := ElementsFromString("Neptune")
	merc := PositionAt(mercury, 0).Sub(PositionAt(mercury, 100)).Len()
	nept := PositionAt(neptune, 0).Sub(PositionAt(neptune, 100)).Len()
	if merc <= nept {
		t.Fatalf("Mercury should sweep more distance than Neptune: %f <= %f", merc, nept)
	}
}
