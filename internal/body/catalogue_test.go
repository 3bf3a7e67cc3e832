package body

import (
	"errors"
	"strings"
	"testing"
)

func testStar(t *testing.T, hip int, name string, ra, dec float64) Star {
	t.Helper()
	s, err := NewStar(hip, name, mustEq(t, ra, dec), 1, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCatalogueBuilder(t *testing.T) {
	a := testStar(t, 1, "A", 10, 10)
	b := testStar(t, 2, "B", 20, 20)
	c := testStar(t, 3, "C", 30, 30)

	cat, err := NewCatalogueBuilder().
		AddStar(a).AddStar(b).AddStar(c).
		AddAsterism(NewAsterism("line", c, a)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if cat.Len() != 3 || cat.Star(1) != b {
		t.Errorf("stars not kept in insertion order: %v", cat.Stars())
	}
	if i, ok := cat.IndexOf(c); !ok || i != 2 {
		t.Errorf("IndexOf(C) = %d, %v; want 2, true", i, ok)
	}
	got := cat.AsterismIndices(0)
	if len(got) != 2 || got[0] != 2 || got[1] != 0 {
		t.Errorf("AsterismIndices(0) = %v, want [2 0]", got)
	}
	if cat.Asterisms()[0].Name() != "line" {
		t.Errorf("asterism name = %q", cat.Asterisms()[0].Name())
	}
}

func TestCatalogueBuilder_UnknownStar(t *testing.T) {
	a := testStar(t, 1, "A", 10, 10)
	stray := testStar(t, 9, "Stray", 50, 50)

	_, err := NewCatalogueBuilder().
		AddStar(a).
		AddAsterism(NewAsterism("broken", a, stray)).
		Build()
	if !errors.Is(err, ErrUnknownStar) {
		t.Fatalf("Build error = %v, want ErrUnknownStar", err)
	}
	if !strings.Contains(err.Error(), "Stray") {
		t.Errorf("error %q does not name the missing star", err)
	}
}

func TestCatalogue_Immutable(t *testing.T) {
	a := testStar(t, 1, "A", 10, 10)
	b := NewCatalogueBuilder().AddStar(a)
	cat, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	b.AddStar(testStar(t, 2, "B", 20, 20))
	stars := cat.Stars()
	stars[0] = testStar(t, 3, "C", 30, 30)

	if cat.Len() != 1 || cat.Star(0) != a {
		t.Error("catalogue changed after Build")
	}
}

func TestDefaultCatalogue(t *testing.T) {
	cat, err := DefaultCatalogue()
	if err != nil {
		t.Fatalf("DefaultCatalogue: %v", err)
	}
	if cat.Len() < 50 {
		t.Errorf("expected at least 50 stars, got %d", cat.Len())
	}

	known := map[string]struct {
		minRA, maxRA   float64
		minDec, maxDec float64
		maxMag         float64
	}{
		"Sirius":     {100, 103, -18, -15, 0},
		"Vega":       {278, 281, 37, 40, 0.5},
		"Polaris":    {35, 40, 88, 90, 2.5},
		"Canopus":    {94, 98, -54, -51, 0},
		"Betelgeuse": {87, 90, 6, 9, 1.0},
	}
	byName := make(map[string]Star)
	hips := make(map[int]bool)
	for _, s := range cat.Stars() {
		byName[s.Name()] = s
		if hips[s.HipparcosID()] {
			t.Errorf("duplicate Hipparcos id %d", s.HipparcosID())
		}
		hips[s.HipparcosID()] = true
	}
	for name, want := range known {
		s, ok := byName[name]
		if !ok {
			t.Errorf("%s missing from catalogue", name)
			continue
		}
		ra, dec := s.Equatorial().RADeg(), s.Equatorial().DecDeg()
		if ra < want.minRA || ra > want.maxRA || dec < want.minDec || dec > want.maxDec {
			t.Errorf("%s at (%v, %v), outside expected box", name, ra, dec)
		}
		if s.Magnitude() > want.maxMag {
			t.Errorf("%s mag %v, want < %v", name, s.Magnitude(), want.maxMag)
		}
	}

	names := make(map[string]bool)
	for i, a := range cat.Asterisms() {
		names[a.Name()] = true
		if len(cat.AsterismIndices(i)) != len(a.Stars()) {
			t.Errorf("asterism %s: index count mismatch", a.Name())
		}
	}
	for _, n := range []string{"Orion", "Ursa Major", "Cassiopeia", "Summer Triangle", "Crux"} {
		if !names[n] {
			t.Errorf("asterism %s missing", n)
		}
	}
}
