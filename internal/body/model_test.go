package body

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-planisphere/internal/astro"
)

func daysAndConv(at time.Time) (float64, astro.EclipticToEquatorial) {
	return astro.J2010.DaysUntil(at), astro.NewEclipticToEquatorial(at)
}

func TestSunModel(t *testing.T) {
	days, conv := daysAndConv(time.Date(2003, time.July, 27, 0, 0, 0, 0, time.UTC))
	if days != -2349 {
		t.Fatalf("days = %v, want -2349", days)
	}

	sun, err := SunModel{}.Compute(days, conv)
	if err != nil {
		t.Fatal(err)
	}
	if got := sun.Ecliptic().LonDeg(); math.Abs(got-123.580601) > 1e-6 {
		t.Errorf("ecliptic longitude = %.7f°, want 123.580601°", got)
	}
	if sun.Ecliptic().Lat() != 0 {
		t.Errorf("ecliptic latitude = %v, want 0", sun.Ecliptic().Lat())
	}
	if size := astro.RadToDeg(sun.AngularSize()); size < 0.52 || size > 0.55 {
		t.Errorf("angular size = %v°, want ≈ 0.53°", size)
	}
	if sun.Magnitude() != -26.7 {
		t.Errorf("magnitude = %v, want -26.7", sun.Magnitude())
	}

	obj, err := SunModel{}.At(days, conv)
	if err != nil {
		t.Fatal(err)
	}
	if obj.(Sun) != sun {
		t.Error("At and Compute disagree")
	}
}

func TestMoonModel(t *testing.T) {
	days, conv := daysAndConv(time.Date(2003, time.September, 1, 0, 0, 0, 0, time.UTC))

	moon, err := MoonModel{}.Compute(days, conv)
	if err != nil {
		t.Fatal(err)
	}
	eq := moon.Equatorial()
	if math.Abs(eq.RAHr()-14.211456) > 1e-5 {
		t.Errorf("RA = %.6fh, want 14.211456h", eq.RAHr())
	}
	if math.Abs(eq.Dec()+0.201141) > 1e-5 {
		t.Errorf("Dec = %.6f rad, want -0.201141", eq.Dec())
	}
	if math.Abs(moon.Phase()-0.225006) > 1e-5 {
		t.Errorf("phase = %.6f, want 0.225006", moon.Phase())
	}
	if !moon.Waxing() {
		t.Error("moon five days after new should be waxing")
	}
	if moon.PhaseName() != "Waxing Crescent" {
		t.Errorf("PhaseName() = %q, want Waxing Crescent", moon.PhaseName())
	}
	if size := astro.RadToDeg(moon.AngularSize()); math.Abs(size-0.546821) > 1e-5 {
		t.Errorf("angular size = %.6f°, want 0.546821°", size)
	}
}

func TestPlanetModels(t *testing.T) {
	days, conv := daysAndConv(time.Date(2003, time.November, 22, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		model  PlanetModel
		raHr   float64
		decDeg float64
		mag    float64
	}{
		{Mercury, 16.820075, -24.500872, -1.437715},
		{Venus, 17.544829, -24.379244, -4.109670},
		{Mars, 23.154073, -6.821661, -1.119626},
		{Jupiter, 11.187155, 6.356636, -1.988566},
		{Saturn, 6.903571, 22.124541, 0.478557},
		{Uranus, 22.106979, -12.458022, 5.828113},
		{Neptune, 20.879016, -17.562608, 7.936029},
	}

	for _, tt := range tests {
		t.Run(tt.model.Name(), func(t *testing.T) {
			p, err := tt.model.Compute(days, conv)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.Equatorial().RAHr(); math.Abs(got-tt.raHr) > 1e-3 {
				t.Errorf("RA = %.6fh, want %.6fh", got, tt.raHr)
			}
			if got := p.Equatorial().DecDeg(); math.Abs(got-tt.decDeg) > 1e-3 {
				t.Errorf("Dec = %.6f°, want %.6f°", got, tt.decDeg)
			}
			if math.Abs(p.Magnitude()-tt.mag) > 1e-3 {
				t.Errorf("magnitude = %.4f, want %.4f", p.Magnitude(), tt.mag)
			}
			if p.AngularSize() <= 0 {
				t.Errorf("angular size = %v, want > 0", p.AngularSize())
			}
		})
	}
}

func TestVisiblePlanets(t *testing.T) {
	visible := VisiblePlanets()
	if len(visible) != len(Planets)-1 {
		t.Fatalf("len(VisiblePlanets()) = %d, want %d", len(visible), len(Planets)-1)
	}
	for _, p := range visible {
		if p.Name() == "Earth" {
			t.Error("Earth listed as visible")
		}
	}
	if !Mercury.Inner() || !Venus.Inner() || Mars.Inner() {
		t.Error("inner/outer classification wrong")
	}
}

func TestModels_ValidOverTime(t *testing.T) {
	models := []Model{SunModel{}, MoonModel{}}
	for _, p := range VisiblePlanets() {
		models = append(models, p)
	}

	start := time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 100*365; day += 97 {
		at := start.AddDate(0, 0, day)
		days, conv := daysAndConv(at)
		for _, m := range models {
			obj, err := m.At(days, conv)
			if err != nil {
				t.Fatalf("%s at %s: %v", m.Name(), at.Format(time.DateOnly), err)
			}
			if obj.Name() != m.Name() || !obj.Equatorial().Valid() {
				t.Fatalf("%s at %s: invalid object %v", m.Name(), at.Format(time.DateOnly), obj)
			}
			if math.IsNaN(obj.Magnitude()) {
				t.Fatalf("%s at %s: NaN magnitude", m.Name(), at.Format(time.DateOnly))
			}
		}
	}
}
