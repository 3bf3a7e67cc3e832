package almanac

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/litescript/ls-planisphere/internal/astro"
	"github.com/litescript/ls-planisphere/internal/body"
)

func observer(t *testing.T, lon, lat float64) astro.Geographic {
	t.Helper()
	g, err := astro.NewGeographicDeg(lon, lat)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func star(t *testing.T, raDeg, decDeg float64) astro.Equatorial {
	t.Helper()
	eq, err := astro.NewEquatorialDeg(raDeg, decDeg)
	if err != nil {
		t.Fatal(err)
	}
	return eq
}

func fixedDay(t *testing.T, eq astro.Equatorial, from time.Time, step time.Duration) []Sample {
	t.Helper()
	samples, err := Fixed(eq, from, 24*time.Hour, step)
	if err != nil {
		t.Fatal(err)
	}
	return samples
}

func TestRiseSet_Basic(t *testing.T) {
	goldstone := observer(t, -116.89, 35.4267)
	vega := star(t, 279.2347, 38.7837)

	samples := fixedDay(t, vega, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), time.Hour)
	if len(samples) != 25 {
		t.Fatalf("len(samples) = %d, want 25", len(samples))
	}

	window, err := RiseSet(goldstone, samples)
	if err != nil {
		t.Fatalf("RiseSet() error = %v", err)
	}
	if !window.Valid {
		t.Error("RiseSet() returned invalid window")
	}
	if window.AlwaysVisible || window.NeverVisible {
		t.Errorf("Vega should rise and set from Goldstone, got AlwaysVisible=%v, NeverVisible=%v",
			window.AlwaysVisible, window.NeverVisible)
	}
	if window.MaxAltitude < 0 {
		t.Errorf("MaxAltitude = %.2f°, want > 0", window.MaxAltitude)
	}
	if !window.Rise.IsZero() && !window.Set.IsZero() && window.Set.After(window.Rise) {
		if window.Transit.Before(window.Rise) || window.Transit.After(window.Set) {
			t.Errorf("Transit at %v not between Rise %v and Set %v", window.Transit, window.Rise, window.Set)
		}
	}
}

func TestRiseSet_CircumpolarAndNeverVisible(t *testing.T) {
	arctic := observer(t, 0, 89)
	from := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)

	window, err := RiseSet(arctic, fixedDay(t, star(t, 37.9542, 89.2641), from, time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !window.Valid || !window.AlwaysVisible {
		t.Errorf("Polaris should be circumpolar from 89°N, got %+v", window)
	}

	window, err = RiseSet(arctic, fixedDay(t, star(t, 95.9879, -52.6957), from, time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !window.Valid || !window.NeverVisible {
		t.Errorf("Canopus should never rise at 89°N, got %+v", window)
	}
}

func TestRiseSet_InsufficientSamples(t *testing.T) {
	where := observer(t, 0, 0)
	eq := star(t, 0, 0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		samples []Sample
	}{
		{"empty samples", nil},
		{"one sample", []Sample{{Time: now, Position: eq}}},
		{"two samples", []Sample{{Time: now, Position: eq}, {Time: now.Add(time.Hour), Position: eq}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RiseSet(where, tt.samples); !errors.Is(err, ErrInsufficientSamples) {
				t.Errorf("RiseSet() error = %v, want ErrInsufficientSamples", err)
			}
		})
	}
}

func TestMaxAltitude(t *testing.T) {
	goldstone := observer(t, -116.89, 35.4267)
	vega := star(t, 279.2347, 38.7837)
	samples := fixedDay(t, vega, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), time.Hour)

	transit, maxAlt := MaxAltitude(goldstone, samples)

	// Upper culmination: 90° - |lat - dec|.
	expected := 90.0 - math.Abs(35.4267-38.7837)
	if math.Abs(maxAlt-expected) > 5 {
		t.Errorf("MaxAltitude() = %.2f°, expected ~%.2f°", maxAlt, expected)
	}
	if transit.Before(samples[0].Time) || transit.After(samples[len(samples)-1].Time) {
		t.Errorf("transit %v outside sample range", transit)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		altDeg float64
		want   AltitudeTier
	}{
		{-10, AltitudeNone},
		{0, AltitudeNone},
		{5, AltitudeLow},
		{14.9, AltitudeLow},
		{15, AltitudeMedium},
		{44.9, AltitudeMedium},
		{45, AltitudeHigh},
		{90, AltitudeHigh},
	}
	for _, tt := range tests {
		if got := TierFor(tt.altDeg); got != tt.want {
			t.Errorf("TierFor(%.1f) = %v, want %v", tt.altDeg, got, tt.want)
		}
	}
}

func TestInterpolateCrossing(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	tests := []struct {
		name     string
		alt1     float64
		alt2     float64
		wantFrac float64
	}{
		{"midpoint crossing", -10, 10, 0.5},
		{"quarter crossing", -5, 15, 0.25},
		{"three-quarter crossing", -15, 5, 0.75},
		{"flat", 1, 1.00001, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpolateCrossing(t1, t2, tt.alt1, tt.alt2, 0)
			frac := float64(got.Sub(t1)) / float64(t2.Sub(t1))
			if math.Abs(frac-tt.wantFrac) > 0.01 {
				t.Errorf("fraction = %.3f, want %.3f", frac, tt.wantFrac)
			}
		})
	}
}

func TestTrack_InvalidStep(t *testing.T) {
	if _, err := Track(body.SunModel{}, time.Now(), time.Hour, 0); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("Track error = %v, want ErrInvalidStep", err)
	}
	if _, err := Fixed(astro.Equatorial{}, time.Now(), time.Hour, -time.Minute); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("Fixed error = %v, want ErrInvalidStep", err)
	}
}

// The Sun model's sunrise agrees with go-sunrise to within the refraction
// and semi-diameter allowance that library applies (a few minutes).
func TestRiseSet_SunAgreesWithSunriseLibrary(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		date     time.Time
	}{
		{"Lausanne equinox", 6.57, 46.52, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{"Sydney summer", 151.21, -33.87, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"Quito", -78.47, -0.18, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where := observer(t, tt.lon, tt.lat)
			wantRise, wantSet := sunrise.SunriseSunset(tt.lat, tt.lon, tt.date.Year(), tt.date.Month(), tt.date.Day())

			// Sample from twelve hours before the library's sunrise so the
			// first upward crossing is the one being compared.
			from := wantRise.Add(-12 * time.Hour)
			samples, err := Track(body.SunModel{}, from, 36*time.Hour, 5*time.Minute)
			if err != nil {
				t.Fatal(err)
			}
			window, err := RiseSet(where, samples)
			if err != nil {
				t.Fatal(err)
			}

			if d := window.Rise.Sub(wantRise); d < -12*time.Minute || d > 12*time.Minute {
				t.Errorf("rise %v, go-sunrise %v (diff %v)", window.Rise, wantRise, d)
			}
			if d := window.Set.Sub(wantSet); d < -12*time.Minute || d > 12*time.Minute {
				t.Errorf("set %v, go-sunrise %v (diff %v)", window.Set, wantSet, d)
			}
		})
	}
}

func TestGlare(t *testing.T) {
	days := astro.J2010.DaysUntil(time.Date(2003, 11, 22, 0, 0, 0, 0, time.UTC))
	conv := astro.NewEclipticToEquatorial(time.Date(2003, 11, 22, 0, 0, 0, 0, time.UTC))
	sun, err := body.SunModel{}.Compute(days, conv)
	if err != nil {
		t.Fatal(err)
	}
	if sep := SunSeparation(sun, sun); sep != 0 {
		t.Errorf("separation of the Sun from itself = %v", sep)
	}
	jupiter, err := body.Jupiter.Compute(days, conv)
	if err != nil {
		t.Fatal(err)
	}
	if sep := SunSeparation(sun, jupiter); sep < 20 || GlareFor(sep) != GlareNone {
		t.Errorf("Jupiter at %v° from the Sun in Nov 2003, want well clear", sep)
	}

	tiers := []struct {
		sep  float64
		want GlareTier
	}{
		{5, GlareWarning},
		{15, GlareCaution},
		{45, GlareNone},
	}
	for _, tt := range tiers {
		if got := GlareFor(tt.sep); got != tt.want {
			t.Errorf("GlareFor(%v) = %v, want %v", tt.sep, got, tt.want)
		}
	}
}
