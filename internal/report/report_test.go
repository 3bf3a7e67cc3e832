package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-planisphere/internal/astro"
	"github.com/litescript/ls-planisphere/internal/body"
	"github.com/litescript/ls-planisphere/internal/projection"
	"github.com/litescript/ls-planisphere/internal/sky"
	"github.com/litescript/ls-planisphere/internal/state"
)

var testInstant = time.Date(2020, time.April, 4, 12, 0, 0, 0, time.UTC)

func buildTestSky(t *testing.T) *sky.ObservedSky {
	t.Helper()
	cat, err := body.DefaultCatalogue()
	if err != nil {
		t.Fatal(err)
	}
	where, _ := astro.NewGeographicDeg(6.57, 46.52)
	center, _ := astro.NewHorizontalDeg(180, 45)
	s, err := sky.Build(testInstant, where, projection.NewStereographic(center), cat)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestBuild(t *testing.T) {
	s := buildTestSky(t)
	sum, err := Build(s, Options{ObserverName: "Lausanne", MaxStars: 5})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if sum.Observer.Name != "Lausanne" || sum.Observer.Lat != 46.52 {
		t.Errorf("observer = %+v", sum.Observer)
	}
	if sum.Sun.Name != "Sun" || sum.Sun.Altitude <= 30 {
		t.Errorf("Sun at noon = %+v, want well above the horizon", sum.Sun)
	}
	if sum.Sun.Direction != "S" {
		t.Errorf("Sun direction at noon = %q, want S", sum.Sun.Direction)
	}

	if sum.Sunrise == nil || sum.Sunset == nil {
		t.Fatal("missing sunrise or sunset")
	}
	if !sum.Sunrise.Before(testInstant) || !sum.Sunset.After(testInstant) {
		t.Errorf("sunrise %v / sunset %v do not bracket noon", sum.Sunrise, sum.Sunset)
	}

	if sum.Moon.PhaseName != "Waxing Gibbous" || !sum.Moon.Waxing {
		t.Errorf("Moon phase = %q (waxing=%v), want Waxing Gibbous", sum.Moon.PhaseName, sum.Moon.Waxing)
	}
	if sum.Moon.Elongation < 90 || sum.Moon.Elongation > 180 {
		t.Errorf("Moon elongation = %v°, want gibbous range", sum.Moon.Elongation)
	}
	if sum.Moon.Rise == nil && sum.Moon.Set == nil {
		t.Error("Moon has neither rise nor set over the next day")
	}

	if len(sum.Planets) != len(body.VisiblePlanets()) {
		t.Errorf("planets = %d, want %d", len(sum.Planets), len(body.VisiblePlanets()))
	}
	for _, p := range sum.Planets {
		if p.Glare == "" {
			t.Errorf("%s has no glare tier", p.Name)
		}
	}
}

func TestBuild_Stars(t *testing.T) {
	s := buildTestSky(t)
	sum, err := Build(s, Options{MaxStars: 5})
	if err != nil {
		t.Fatal(err)
	}

	if len(sum.Stars) == 0 || len(sum.Stars) > 5 {
		t.Fatalf("stars = %d, want 1..5", len(sum.Stars))
	}
	for i, r := range sum.Stars {
		if r.Altitude <= 0 {
			t.Errorf("%s is below the horizon (%v°)", r.Name, r.Altitude)
		}
		if i > 0 && r.Magnitude < sum.Stars[i-1].Magnitude {
			t.Errorf("stars not sorted by magnitude at %d", i)
		}
	}

	all, _ := Build(s, Options{})
	if len(all.Stars) > DefaultMaxStars {
		t.Errorf("default star count = %d, want <= %d", len(all.Stars), DefaultMaxStars)
	}
}

func TestRow(t *testing.T) {
	s := buildTestSky(t)
	r := Row(s, s.Sun())
	p := s.SunPosition()
	if r.X != p.X || r.Y != p.Y {
		t.Errorf("row position (%v, %v), want %v", r.X, r.Y, p)
	}
	if r.RA == "" || r.Dec == "" {
		t.Error("row has empty RA or Dec")
	}
}

func TestSummary_WriteJSON(t *testing.T) {
	s := buildTestSky(t)
	events := []state.Event{{Type: state.EventRise, Timestamp: testInstant, Body: "Mars", Azimuth: 110}}
	sum, err := Build(s, Options{ObserverName: "Lausanne", Events: events})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := sum.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, key := range []string{"timestamp", "observer", "local_sidereal_time", "sun", "moon", "planets", "stars", "events"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON missing key %q", key)
		}
	}
	moon := decoded["moon"].(map[string]any)
	if _, ok := moon["phase_name"]; !ok {
		t.Error("moon has no phase_name")
	}
	if _, ok := moon["name"]; !ok {
		t.Error("moon row fields are not inlined")
	}
}

func TestSummary_WriteText(t *testing.T) {
	s := buildTestSky(t)
	loc := time.FixedZone("CEST", 2*3600)
	sum, err := Build(s, Options{ObserverName: "Lausanne", Location: loc})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	sum.WriteText(&buf)
	out := buf.String()

	for _, want := range []string{"Lausanne", "Sun", "Moon: Waxing Gibbous", "Jupiter", "Brightest stars", "14:00:00+02:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	// A buffer is not a terminal.
	if strings.Contains(out, "\x1b[") {
		t.Error("text output to a buffer contains ANSI escapes")
	}
}

func TestWriteClosest(t *testing.T) {
	var buf bytes.Buffer
	WriteClosest(&buf, nil, 0.1, 0.2, 0.05)
	if !strings.Contains(buf.String(), "No object") {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	r := BodyRow{Name: "Sirius", X: 0.1, Y: 0.2, Azimuth: 200, Altitude: 20, Direction: "SW", Magnitude: -1.46}
	WriteClosest(&buf, &r, 0.1, 0.2, 0.05)
	if !strings.HasPrefix(buf.String(), "Sirius at") {
		t.Errorf("got %q", buf.String())
	}
}

func TestTruncateStr(t *testing.T) {
	if got := truncateStr("Betelgeuse", 5); got != "Bete…" {
		t.Errorf("truncateStr = %q", got)
	}
	if got := truncateStr("Vega", 5); got != "Vega" {
		t.Errorf("truncateStr = %q", got)
	}
}
