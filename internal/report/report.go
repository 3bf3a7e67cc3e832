// Package report renders a headless summary of an observed sky as text or
// JSON.
package report

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/litescript/ls-planisphere/internal/almanac"
	"github.com/litescript/ls-planisphere/internal/astro"
	"github.com/litescript/ls-planisphere/internal/body"
	"github.com/litescript/ls-planisphere/internal/sky"
	"github.com/litescript/ls-planisphere/internal/state"
)

// Sampling used for rise/set searches.
const (
	almanacSpan = 24 * time.Hour
	almanacStep = 10 * time.Minute
)

// DefaultMaxStars is the number of stars listed when Options leaves it unset.
const DefaultMaxStars = 10

// Options controls what goes into a summary.
type Options struct {
	ObserverName string
	// Location is used for local times and the sunrise date. Nil is UTC.
	Location *time.Location
	MaxStars int
	Events   []state.Event
}

// Summary is the JSON-serializable description of one snapshot.
type Summary struct {
	Timestamp time.Time      `json:"timestamp"`
	Observer  ObserverExport `json:"observer"`
	LST       string         `json:"local_sidereal_time"`
	Sunrise   *time.Time     `json:"sunrise,omitempty"`
	Sunset    *time.Time     `json:"sunset,omitempty"`
	Sun       BodyRow        `json:"sun"`
	Moon      MoonRow        `json:"moon"`
	Planets   []BodyRow      `json:"planets"`
	Stars     []BodyRow      `json:"stars"`
	Events    []state.Event  `json:"events,omitempty"`

	location *time.Location
}

// ObserverExport is a JSON-friendly observer position.
type ObserverExport struct {
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// BodyRow describes one object as seen by the observer.
type BodyRow struct {
	Name          string     `json:"name"`
	RA            string     `json:"ra"`
	Dec           string     `json:"dec"`
	Azimuth       float64    `json:"azimuth_deg"`
	Altitude      float64    `json:"altitude_deg"`
	Direction     string     `json:"direction"`
	Magnitude     float64    `json:"magnitude"`
	Tier          string     `json:"altitude_tier"`
	X             float64    `json:"x"`
	Y             float64    `json:"y"`
	Rise          *time.Time `json:"rise,omitempty"`
	Set           *time.Time `json:"set,omitempty"`
	SunSeparation float64    `json:"sun_separation_deg,omitempty"`
	Glare         string     `json:"glare,omitempty"`
}

// MoonRow adds the phase to a BodyRow.
type MoonRow struct {
	BodyRow
	Phase      float64 `json:"phase"`
	PhaseName  string  `json:"phase_name"`
	Waxing     bool    `json:"waxing"`
	Elongation float64 `json:"elongation_deg"`
}

// Build summarises s.
func Build(s *sky.ObservedSky, opts Options) (*Summary, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	maxStars := opts.MaxStars
	if maxStars <= 0 {
		maxStars = DefaultMaxStars
	}

	where := s.Where()
	sum := &Summary{
		Timestamp: s.Instant(),
		Observer: ObserverExport{
			Name: opts.ObserverName,
			Lat:  where.LatDeg(),
			Lon:  where.LonDeg(),
		},
		LST:      astro.FormatRA(s.EquatorialToHorizontal().LocalSiderealTime()),
		Events:   opts.Events,
		location: loc,
	}

	local := s.Instant().In(loc)
	rise, set := sunrise.SunriseSunset(where.LatDeg(), where.LonDeg(), local.Year(), local.Month(), local.Day())
	sum.Sunrise, sum.Sunset = timePtr(rise), timePtr(set)

	sun := s.Sun()
	sum.Sun = Row(s, sun)

	moon := s.Moon()
	moonRow, err := withAlmanac(s, Row(s, moon), body.MoonModel{})
	if err != nil {
		return nil, err
	}
	sum.Moon = MoonRow{
		BodyRow:    moonRow,
		Phase:      moon.Phase(),
		PhaseName:  moon.PhaseName(),
		Waxing:     moon.Waxing(),
		Elongation: almanac.SunSeparation(sun, moon),
	}

	models := make(map[string]body.PlanetModel)
	for _, m := range body.VisiblePlanets() {
		models[m.Name()] = m
	}
	for _, p := range s.Planets() {
		r := Row(s, p)
		if m, ok := models[p.Name()]; ok {
			if r, err = withAlmanac(s, r, m); err != nil {
				return nil, err
			}
		}
		r.SunSeparation = almanac.SunSeparation(sun, p)
		r.Glare = almanac.GlareFor(r.SunSeparation).String()
		sum.Planets = append(sum.Planets, r)
	}

	sum.Stars = brightestVisible(s, maxStars)
	return sum, nil
}

// Row describes o as seen in s.
func Row(s *sky.ObservedSky, o body.Object) BodyRow {
	eq := o.Equatorial()
	h, _ := s.Horizontal(o)
	p, _ := s.PositionOf(o)
	return BodyRow{
		Name:      o.Name(),
		RA:        astro.FormatRA(eq.RA()),
		Dec:       astro.FormatDec(eq.Dec()),
		Azimuth:   h.AzDeg(),
		Altitude:  h.AltDeg(),
		Direction: h.AzOctantName("N", "E", "S", "W"),
		Magnitude: o.Magnitude(),
		Tier:      almanac.TierFor(h.AltDeg()).String(),
		X:         p.X,
		Y:         p.Y,
	}
}

// withAlmanac fills the next rise and set of m over the coming day.
func withAlmanac(s *sky.ObservedSky, r BodyRow, m body.Model) (BodyRow, error) {
	samples, err := almanac.Track(m, s.Instant(), almanacSpan, almanacStep)
	if err != nil {
		return r, fmt.Errorf("almanac for %s: %w", m.Name(), err)
	}
	w, err := almanac.RiseSet(s.Where(), samples)
	if err != nil {
		return r, fmt.Errorf("almanac for %s: %w", m.Name(), err)
	}
	if w.Valid {
		r.Rise, r.Set = timePtr(w.Rise), timePtr(w.Set)
	}
	return r, nil
}

// brightestVisible returns up to n stars above the horizon, brightest
// first.
func brightestVisible(s *sky.ObservedSky, n int) []BodyRow {
	var rows []BodyRow
	for _, st := range s.Stars() {
		h, _ := s.Horizontal(st)
		if h.AltDeg() <= almanac.MinAltitude {
			continue
		}
		rows = append(rows, Row(s, st))
	}
	slices.SortStableFunc(rows, func(a, b BodyRow) int {
		return cmp.Compare(a.Magnitude, b.Magnitude)
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// WriteJSON writes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
