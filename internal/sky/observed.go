// Package sky builds snapshots of the sky as seen by an observer and
// answers nearest-object queries on the projected plane.
package sky

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/litescript/ls-planisphere/internal/astro"
	"github.com/litescript/ls-planisphere/internal/body"
	"github.com/litescript/ls-planisphere/internal/projection"
)

// Errors returned by Build and the queries.
var (
	ErrNoCatalogue      = errors.New("observed sky requires a star catalogue")
	ErrNegativeDistance = errors.New("maximum distance must be non-negative")
)

// ObservedSky is the sky seen from one place at one instant, projected onto
// a plane. It is immutable and safe for concurrent use.
type ObservedSky struct {
	instant   time.Time
	where     astro.Geographic
	proj      projection.Stereographic
	catalogue *body.Catalogue
	eqToHor   astro.EquatorialToHorizontal

	sun     body.Sun
	moon    body.Moon
	planets []body.Planet

	// Objects in index order: Sun, Moon, planets, then catalogue stars.
	objects    []body.Object
	positions  []r2.Vec
	horizontal []astro.Horizontal
	lookup     map[body.Object]int
	norms      normIndex
}

const (
	sunIndex    = 0
	moonIndex   = 1
	planetIndex = 2
)

// Build computes the sky at instant t for an observer at where, projected
// with proj.
func Build(t time.Time, where astro.Geographic, proj projection.Stereographic, cat *body.Catalogue) (*ObservedSky, error) {
	if cat == nil {
		return nil, ErrNoCatalogue
	}
	if !where.Valid() {
		return nil, fmt.Errorf("observer: %w", astro.ErrOutOfRange)
	}

	days := astro.J2010.DaysUntil(t)
	eclToEq := astro.NewEclipticToEquatorial(t)
	eqToHor := astro.NewEquatorialToHorizontal(t, where)

	sun, err := body.SunModel{}.Compute(days, eclToEq)
	if err != nil {
		return nil, err
	}
	moon, err := body.MoonModel{}.Compute(days, eclToEq)
	if err != nil {
		return nil, err
	}
	models := body.VisiblePlanets()
	planets := make([]body.Planet, len(models))
	for i, m := range models {
		if planets[i], err = m.Compute(days, eclToEq); err != nil {
			return nil, err
		}
	}

	n := planetIndex + len(planets) + cat.Len()
	s := &ObservedSky{
		instant:    t,
		where:      where,
		proj:       proj,
		catalogue:  cat,
		eqToHor:    eqToHor,
		sun:        sun,
		moon:       moon,
		planets:    planets,
		objects:    make([]body.Object, 0, n),
		positions:  make([]r2.Vec, 0, n),
		horizontal: make([]astro.Horizontal, 0, n),
		lookup:     make(map[body.Object]int, n),
	}

	s.add(sun)
	s.add(moon)
	for _, p := range planets {
		s.add(p)
	}
	for _, st := range cat.Stars() {
		s.add(st)
	}
	s.norms = newNormIndex(s.positions)
	return s, nil
}

func (s *ObservedSky) add(o body.Object) {
	h := s.eqToHor.Apply(o.Equatorial())
	if _, dup := s.lookup[o]; !dup {
		s.lookup[o] = len(s.objects)
	}
	s.objects = append(s.objects, o)
	s.horizontal = append(s.horizontal, h)
	s.positions = append(s.positions, s.proj.Apply(h))
}

// Instant returns the instant the sky was computed for.
func (s *ObservedSky) Instant() time.Time { return s.instant }

// Where returns the observer's position.
func (s *ObservedSky) Where() astro.Geographic { return s.where }

// Projection returns the projection used for plane positions.
func (s *ObservedSky) Projection() projection.Stereographic { return s.proj }

// EquatorialToHorizontal returns the conversion for this observer and
// instant.
func (s *ObservedSky) EquatorialToHorizontal() astro.EquatorialToHorizontal { return s.eqToHor }

// Catalogue returns the star catalogue.
func (s *ObservedSky) Catalogue() *body.Catalogue { return s.catalogue }

// Sun returns the Sun.
func (s *ObservedSky) Sun() body.Sun { return s.sun }

// SunPosition returns the Sun's plane position.
func (s *ObservedSky) SunPosition() r2.Vec { return s.positions[sunIndex] }

// Moon returns the Moon.
func (s *ObservedSky) Moon() body.Moon { return s.moon }

// MoonPosition returns the Moon's plane position.
func (s *ObservedSky) MoonPosition() r2.Vec { return s.positions[moonIndex] }

// Planets returns the visible planets, innermost first.
func (s *ObservedSky) Planets() []body.Planet { return slices.Clone(s.planets) }

// PlanetPositions returns the planets' plane positions, in Planets order.
func (s *ObservedSky) PlanetPositions() []r2.Vec {
	return slices.Clone(s.positions[planetIndex : planetIndex+len(s.planets)])
}

func (s *ObservedSky) starOffset() int { return planetIndex + len(s.planets) }

// Stars returns the catalogue stars.
func (s *ObservedSky) Stars() []body.Star { return s.catalogue.Stars() }

// StarPositions returns the stars' plane positions, in catalogue order.
func (s *ObservedSky) StarPositions() []r2.Vec {
	return slices.Clone(s.positions[s.starOffset():])
}

// StarPosition returns the plane position of the catalogue star at index i.
func (s *ObservedSky) StarPosition(i int) r2.Vec {
	return s.positions[s.starOffset()+i]
}

// Asterisms returns the catalogue's asterisms.
func (s *ObservedSky) Asterisms() []body.Asterism { return s.catalogue.Asterisms() }

// AsterismIndices returns the catalogue star indices of asterism i.
func (s *ObservedSky) AsterismIndices(i int) []int { return s.catalogue.AsterismIndices(i) }

// Objects returns every object in the snapshot.
func (s *ObservedSky) Objects() []body.Object { return slices.Clone(s.objects) }

// PositionOf returns the plane position of o.
func (s *ObservedSky) PositionOf(o body.Object) (r2.Vec, bool) {
	i, ok := s.lookup[o]
	if !ok {
		return r2.Vec{}, false
	}
	return s.positions[i], true
}

// Horizontal returns the horizontal coordinates of o.
func (s *ObservedSky) Horizontal(o body.Object) (astro.Horizontal, bool) {
	i, ok := s.lookup[o]
	if !ok {
		return astro.Horizontal{}, false
	}
	return s.horizontal[i], true
}

// ObjectClosestTo returns the object nearest to point, provided it lies
// within maxDistance. Among equidistant objects the one added first wins.
// It panics if maxDistance is negative; see ObjectClosestToErr.
func (s *ObservedSky) ObjectClosestTo(point r2.Vec, maxDistance float64) (body.Object, bool) {
	o, ok, err := s.ObjectClosestToErr(point, maxDistance)
	if err != nil {
		panic(err)
	}
	return o, ok
}

// ObjectClosestToErr is ObjectClosestTo returning ErrNegativeDistance
// instead of panicking.
func (s *ObservedSky) ObjectClosestToErr(point r2.Vec, maxDistance float64) (body.Object, bool, error) {
	if !(maxDistance >= 0) {
		return nil, false, fmt.Errorf("%v: %w", maxDistance, ErrNegativeDistance)
	}

	best, bestDist := -1, maxDistance
	for _, c := range s.candidates(point, maxDistance) {
		d := r2.Norm(r2.Sub(s.positions[c], point))
		if d < bestDist || (best < 0 && d == bestDist) {
			best, bestDist = c, d
		}
	}
	if best < 0 {
		return nil, false, nil
	}
	return s.objects[best], true, nil
}

// ObjectsWithin returns the objects within radius of point, nearest first.
func (s *ObservedSky) ObjectsWithin(point r2.Vec, radius float64) ([]body.Object, error) {
	if !(radius >= 0) {
		return nil, fmt.Errorf("%v: %w", radius, ErrNegativeDistance)
	}

	type hit struct {
		index int
		dist  float64
	}
	var hits []hit
	for _, c := range s.candidates(point, radius) {
		if d := r2.Norm(r2.Sub(s.positions[c], point)); d <= radius {
			hits = append(hits, hit{c, d})
		}
	}
	slices.SortStableFunc(hits, func(a, b hit) int { return cmp.Compare(a.dist, b.dist) })

	out := make([]body.Object, len(hits))
	for i, h := range hits {
		out[i] = s.objects[h.index]
	}
	return out, nil
}

// candidates returns the indices of objects whose norm lies within r of
// ‖point‖, in ascending index order.
func (s *ObservedSky) candidates(point r2.Vec, r float64) []int {
	n := r2.Norm(point)
	band := s.norms.band(math.Max(0, n-r), n+r)
	out := make([]int, len(band))
	for i, e := range band {
		out[i] = e.index
	}
	slices.Sort(out)
	return out
}
