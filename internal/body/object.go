// Package body models the celestial objects shown on the sky: the Sun, the
// Moon, the planets and catalogued stars, together with the closed-form
// models that position the solar-system bodies at a given date.
package body

import (
	"errors"
	"fmt"
	"math"

	"github.com/litescript/ls-planisphere/internal/astro"
)

// Errors returned when constructing objects and catalogues.
var (
	ErrMissingName        = errors.New("celestial object requires a name")
	ErrMissingPosition    = errors.New("celestial object requires an equatorial position")
	ErrUnknownStar        = errors.New("asterism references a star not in the catalogue")
	ErrInvariantViolation = errors.New("model produced an invalid position")

	// ErrOutOfRange is astro.ErrOutOfRange so callers can test either.
	ErrOutOfRange = astro.ErrOutOfRange
)

// Object is a celestial object as seen from Earth at one instant.
type Object interface {
	Name() string
	Equatorial() astro.Equatorial
	// AngularSize is the apparent diameter in radians.
	AngularSize() float64
	Magnitude() float64
	// Info is a short human-readable description.
	Info() string
}

type object struct {
	name        string
	eq          astro.Equatorial
	angularSize float64
	magnitude   float64
}

func newObject(name string, eq astro.Equatorial, angularSize, magnitude float64) (object, error) {
	if name == "" {
		return object{}, ErrMissingName
	}
	if !eq.Valid() {
		return object{}, fmt.Errorf("%s: %w", name, ErrMissingPosition)
	}
	if !(angularSize >= 0) {
		return object{}, fmt.Errorf("%s: angular size %v: %w", name, angularSize, ErrOutOfRange)
	}
	return object{name: name, eq: eq, angularSize: angularSize, magnitude: magnitude}, nil
}

func (o object) Name() string                 { return o.name }
func (o object) Equatorial() astro.Equatorial { return o.eq }
func (o object) AngularSize() float64         { return o.angularSize }
func (o object) Magnitude() float64           { return o.magnitude }
func (o object) Info() string                 { return o.name }

func (o object) String() string {
	return fmt.Sprintf("%s %s mag %.2f", o.name, o.eq, o.magnitude)
}

// Sun is the Sun at one instant.
type Sun struct {
	object
	ecliptic    astro.Ecliptic
	meanAnomaly float64
}

const (
	sunName      = "Sun"
	sunMagnitude = -26.7
)

// NewSun returns the Sun at the given positions. meanAnomaly is in radians.
func NewSun(ecl astro.Ecliptic, eq astro.Equatorial, angularSize, meanAnomaly float64) (Sun, error) {
	o, err := newObject(sunName, eq, angularSize, sunMagnitude)
	if err != nil {
		return Sun{}, err
	}
	if !ecl.Valid() {
		return Sun{}, fmt.Errorf("%s ecliptic: %w", sunName, ErrMissingPosition)
	}
	return Sun{object: o, ecliptic: ecl, meanAnomaly: meanAnomaly}, nil
}

// Ecliptic returns the geocentric ecliptic position.
func (s Sun) Ecliptic() astro.Ecliptic { return s.ecliptic }

// MeanAnomaly returns the mean anomaly in radians.
func (s Sun) MeanAnomaly() float64 { return s.meanAnomaly }

// Moon is the Moon at one instant.
type Moon struct {
	object
	phase  float64
	waxing bool
}

const moonName = "Moon"

var phaseRange = astro.MustClosedInterval(0, 1)

// NewMoon returns the Moon at eq. phase is the illuminated fraction in
// [0, 1].
func NewMoon(eq astro.Equatorial, angularSize, magnitude, phase float64) (Moon, error) {
	o, err := newObject(moonName, eq, angularSize, magnitude)
	if err != nil {
		return Moon{}, err
	}
	if !phaseRange.Contains(phase) {
		return Moon{}, fmt.Errorf("%s phase %v: %w", moonName, phase, ErrOutOfRange)
	}
	return Moon{object: o, phase: phase}, nil
}

// Phase returns the illuminated fraction of the disc.
func (m Moon) Phase() float64 { return m.phase }

// Waxing reports whether the illuminated fraction is growing. Only Moons
// produced by MoonModel know their elongation; others report false.
func (m Moon) Waxing() bool { return m.waxing }

// PhaseName returns the name of the current lunar phase.
func (m Moon) PhaseName() string { return PhaseName(m.phase, m.waxing) }

func (m Moon) Info() string {
	return fmt.Sprintf("%s (%.1f%%)", m.name, m.phase*100)
}

// Planet is a planet at one instant.
type Planet struct {
	object
}

// NewPlanet returns the planet name at eq.
func NewPlanet(name string, eq astro.Equatorial, angularSize, magnitude float64) (Planet, error) {
	o, err := newObject(name, eq, angularSize, magnitude)
	if err != nil {
		return Planet{}, err
	}
	return Planet{object: o}, nil
}

// Star is a catalogued star. Stars are point sources: their angular size is
// always zero.
type Star struct {
	object
	hipparcosID int
	colorIndex  float64
}

var colorIndexRange = astro.MustClosedInterval(-0.5, 5.5)

// NewStar returns a star with the given Hipparcos number and B−V colour
// index.
func NewStar(hipparcosID int, name string, eq astro.Equatorial, magnitude, colorIndex float64) (Star, error) {
	o, err := newObject(name, eq, 0, magnitude)
	if err != nil {
		return Star{}, err
	}
	if hipparcosID < 0 {
		return Star{}, fmt.Errorf("%s: hipparcos id %d: %w", name, hipparcosID, ErrOutOfRange)
	}
	if !colorIndexRange.Contains(colorIndex) {
		return Star{}, fmt.Errorf("%s: colour index %v: %w", name, colorIndex, ErrOutOfRange)
	}
	return Star{object: o, hipparcosID: hipparcosID, colorIndex: colorIndex}, nil
}

// HipparcosID returns the Hipparcos catalogue number.
func (s Star) HipparcosID() int { return s.hipparcosID }

// ColorIndex returns the B−V colour index.
func (s Star) ColorIndex() float64 { return s.colorIndex }

// ColorTemperature returns the approximate black-body temperature in kelvin
// derived from the colour index (Ballesteros' formula), truncated.
func (s Star) ColorTemperature() int {
	c := 0.92 * s.colorIndex
	return int(math.Trunc(4600 * (1/(c+1.7) + 1/(c+0.62))))
}
