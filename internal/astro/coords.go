package astro

import (
	"fmt"
	"math"
)

// Validity ranges in radians, and the same ranges in degrees for the
// degree constructors.
var (
	geoLonRange    = MustRightOpenInterval(-math.Pi, math.Pi)
	latRange       = MustClosedInterval(-math.Pi/2, math.Pi/2)
	geoLonRangeDeg = MustRightOpenInterval(-180, 180)
	fullTurnDeg    = MustRightOpenInterval(0, 360)
	latRangeDeg    = MustClosedInterval(-90, 90)
)

// lonLat is the representation shared by every spherical system: a
// longitude-like and a latitude-like angle in radians. The zero value is
// unset.
type lonLat struct {
	lon, lat float64
	ok       bool
}

func newLonLat(system string, lon, lat float64, lonRange RightOpenInterval) (lonLat, error) {
	if !lonRange.Contains(lon) {
		return lonLat{}, fmt.Errorf("%w: %s longitude %v rad not in %v", ErrOutOfRange, system, lon, lonRange)
	}
	if !latRange.Contains(lat) {
		return lonLat{}, fmt.Errorf("%w: %s latitude %v rad not in %v", ErrOutOfRange, system, lat, latRange)
	}
	return lonLat{lon: lon, lat: lat, ok: true}, nil
}

// newLonLatDeg validates in degrees so that boundary values such as 90°
// are accepted regardless of rounding in the conversion to radians.
func newLonLatDeg(system string, lonDeg, latDeg float64, lonRangeDeg, lonRange RightOpenInterval) (lonLat, error) {
	if !lonRangeDeg.Contains(lonDeg) {
		return lonLat{}, fmt.Errorf("%w: %s longitude %v° not in %v", ErrOutOfRange, system, lonDeg, lonRangeDeg)
	}
	if !latRangeDeg.Contains(latDeg) {
		return lonLat{}, fmt.Errorf("%w: %s latitude %v° not in %v", ErrOutOfRange, system, latDeg, latRangeDeg)
	}
	return lonLat{
		lon: lonRange.Reduce(DegToRad(lonDeg)),
		lat: latRange.Clip(DegToRad(latDeg)),
		ok:  true,
	}, nil
}

// distanceTo returns the great-circle distance in radians using the
// haversine form, which stays accurate for small separations.
func (c lonLat) distanceTo(o lonLat) float64 {
	dLon := o.lon - c.lon
	dLat := o.lat - c.lat
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(c.lat)*math.Cos(o.lat)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if a > 1 {
		a = 1
	}
	return 2 * math.Asin(math.Sqrt(a))
}

// Geographic is an observer position on Earth: longitude in [-180°, 180°)
// (east positive) and latitude in [-90°, 90°].
type Geographic struct{ c lonLat }

// NewGeographicDeg returns the geographic position (lonDeg, latDeg).
func NewGeographicDeg(lonDeg, latDeg float64) (Geographic, error) {
	c, err := newLonLatDeg("geographic", lonDeg, latDeg, geoLonRangeDeg, geoLonRange)
	if err != nil {
		return Geographic{}, err
	}
	return Geographic{c: c}, nil
}

// IsValidLonDeg reports whether lonDeg is an acceptable geographic longitude.
func IsValidLonDeg(lonDeg float64) bool { return geoLonRangeDeg.Contains(lonDeg) }

// IsValidLatDeg reports whether latDeg is an acceptable latitude.
func IsValidLatDeg(latDeg float64) bool { return latRangeDeg.Contains(latDeg) }

// Valid reports whether g was built by a constructor.
func (g Geographic) Valid() bool { return g.c.ok }

// Lon returns the longitude in radians.
func (g Geographic) Lon() float64 { return g.c.lon }

// LonDeg returns the longitude in degrees.
func (g Geographic) LonDeg() float64 { return RadToDeg(g.c.lon) }

// Lat returns the latitude in radians.
func (g Geographic) Lat() float64 { return g.c.lat }

// LatDeg returns the latitude in degrees.
func (g Geographic) LatDeg() float64 { return RadToDeg(g.c.lat) }

func (g Geographic) String() string {
	return fmt.Sprintf("(lon=%.4f°, lat=%.4f°)", g.LonDeg(), g.LatDeg())
}

// Equatorial holds right ascension in [0, 2π) and declination in
// [-π/2, π/2].
type Equatorial struct{ c lonLat }

// NewEquatorial returns the equatorial position (ra, dec) in radians.
func NewEquatorial(ra, dec float64) (Equatorial, error) {
	c, err := newLonLat("equatorial", ra, dec, fullTurn)
	if err != nil {
		return Equatorial{}, err
	}
	return Equatorial{c: c}, nil
}

// NewEquatorialDeg returns the equatorial position (raDeg, decDeg).
func NewEquatorialDeg(raDeg, decDeg float64) (Equatorial, error) {
	c, err := newLonLatDeg("equatorial", raDeg, decDeg, fullTurnDeg, fullTurn)
	if err != nil {
		return Equatorial{}, err
	}
	return Equatorial{c: c}, nil
}

// Valid reports whether e was built by a constructor.
func (e Equatorial) Valid() bool { return e.c.ok }

// RA returns the right ascension in radians.
func (e Equatorial) RA() float64 { return e.c.lon }

// RADeg returns the right ascension in degrees.
func (e Equatorial) RADeg() float64 { return RadToDeg(e.c.lon) }

// RAHr returns the right ascension in hours.
func (e Equatorial) RAHr() float64 { return RadToHr(e.c.lon) }

// Dec returns the declination in radians.
func (e Equatorial) Dec() float64 { return e.c.lat }

// DecDeg returns the declination in degrees.
func (e Equatorial) DecDeg() float64 { return RadToDeg(e.c.lat) }

func (e Equatorial) String() string {
	return fmt.Sprintf("(ra=%s, dec=%s)", FormatRA(e.c.lon), FormatDec(e.c.lat))
}

// AngularSeparation returns the great-circle distance between two
// equatorial positions in radians.
func AngularSeparation(a, b Equatorial) float64 {
	return a.c.distanceTo(b.c)
}

// Ecliptic holds ecliptic longitude in [0, 2π) and latitude in [-π/2, π/2].
type Ecliptic struct{ c lonLat }

// NewEcliptic returns the ecliptic position (lon, lat) in radians.
func NewEcliptic(lon, lat float64) (Ecliptic, error) {
	c, err := newLonLat("ecliptic", lon, lat, fullTurn)
	if err != nil {
		return Ecliptic{}, err
	}
	return Ecliptic{c: c}, nil
}

// Valid reports whether e was built by a constructor.
func (e Ecliptic) Valid() bool { return e.c.ok }

// Lon returns the ecliptic longitude in radians.
func (e Ecliptic) Lon() float64 { return e.c.lon }

// LonDeg returns the ecliptic longitude in degrees.
func (e Ecliptic) LonDeg() float64 { return RadToDeg(e.c.lon) }

// Lat returns the ecliptic latitude in radians.
func (e Ecliptic) Lat() float64 { return e.c.lat }

// LatDeg returns the ecliptic latitude in degrees.
func (e Ecliptic) LatDeg() float64 { return RadToDeg(e.c.lat) }

func (e Ecliptic) String() string {
	return fmt.Sprintf("(λ=%.4f°, β=%.4f°)", e.LonDeg(), e.LatDeg())
}

// Horizontal holds azimuth in [0°, 360°) (0 = north, 90 = east) and altitude
// in [-90°, 90°] (0 = horizon, 90 = zenith).
type Horizontal struct{ c lonLat }

// NewHorizontal returns the horizontal position (az, alt) in radians.
func NewHorizontal(az, alt float64) (Horizontal, error) {
	c, err := newLonLat("horizontal", az, alt, fullTurn)
	if err != nil {
		return Horizontal{}, err
	}
	return Horizontal{c: c}, nil
}

// NewHorizontalDeg returns the horizontal position (azDeg, altDeg).
func NewHorizontalDeg(azDeg, altDeg float64) (Horizontal, error) {
	c, err := newLonLatDeg("horizontal", azDeg, altDeg, fullTurnDeg, fullTurn)
	if err != nil {
		return Horizontal{}, err
	}
	return Horizontal{c: c}, nil
}

// Valid reports whether h was built by a constructor.
func (h Horizontal) Valid() bool { return h.c.ok }

// Az returns the azimuth in radians.
func (h Horizontal) Az() float64 { return h.c.lon }

// AzDeg returns the azimuth in degrees.
func (h Horizontal) AzDeg() float64 { return RadToDeg(h.c.lon) }

// Alt returns the altitude in radians.
func (h Horizontal) Alt() float64 { return h.c.lat }

// AltDeg returns the altitude in degrees.
func (h Horizontal) AltDeg() float64 { return RadToDeg(h.c.lat) }

// AzOctantName names the compass octant of the azimuth by combining the four
// cardinal labels, e.g. n+e for north-east.
func (h Horizontal) AzOctantName(n, e, s, w string) string {
	octant := int(Normalize(h.c.lon+Tau/16) / (Tau / 8))
	switch octant {
	case 0:
		return n
	case 1:
		return n + e
	case 2:
		return e
	case 3:
		return s + e
	case 4:
		return s
	case 5:
		return s + w
	case 6:
		return w
	default:
		return n + w
	}
}

// AngularDistanceTo returns the great-circle distance to o in radians.
func (h Horizontal) AngularDistanceTo(o Horizontal) float64 {
	return h.c.distanceTo(o.c)
}

func (h Horizontal) String() string {
	return fmt.Sprintf("(az=%.4f°, alt=%.4f°)", h.AzDeg(), h.AltDeg())
}
