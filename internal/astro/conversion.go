package astro

import (
	"fmt"
	"math"
	"time"
)

// Conversion maps coordinates of one system to another. Implementations are
// pure and configured once at construction.
type Conversion[From, To any] interface {
	Apply(From) To
}

// degenerate is the magnitude below which a denominator is treated as zero.
const degenerate = 1e-12

// Obliquity polynomial in arcseconds over Julian centuries since J2000.
var (
	obliquityCorrection = MustPolynomial(0.00181, -0.0006, -46.815, 0)
	obliquityAtJ2000    = MustDMSToRad(23, 26, 21.45)
)

// EclipticToEquatorial converts ecliptic coordinates to equatorial ones
// using the mean obliquity of the ecliptic at a given instant.
type EclipticToEquatorial struct {
	epsilon        float64
	cosEps, sinEps float64
}

var _ Conversion[Ecliptic, Equatorial] = EclipticToEquatorial{}

// NewEclipticToEquatorial returns the conversion valid at t.
func NewEclipticToEquatorial(t time.Time) EclipticToEquatorial {
	T := J2000.JulianCenturiesUntil(t)
	eps := obliquityAtJ2000 + ArcsecToRad(obliquityCorrection.At(T))
	return EclipticToEquatorial{
		epsilon: eps,
		cosEps:  math.Cos(eps),
		sinEps:  math.Sin(eps),
	}
}

// Obliquity returns the axial tilt used by the conversion, in radians.
func (c EclipticToEquatorial) Obliquity() float64 { return c.epsilon }

// Apply converts ecl to equatorial coordinates.
func (c EclipticToEquatorial) Apply(ecl Ecliptic) Equatorial {
	lambda, beta := ecl.Lon(), ecl.Lat()
	sinLambda := math.Sin(lambda)

	ra := math.Atan2(sinLambda*c.cosEps-math.Tan(beta)*c.sinEps, math.Cos(lambda))
	dec := asinClamped(math.Sin(beta)*c.cosEps + math.Cos(beta)*c.sinEps*sinLambda)

	return mustEquatorial(Normalize(ra), dec)
}

func (c EclipticToEquatorial) String() string {
	return fmt.Sprintf("EclipticToEquatorial(ε=%.6f°)", RadToDeg(c.epsilon))
}

// EquatorialToHorizontal converts equatorial coordinates to horizontal ones
// for an observer at a given place and instant.
//
// At a geographic pole or for a target at the zenith or nadir the usual
// azimuth formula divides by zero. There the azimuth falls back to the
// division-free form atan2(-cosδ·sinH, sinδ·cosφ - cosδ·sinφ·cosH), which
// yields H+π at the north pole and -H at the south pole. If that form is
// degenerate as well the azimuth is 0 (north).
type EquatorialToHorizontal struct {
	lst            float64
	sinLat, cosLat float64
}

var _ Conversion[Equatorial, Horizontal] = EquatorialToHorizontal{}

// NewEquatorialToHorizontal returns the conversion for an observer at where
// at instant t.
func NewEquatorialToHorizontal(t time.Time, where Geographic) EquatorialToHorizontal {
	return EquatorialToHorizontal{
		lst:    LocalSiderealTime(t, where),
		sinLat: math.Sin(where.Lat()),
		cosLat: math.Cos(where.Lat()),
	}
}

// LocalSiderealTime returns the sidereal time the conversion uses.
func (c EquatorialToHorizontal) LocalSiderealTime() float64 { return c.lst }

// Apply converts eq to horizontal coordinates.
func (c EquatorialToHorizontal) Apply(eq Equatorial) Horizontal {
	H := Normalize(c.lst - eq.RA())
	sinH, cosH := math.Sincos(H)
	sinDec, cosDec := math.Sincos(eq.Dec())

	sinAlt := sinDec*c.sinLat + cosDec*c.cosLat*cosH
	alt := asinClamped(sinAlt)

	var az float64
	if den := c.cosLat * math.Cos(alt); math.Abs(den) > degenerate {
		az = math.Acos(clamp1((sinDec - c.sinLat*sinAlt) / den))
		if sinH >= 0 {
			az = Tau - az
		}
	} else {
		y := -cosDec * sinH
		x := sinDec*c.cosLat - cosDec*c.sinLat*cosH
		if math.Abs(x) > degenerate || math.Abs(y) > degenerate {
			az = math.Atan2(y, x)
		}
	}

	return mustHorizontal(Normalize(az), alt)
}

func (c EquatorialToHorizontal) String() string {
	return fmt.Sprintf("EquatorialToHorizontal(lst=%.6fh, lat=%.6f°)",
		RadToHr(c.lst), RadToDeg(math.Atan2(c.sinLat, c.cosLat)))
}

func clamp1(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

// asinClamped keeps rounding noise just beyond ±1 from producing NaN.
func asinClamped(x float64) float64 {
	return math.Asin(clamp1(x))
}

// mustEquatorial builds an equatorial position produced by a conversion.
// Conversions only emit normalised angles, so a failure is a bug.
func mustEquatorial(ra, dec float64) Equatorial {
	eq, err := NewEquatorial(ra, dec)
	if err != nil {
		panic(fmt.Sprintf("astro: conversion produced invalid coordinates: %v", err))
	}
	return eq
}

func mustHorizontal(az, alt float64) Horizontal {
	h, err := NewHorizontal(az, alt)
	if err != nil {
		panic(fmt.Sprintf("astro: conversion produced invalid coordinates: %v", err))
	}
	return h
}
