// Package astro provides angle arithmetic, spherical coordinate systems,
// sidereal time and the conversions between them.
package astro

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

const (
	degPerRad    = 360 / Tau
	hrPerRad     = 24 / Tau
	arcsecPerRad = 3600 * degPerRad
)

// fullTurn is [0, 2π).
var fullTurn = MustRightOpenInterval(0, Tau)

// Normalize reduces an angle in radians into [0, 2π).
// Multiples of 2π, including negative ones, map to exactly 0.
func Normalize(rad float64) float64 {
	return fullTurn.Reduce(rad)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg / degPerRad
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * degPerRad
}

// HrToRad converts hours (1h = 15°) to radians.
func HrToRad(hr float64) float64 {
	return hr / hrPerRad
}

// RadToHr converts radians to hours.
func RadToHr(rad float64) float64 {
	return rad * hrPerRad
}

// ArcsecToRad converts arcseconds to radians.
func ArcsecToRad(arcsec float64) float64 {
	return arcsec / arcsecPerRad
}

// RadToArcsec converts radians to arcseconds.
func RadToArcsec(rad float64) float64 {
	return rad * arcsecPerRad
}

// DMSToRad converts a non-negative angle given as degrees, minutes and
// seconds of arc to radians. Minutes and seconds must lie in [0, 60).
func DMSToRad(deg, min int, sec float64) (float64, error) {
	if deg < 0 {
		return 0, fmt.Errorf("%w: degrees %d < 0", ErrOutOfRange, deg)
	}
	if min < 0 || min >= 60 {
		return 0, fmt.Errorf("%w: minutes %d not in [0,60)", ErrOutOfRange, min)
	}
	if !(sec >= 0 && sec < 60) {
		return 0, fmt.Errorf("%w: seconds %v not in [0,60)", ErrOutOfRange, sec)
	}
	return DegToRad(unit.FromSexa(' ', deg, min, sec)), nil
}

// MustDMSToRad is DMSToRad for constants; it panics on invalid input.
func MustDMSToRad(deg, min int, sec float64) float64 {
	rad, err := DMSToRad(deg, min, sec)
	if err != nil {
		panic(err)
	}
	return rad
}
