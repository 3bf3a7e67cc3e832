package almanac

import (
	"github.com/litescript/ls-planisphere/internal/astro"
	"github.com/litescript/ls-planisphere/internal/body"
)

// SunSeparation returns the angular distance in degrees between the Sun and
// o.
func SunSeparation(sun body.Sun, o body.Object) float64 {
	return astro.RadToDeg(astro.AngularSeparation(sun.Equatorial(), o.Equatorial()))
}

// GlareTier categorizes how close to the Sun an object appears.
type GlareTier int

const (
	GlareNone    GlareTier = iota // >= 20 degrees
	GlareCaution                  // 10-20 degrees
	GlareWarning                  // < 10 degrees
)

// GlareFor returns the tier for a Sun separation in degrees.
func GlareFor(sepDeg float64) GlareTier {
	switch {
	case sepDeg < 10:
		return GlareWarning
	case sepDeg < 20:
		return GlareCaution
	default:
		return GlareNone
	}
}

func (g GlareTier) String() string {
	switch g {
	case GlareCaution:
		return "caution"
	case GlareWarning:
		return "warning"
	default:
		return "none"
	}
}
