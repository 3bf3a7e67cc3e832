package body

import (
	"fmt"

	"github.com/litescript/ls-planisphere/internal/astro"
)

// Model positions a solar-system body. Implementations are pure: the same
// inputs always produce the same object.
type Model interface {
	Name() string
	// At returns the body daysSinceJ2010 days after astro.J2010, converting
	// ecliptic positions with conv.
	At(daysSinceJ2010 float64, conv astro.EclipticToEquatorial) (Object, error)
}

// Constants shared by the orbital models.
const (
	daysPerTropicalYear = 365.242191
	meanMotion          = astro.Tau / daysPerTropicalYear // radians per day
)

// eclipticAt builds an ecliptic position from a model's longitude and
// latitude. A failure here is a bug in the model.
func eclipticAt(name string, lon, lat float64) (astro.Ecliptic, error) {
	ecl, err := astro.NewEcliptic(astro.Normalize(lon), lat)
	if err != nil {
		return astro.Ecliptic{}, fmt.Errorf("%s: %w: %v", name, ErrInvariantViolation, err)
	}
	return ecl, nil
}

var deg = astro.DegToRad
