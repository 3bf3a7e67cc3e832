package body

import (
	"math"

	"github.com/litescript/ls-planisphere/internal/astro"
)

// SunModel positions the Sun on its apparent geocentric orbit.
type SunModel struct{}

// Orbital elements of the apparent solar orbit at J2010.
var (
	sunLonAtEpoch      = deg(279.557208) // εg
	sunLonAtPerigee    = deg(283.112438) // ϖg
	sunEccentricity    = 0.016705
	sunAngularSizeMean = deg(0.533128) // θ0
)

// Name returns "Sun".
func (SunModel) Name() string { return sunName }

// At implements Model.
func (m SunModel) At(days float64, conv astro.EclipticToEquatorial) (Object, error) {
	return m.Compute(days, conv)
}

// Compute is At with a concrete result type.
func (SunModel) Compute(days float64, conv astro.EclipticToEquatorial) (Sun, error) {
	meanAnomaly := meanMotion*days + sunLonAtEpoch - sunLonAtPerigee
	trueAnomaly := meanAnomaly + 2*sunEccentricity*math.Sin(meanAnomaly)

	ecl, err := eclipticAt(sunName, trueAnomaly+sunLonAtPerigee, 0)
	if err != nil {
		return Sun{}, err
	}

	e := sunEccentricity
	size := sunAngularSizeMean * (1 + e*math.Cos(trueAnomaly)) / (1 - e*e)

	return NewSun(ecl, conv.Apply(ecl), size, meanAnomaly)
}
