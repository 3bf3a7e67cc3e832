package body

import (
	"math"

	"github.com/litescript/ls-planisphere/internal/astro"
)

// MoonModel positions the Moon, including the main perturbations caused by
// the Sun.
type MoonModel struct{}

// Lunar orbital elements at J2010.
var (
	moonMeanLonAtEpoch  = deg(91.929336)  // l0
	moonPerigeeAtEpoch  = deg(130.143076) // P0
	moonNodeAtEpoch     = deg(291.682547) // N0
	moonInclination     = deg(5.145396)
	moonEccentricity    = 0.0549
	moonAngularSizeMean = deg(0.5181)

	moonDailyMotion    = deg(13.1763966)
	moonPerigeeMotion  = deg(0.1114041)
	moonNodeMotion     = deg(0.0529539)
	moonEvection       = deg(1.2739)
	moonAnnualEquation = deg(0.1858)
	moonCorrection3    = deg(0.37)
	moonCentre         = deg(6.2886)
	moonCorrection4    = deg(0.214)
	moonVariation      = deg(0.6583)
	moonNodeCorrection = deg(0.16)
)

const moonMagnitude = 0

// Name returns "Moon".
func (MoonModel) Name() string { return moonName }

// At implements Model.
func (m MoonModel) At(days float64, conv astro.EclipticToEquatorial) (Object, error) {
	return m.Compute(days, conv)
}

// Compute is At with a concrete result type.
func (MoonModel) Compute(days float64, conv astro.EclipticToEquatorial) (Moon, error) {
	sun, err := SunModel{}.Compute(days, conv)
	if err != nil {
		return Moon{}, err
	}
	sunLon := sun.Ecliptic().Lon()
	sinSunM := math.Sin(sun.MeanAnomaly())

	// Mean orbital longitude and anomaly.
	l := moonDailyMotion*days + moonMeanLonAtEpoch
	meanAnomaly := l - moonPerigeeMotion*days - moonPerigeeAtEpoch
	node := moonNodeAtEpoch - moonNodeMotion*days

	// Corrections to the anomaly.
	evection := moonEvection * math.Sin(2*(l-sunLon)-meanAnomaly)
	annual := moonAnnualEquation * sinSunM
	a3 := moonCorrection3 * sinSunM
	correctedAnomaly := meanAnomaly + evection - annual - a3

	// True orbital longitude.
	centre := moonCentre * math.Sin(correctedAnomaly)
	a4 := moonCorrection4 * math.Sin(2*correctedAnomaly)
	lCorrected := l + evection + centre - annual + a4
	lTrue := lCorrected + moonVariation*math.Sin(2*(lCorrected-sunLon))

	// Ecliptic position.
	correctedNode := node - moonNodeCorrection*sinSunM
	sinU, cosU := math.Sincos(lTrue - correctedNode)
	lon := math.Atan2(sinU*math.Cos(moonInclination), cosU) + correctedNode
	lat := math.Asin(sinU * math.Sin(moonInclination))

	ecl, err := eclipticAt(moonName, lon, lat)
	if err != nil {
		return Moon{}, err
	}

	phase := (1 - math.Cos(lTrue-sunLon)) / 2

	e := moonEccentricity
	rho := (1 - e*e) / (1 + e*math.Cos(correctedAnomaly+centre))
	size := moonAngularSizeMean / rho

	moon, err := NewMoon(conv.Apply(ecl), size, moonMagnitude, phase)
	if err != nil {
		return Moon{}, err
	}
	moon.waxing = astro.Normalize(lTrue-sunLon) < math.Pi
	return moon, nil
}

// PhaseName returns the conventional name of the lunar phase. waxing tells
// whether the illuminated fraction is growing.
func PhaseName(phase float64, waxing bool) string {
	switch {
	case phase < 0.03:
		return "New Moon"
	case phase > 0.97:
		return "Full Moon"
	case phase >= 0.47 && phase <= 0.53:
		if waxing {
			return "First Quarter"
		}
		return "Last Quarter"
	case phase < 0.5:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}
