package body

import (
	"math"

	"github.com/litescript/ls-planisphere/internal/astro"
)

// PlanetModel holds the orbital elements of a planet at J2010 and positions
// it on a Keplerian orbit with a first-order equation of the centre.
type PlanetModel struct {
	name string

	period          float64 // tropical years
	lonAtEpoch      float64 // ε, radians
	lonAtPerihelion float64 // ϖ, radians
	eccentricity    float64
	semiMajorAxis   float64 // AU
	inclination     float64 // radians
	lonAscNode      float64 // Ω, radians
	angularSize1AU  float64 // θ0 at 1 AU, radians
	magnitude1AU    float64 // V0
}

func planet(name string, period, lonAtEpoch, lonAtPerihelion, e, a, incl, node, size, mag float64) PlanetModel {
	return PlanetModel{
		name:            name,
		period:          period,
		lonAtEpoch:      deg(lonAtEpoch),
		lonAtPerihelion: deg(lonAtPerihelion),
		eccentricity:    e,
		semiMajorAxis:   a,
		inclination:     deg(incl),
		lonAscNode:      deg(node),
		angularSize1AU:  astro.ArcsecToRad(size),
		magnitude1AU:    mag,
	}
}

// The planets, in order from the Sun. Earth is included as the observing
// reference; see VisiblePlanets.
var (
	Mercury = planet("Mercury", 0.24085, 75.5671, 77.612, 0.205627, 0.387098, 7.0051, 48.449, 6.74, -0.42)
	Venus   = planet("Venus", 0.615207, 272.30044, 131.54, 0.006812, 0.723329, 3.3947, 76.769, 16.92, -4.40)
	Earth   = planet("Earth", 0.999996, 99.556772, 103.2055, 0.016671, 0.999985, 0, 0, 0, 0)
	Mars    = planet("Mars", 1.880765, 109.09646, 336.217, 0.093348, 1.523689, 1.8497, 49.632, 9.36, -1.52)
	Jupiter = planet("Jupiter", 11.857911, 337.917132, 14.6633, 0.048907, 5.20278, 1.3035, 100.595, 196.74, -9.40)
	Saturn  = planet("Saturn", 29.310579, 172.398316, 89.567, 0.053853, 9.51134, 2.4873, 113.752, 165.60, -8.88)
	Uranus  = planet("Uranus", 84.039492, 356.135400, 172.884833, 0.046321, 19.21814, 0.773059, 73.926961, 65.80, -7.19)
	Neptune = planet("Neptune", 165.84539, 326.895127, 23.07, 0.010483, 30.1985, 1.7673, 131.879, 62.20, -6.87)
)

// Planets lists every planet model, Earth included.
var Planets = []PlanetModel{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

// VisiblePlanets returns the planets that can be seen from Earth.
func VisiblePlanets() []PlanetModel {
	out := make([]PlanetModel, 0, len(Planets)-1)
	for _, p := range Planets {
		if p.name != Earth.name {
			out = append(out, p)
		}
	}
	return out
}

// Name returns the planet's name.
func (p PlanetModel) Name() string { return p.name }

// Inner reports whether the planet orbits inside Earth's orbit.
func (p PlanetModel) Inner() bool { return p.semiMajorAxis < 1 }

// heliocentric is a planet's position relative to the Sun.
type heliocentric struct {
	radius    float64 // r, AU
	lon       float64 // l, orbital longitude
	lat       float64 // ψ
	radiusEcl float64 // r′, projected on the ecliptic
	lonEcl    float64 // l′, projected on the ecliptic
}

func (p PlanetModel) heliocentric(days float64) heliocentric {
	meanAnomaly := meanMotion*days/p.period + p.lonAtEpoch - p.lonAtPerihelion
	trueAnomaly := meanAnomaly + 2*p.eccentricity*math.Sin(meanAnomaly)

	e := p.eccentricity
	r := p.semiMajorAxis * (1 - e*e) / (1 + e*math.Cos(trueAnomaly))
	l := trueAnomaly + p.lonAtPerihelion

	sinLN, cosLN := math.Sincos(l - p.lonAscNode)
	psi := math.Asin(sinLN * math.Sin(p.inclination))

	return heliocentric{
		radius:    r,
		lon:       l,
		lat:       psi,
		radiusEcl: r * math.Cos(psi),
		lonEcl:    math.Atan2(sinLN*math.Cos(p.inclination), cosLN) + p.lonAscNode,
	}
}

// At implements Model.
func (p PlanetModel) At(days float64, conv astro.EclipticToEquatorial) (Object, error) {
	return p.Compute(days, conv)
}

// Compute is At with a concrete result type.
func (p PlanetModel) Compute(days float64, conv astro.EclipticToEquatorial) (Planet, error) {
	pl := p.heliocentric(days)
	earth := Earth.heliocentric(days)
	R, L := earth.radius, earth.lon

	var lon float64
	if p.Inner() {
		lon = math.Pi + L + math.Atan2(pl.radiusEcl*math.Sin(L-pl.lonEcl), R-pl.radiusEcl*math.Cos(L-pl.lonEcl))
	} else {
		lon = pl.lonEcl + math.Atan2(R*math.Sin(pl.lonEcl-L), pl.radiusEcl-R*math.Cos(pl.lonEcl-L))
	}
	lon = astro.Normalize(lon)
	lat := math.Atan(pl.radiusEcl * math.Tan(pl.lat) * math.Sin(lon-pl.lonEcl) / (R * math.Sin(pl.lonEcl-L)))

	ecl, err := eclipticAt(p.name, lon, lat)
	if err != nil {
		return Planet{}, err
	}

	distance := math.Sqrt(R*R + pl.radius*pl.radius - 2*R*pl.radius*math.Cos(pl.lon-L)*math.Cos(pl.lat))
	size := p.angularSize1AU / distance

	phase := (1 + math.Cos(lon-pl.lon)) / 2
	magnitude := p.magnitude1AU + 5*math.Log10(pl.radius*distance/math.Sqrt(phase))

	return NewPlanet(p.name, conv.Apply(ecl), size, magnitude)
}
