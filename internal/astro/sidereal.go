package astro

import "time"

// Sidereal time polynomials (hours). s0 is evaluated in Julian centuries
// since J2000 at the start of the UTC day, s1 in hours elapsed since then.
var (
	siderealS0 = MustPolynomial(0.000025862, 2400.051336, 6.697374558)
	siderealS1 = MustPolynomial(1.002737909, 0)
)

// GreenwichSiderealTime returns the Greenwich sidereal time at t as an
// angle in [0, 2π).
func GreenwichSiderealTime(t time.Time) float64 {
	utc := t.UTC()
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	T := julianCenturiesSinceJ2000(day)
	hours := float64(millisBetween(day, utc)) / millisPerHour

	return Normalize(HrToRad(siderealS0.At(T) + siderealS1.At(hours)))
}

// LocalSiderealTime returns the sidereal time at t for an observer at
// where, as an angle in [0, 2π).
func LocalSiderealTime(t time.Time, where Geographic) float64 {
	return Normalize(GreenwichSiderealTime(t) + where.Lon())
}
