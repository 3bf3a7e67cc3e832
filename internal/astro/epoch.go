package astro

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	millisPerDay   = 24 * 60 * 60 * 1000
	millisPerHour  = 60 * 60 * 1000
	daysPerCentury = 36525
	jdJ2000        = 2451545.0
)

// Epoch is a reference instant from which elapsed time is measured.
type Epoch struct {
	name string
	at   time.Time
}

// Standard epochs.
var (
	// J2000 is 2000-01-01T12:00Z.
	J2000 = Epoch{name: "J2000", at: time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)}
	// J2010 is day 0.0 of 2010, i.e. 2009-12-31T00:00Z.
	J2010 = Epoch{name: "J2010", at: time.Date(2009, time.December, 31, 0, 0, 0, 0, time.UTC)}
)

// Name returns the conventional name of the epoch.
func (e Epoch) Name() string { return e.name }

// Time returns the epoch instant in UTC.
func (e Epoch) Time() time.Time { return e.at }

// DaysUntil returns the number of days from the epoch to t, negative when t
// precedes the epoch. Resolution is one millisecond.
func (e Epoch) DaysUntil(t time.Time) float64 {
	return float64(millisBetween(e.at, t)) / millisPerDay
}

// JulianCenturiesUntil returns the number of Julian centuries from the epoch
// to t.
func (e Epoch) JulianCenturiesUntil(t time.Time) float64 {
	return e.DaysUntil(t) / daysPerCentury
}

// millisBetween avoids time.Duration, which overflows beyond ±292 years.
func millisBetween(from, to time.Time) int64 {
	return to.UnixMilli() - from.UnixMilli()
}

// JulianDate returns the Julian date of t.
func JulianDate(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// julianCenturiesSinceJ2000 uses the Julian date for calendar-aligned
// instants such as the start of a UTC day.
func julianCenturiesSinceJ2000(t time.Time) float64 {
	return (JulianDate(t) - jdJ2000) / daysPerCentury
}
