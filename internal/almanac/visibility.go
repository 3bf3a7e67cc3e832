// Package almanac computes rise, transit and set times and related
// visibility figures for bodies seen from a fixed observer.
package almanac

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-planisphere/internal/astro"
	"github.com/litescript/ls-planisphere/internal/body"
)

// Sample is an equatorial position at a specific time.
type Sample struct {
	Time     time.Time
	Position astro.Equatorial
}

// Window represents a rise-transit-set cycle for an object.
type Window struct {
	Rise          time.Time // Time object rises above horizon
	Transit       time.Time // Time object reaches its highest point
	Set           time.Time // Time object sets below horizon
	MaxAltitude   float64   // Peak altitude in degrees
	Valid         bool      // Whether a valid window was found
	AlwaysVisible bool      // Object never sets (circumpolar)
	NeverVisible  bool      // Object never rises
}

// MinAltitude is the altitude in degrees above which an object is up.
const MinAltitude = 0.0

// Errors for visibility calculations.
var (
	ErrInsufficientSamples = errors.New("insufficient samples for visibility calculation")
	ErrInvalidStep         = errors.New("sampling step must be positive")
)

// Track evaluates m every step over [from, from+span].
func Track(m body.Model, from time.Time, span, step time.Duration) ([]Sample, error) {
	if step <= 0 {
		return nil, ErrInvalidStep
	}
	n := int(span/step) + 1
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		t := from.Add(time.Duration(i) * step)
		obj, err := m.At(astro.J2010.DaysUntil(t), astro.NewEclipticToEquatorial(t))
		if err != nil {
			return nil, fmt.Errorf("%s at %s: %w", m.Name(), t.Format(time.RFC3339), err)
		}
		samples = append(samples, Sample{Time: t, Position: obj.Equatorial()})
	}
	return samples, nil
}

// Fixed samples a body with a constant position, such as a star.
func Fixed(eq astro.Equatorial, from time.Time, span, step time.Duration) ([]Sample, error) {
	if step <= 0 {
		return nil, ErrInvalidStep
	}
	n := int(span/step) + 1
	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{Time: from.Add(time.Duration(i) * step), Position: eq}
	}
	return samples, nil
}

// Altitude returns the altitude in degrees of eq seen from where at t.
func Altitude(where astro.Geographic, eq astro.Equatorial, t time.Time) float64 {
	return astro.NewEquatorialToHorizontal(t, where).Apply(eq).AltDeg()
}

// RiseSet computes rise, transit and set times from chronologically ordered
// samples. Horizon crossings are interpolated linearly between samples, so
// the step should be small compared to the time the object spends up.
func RiseSet(where astro.Geographic, samples []Sample) (Window, error) {
	if len(samples) < 3 {
		return Window{}, ErrInsufficientSamples
	}

	alts := make([]float64, len(samples))
	minAlt, maxAlt, maxIdx := 90.0, -90.0, 0
	for i, s := range samples {
		alts[i] = Altitude(where, s.Position, s.Time)
		if alts[i] < minAlt {
			minAlt = alts[i]
		}
		if alts[i] > maxAlt {
			maxAlt, maxIdx = alts[i], i
		}
	}

	if minAlt > MinAltitude {
		return Window{
			Transit:       samples[maxIdx].Time,
			MaxAltitude:   maxAlt,
			Valid:         true,
			AlwaysVisible: true,
		}, nil
	}
	if maxAlt < MinAltitude {
		return Window{Valid: true, NeverVisible: true}, nil
	}

	// First upward crossing.
	var rise time.Time
	riseIdx := 0
	for i := 1; i < len(samples); i++ {
		if alts[i-1] <= MinAltitude && alts[i] > MinAltitude {
			rise = interpolateCrossing(samples[i-1].Time, samples[i].Time, alts[i-1], alts[i], MinAltitude)
			riseIdx = i
			break
		}
	}

	// First downward crossing after the rise (or from the start when the
	// object is already up).
	var set time.Time
	for i := riseIdx + 1; i < len(samples); i++ {
		if alts[i-1] > MinAltitude && alts[i] <= MinAltitude {
			set = interpolateCrossing(samples[i-1].Time, samples[i].Time, alts[i-1], alts[i], MinAltitude)
			break
		}
	}

	transit, transitAlt := MaxAltitude(where, samples)

	return Window{
		Rise:        rise,
		Transit:     transit,
		Set:         set,
		MaxAltitude: transitAlt,
		Valid:       !rise.IsZero() || !set.IsZero() || alts[0] > MinAltitude,
	}, nil
}

// MaxAltitude finds the time of maximum altitude and the altitude in
// degrees, refined by parabolic interpolation around the highest sample.
func MaxAltitude(where astro.Geographic, samples []Sample) (time.Time, float64) {
	if len(samples) == 0 {
		return time.Time{}, 0
	}

	maxIdx, maxAlt := 0, math.Inf(-1)
	alts := make([]float64, len(samples))
	for i, s := range samples {
		alts[i] = Altitude(where, s.Position, s.Time)
		if alts[i] > maxAlt {
			maxIdx, maxAlt = i, alts[i]
		}
	}

	if maxIdx == 0 || maxIdx == len(samples)-1 {
		return samples[maxIdx].Time, maxAlt
	}

	// Parabola through t = -1, 0, +1.
	y0, y1, y2 := alts[maxIdx-1], alts[maxIdx], alts[maxIdx+1]
	c := y1
	a := (y0+y2)/2 - c
	b := (y2 - y0) / 2
	if a >= 0 {
		return samples[maxIdx].Time, maxAlt
	}

	tMax := math.Max(-1, math.Min(1, -b/(2*a)))
	dt := samples[maxIdx].Time.Sub(samples[maxIdx-1].Time)
	return samples[maxIdx].Time.Add(time.Duration(float64(dt) * tMax)), a*tMax*tMax + b*tMax + c
}

// interpolateCrossing finds the time when altitude crosses a threshold.
func interpolateCrossing(t1, t2 time.Time, alt1, alt2, threshold float64) time.Time {
	if math.Abs(alt2-alt1) < 0.0001 {
		return t1
	}
	fraction := math.Max(0, math.Min(1, (threshold-alt1)/(alt2-alt1)))
	return t1.Add(time.Duration(float64(t2.Sub(t1)) * fraction))
}

// AltitudeTier categorizes altitude for display.
type AltitudeTier int

const (
	AltitudeNone   AltitudeTier = iota // Below horizon
	AltitudeLow                        // 0-15 degrees
	AltitudeMedium                     // 15-45 degrees
	AltitudeHigh                       // 45+ degrees
)

// TierFor returns the tier for an altitude in degrees.
func TierFor(altDeg float64) AltitudeTier {
	switch {
	case altDeg <= 0:
		return AltitudeNone
	case altDeg < 15:
		return AltitudeLow
	case altDeg < 45:
		return AltitudeMedium
	default:
		return AltitudeHigh
	}
}

func (t AltitudeTier) String() string {
	switch t {
	case AltitudeLow:
		return "low"
	case AltitudeMedium:
		return "medium"
	case AltitudeHigh:
		return "high"
	default:
		return "below horizon"
	}
}
