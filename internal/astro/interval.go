package astro

import (
	"errors"
	"fmt"
	"math"
)

// Errors for interval and coordinate construction.
var (
	ErrInvalidInterval = errors.New("interval bounds must satisfy low < high")
	ErrOutOfRange      = errors.New("value out of range")
)

// ClosedInterval is the immutable interval [low, high].
type ClosedInterval struct {
	low, high float64
}

// NewClosedInterval returns [low, high]. It fails unless low < high.
func NewClosedInterval(low, high float64) (ClosedInterval, error) {
	if !(low < high) {
		return ClosedInterval{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, low, high)
	}
	return ClosedInterval{low: low, high: high}, nil
}

// MustClosedInterval is NewClosedInterval for constant bounds.
func MustClosedInterval(low, high float64) ClosedInterval {
	iv, err := NewClosedInterval(low, high)
	if err != nil {
		panic(err)
	}
	return iv
}

// ClosedSymmetric returns [-size/2, size/2].
func ClosedSymmetric(size float64) (ClosedInterval, error) {
	return NewClosedInterval(-size/2, size/2)
}

// Low returns the lower bound.
func (i ClosedInterval) Low() float64 { return i.low }

// High returns the upper bound.
func (i ClosedInterval) High() float64 { return i.high }

// Size returns high - low.
func (i ClosedInterval) Size() float64 { return i.high - i.low }

// Contains reports whether low <= v <= high.
func (i ClosedInterval) Contains(v float64) bool {
	return i.low <= v && v <= i.high
}

// Clip returns v if it lies in the interval, otherwise the nearest bound.
// NaN is not a number on the line and panics.
func (i ClosedInterval) Clip(v float64) float64 {
	switch {
	case math.IsNaN(v):
		panic("astro: Clip of NaN")
	case v < i.low:
		return i.low
	case v > i.high:
		return i.high
	default:
		return v
	}
}

func (i ClosedInterval) String() string {
	return fmt.Sprintf("[%g,%g]", i.low, i.high)
}

// RightOpenInterval is the immutable interval [low, high).
type RightOpenInterval struct {
	low, high float64
}

// NewRightOpenInterval returns [low, high). It fails unless low < high.
func NewRightOpenInterval(low, high float64) (RightOpenInterval, error) {
	if !(low < high) {
		return RightOpenInterval{}, fmt.Errorf("%w: [%v, %v)", ErrInvalidInterval, low, high)
	}
	return RightOpenInterval{low: low, high: high}, nil
}

// MustRightOpenInterval is NewRightOpenInterval for constant bounds.
func MustRightOpenInterval(low, high float64) RightOpenInterval {
	iv, err := NewRightOpenInterval(low, high)
	if err != nil {
		panic(err)
	}
	return iv
}

// RightOpenSymmetric returns [-size/2, size/2).
func RightOpenSymmetric(size float64) (RightOpenInterval, error) {
	return NewRightOpenInterval(-size/2, size/2)
}

// Low returns the lower bound.
func (i RightOpenInterval) Low() float64 { return i.low }

// High returns the (excluded) upper bound.
func (i RightOpenInterval) High() float64 { return i.high }

// Size returns high - low.
func (i RightOpenInterval) Size() float64 { return i.high - i.low }

// Contains reports whether low <= v < high.
func (i RightOpenInterval) Contains(v float64) bool {
	return i.low <= v && v < i.high
}

// Reduce maps v into [low, high) by floored modulo on the interval size:
// low + floorMod(v-low, size).
func (i RightOpenInterval) Reduce(v float64) float64 {
	size := i.Size()
	x := v - i.low
	r := x - size*math.Floor(x/size)
	// Rounding can land exactly on size for tiny negative x.
	if r >= size {
		r = 0
	}
	return i.low + r
}

func (i RightOpenInterval) String() string {
	return fmt.Sprintf("[%g,%g[", i.low, i.high)
}
