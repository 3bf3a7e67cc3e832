// Package projection maps horizontal coordinates onto a plane with a
// stereographic projection centred on a viewing direction.
package projection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/litescript/ls-planisphere/internal/astro"
)

// degenerate is the denominator magnitude below which a point is treated as
// the antipode of the centre.
const degenerate = 1e-12

// Stereographic is a stereographic projection centred on a horizontal
// direction. The centre maps to the plane origin; north (increasing
// altitude) is +y and increasing azimuth is +x.
type Stereographic struct {
	center           astro.Horizontal
	sinLat0, cosLat0 float64
	lon0             float64
}

// NewStereographic returns the projection centred on center.
func NewStereographic(center astro.Horizontal) Stereographic {
	sinLat0, cosLat0 := math.Sincos(center.Alt())
	return Stereographic{
		center:  center,
		sinLat0: sinLat0,
		cosLat0: cosLat0,
		lon0:    center.Az(),
	}
}

// Center returns the projection centre.
func (s Stereographic) Center() astro.Horizontal { return s.center }

// Apply projects h onto the plane. The antipode of the centre has no finite
// image and maps to (+Inf, +Inf).
func (s Stereographic) Apply(h astro.Horizontal) r2.Vec {
	sinLat, cosLat := math.Sincos(h.Alt())
	sinDLon, cosDLon := math.Sincos(h.Az() - s.lon0)

	den := 1 + sinLat*s.sinLat0 + cosLat*s.cosLat0*cosDLon
	if den <= degenerate {
		return r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	}
	d := 1 / den
	return r2.Vec{
		X: d * cosLat * sinDLon,
		Y: d * (sinLat*s.cosLat0 - cosLat*s.sinLat0*cosDLon),
	}
}

// IsAntipode reports whether p is the image of the centre's antipode.
func IsAntipode(p r2.Vec) bool {
	return math.IsInf(p.X, 1) && math.IsInf(p.Y, 1)
}

// InverseApply returns the horizontal coordinates whose image is p. The
// origin maps back to the centre exactly.
func (s Stereographic) InverseApply(p r2.Vec) astro.Horizontal {
	rho := r2.Norm(p)
	if rho == 0 {
		return s.center
	}
	if math.IsInf(rho, 0) {
		return s.antipode()
	}

	rho2 := rho * rho
	sinC := 2 * rho / (rho2 + 1)
	cosC := (1 - rho2) / (rho2 + 1)

	az := math.Atan2(p.X*sinC, rho*s.cosLat0*cosC-p.Y*s.sinLat0*sinC) + s.lon0
	alt := math.Asin(clamp1(cosC*s.sinLat0 + p.Y*sinC*s.cosLat0/rho))

	return mustHorizontal(astro.Normalize(az), alt)
}

func (s Stereographic) antipode() astro.Horizontal {
	return mustHorizontal(astro.Normalize(s.lon0+math.Pi), -s.center.Alt())
}

// CircleCenterForParallel returns the centre of the circle onto which the
// parallel (line of constant altitude) through h is projected.
func (s Stereographic) CircleCenterForParallel(h astro.Horizontal) r2.Vec {
	return r2.Vec{Y: s.cosLat0 / (math.Sin(h.Alt()) + s.sinLat0)}
}

// CircleRadiusForParallel returns the radius of the circle onto which the
// parallel through h is projected. The result is infinite when the parallel
// passes through the antipode, in which case it projects to a line.
func (s Stereographic) CircleRadiusForParallel(h astro.Horizontal) float64 {
	return math.Cos(h.Alt()) / (math.Sin(h.Alt()) + s.sinLat0)
}

// ApplyToAngle returns the plane diameter of a disc of angular diameter rad
// centred on the projection centre.
func (s Stereographic) ApplyToAngle(rad float64) float64 {
	return 2 * math.Tan(rad/4)
}

func (s Stereographic) String() string {
	return fmt.Sprintf("Stereographic(center=(%.4f°, %.4f°))", s.center.AzDeg(), s.center.AltDeg())
}

func clamp1(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

func mustHorizontal(az, alt float64) astro.Horizontal {
	h, err := astro.NewHorizontal(az, alt)
	if err != nil {
		panic(fmt.Sprintf("projection: inverse produced invalid coordinates: %v", err))
	}
	return h
}
