package astro

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidPolynomial is returned for a polynomial whose leading
// coefficient is zero.
var ErrInvalidPolynomial = errors.New("polynomial leading coefficient must be non-zero")

// Polynomial holds coefficients from the highest degree down to the constant
// term.
type Polynomial struct {
	coeffs []float64
}

// NewPolynomial returns c[0]·xⁿ + c[1]·xⁿ⁻¹ + … + c[n].
func NewPolynomial(coeffs ...float64) (Polynomial, error) {
	if len(coeffs) == 0 || coeffs[0] == 0 {
		return Polynomial{}, ErrInvalidPolynomial
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Polynomial{coeffs: c}, nil
}

// MustPolynomial is NewPolynomial for constant coefficients.
func MustPolynomial(coeffs ...float64) Polynomial {
	p, err := NewPolynomial(coeffs...)
	if err != nil {
		panic(err)
	}
	return p
}

// Degree returns n.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// At evaluates the polynomial at x with Horner's scheme.
func (p Polynomial) At(x float64) float64 {
	var acc float64
	for _, c := range p.coeffs {
		acc = acc*x + c
	}
	return acc
}

func (p Polynomial) String() string {
	var b strings.Builder
	n := p.Degree()
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		deg := n - i
		switch {
		case c < 0:
			b.WriteString("-")
		case b.Len() > 0:
			b.WriteString("+")
		}
		abs := math.Abs(c)
		if abs != 1 || deg == 0 {
			fmt.Fprintf(&b, "%g", abs)
		}
		switch {
		case deg == 1:
			b.WriteString("x")
		case deg > 1:
			fmt.Fprintf(&b, "x^%d", deg)
		}
	}
	return b.String()
}
