package gf

import (
	"fmt"
	"strings"
)

// Poly is a single-term polynomial (monomial) over a Field, as produced by
// BuildMonomial. Coefficients are stored from the highest-degree term down,
// so coefficients[0] is the leading coefficient and the constant term sits
// at the end. A Poly is immutable once built; arithmetic on polynomials is
// the business of the Reed-Solomon layer consuming this package, not of the
// field engine itself.
type Poly struct {
	field        *Field
	coefficients []int
}

// newPoly wraps coefficients without copying; callers hand over ownership.
func newPoly(field *Field, coefficients []int) *Poly {
	return &Poly{field: field, coefficients: coefficients}
}

// Field returns the field the coefficients belong to.
func (p *Poly) Field() *Field {
	return p.field
}

// Degree returns the degree of the polynomial. The zero polynomial has
// degree 0 under this representation.
func (p *Poly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.coefficients[0] == 0
}

// Coefficient returns the coefficient of the x^degree term, or 0 when the
// degree is outside the polynomial.
func (p *Poly) Coefficient(degree int) int {
	if degree < 0 || degree > p.Degree() {
		return 0
	}
	return p.coefficients[len(p.coefficients)-1-degree]
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p *Poly) Coefficients() []int {
	coefficients := make([]int, len(p.coefficients))
	copy(coefficients, p.coefficients)
	return coefficients
}

// String renders the polynomial in conventional notation, e.g. "5x^3".
// The zero polynomial renders as "0".
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for degree := p.Degree(); degree >= 0; degree-- {
		coefficient := p.Coefficient(degree)
		if coefficient == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		if coefficient != 1 || degree == 0 {
			fmt.Fprintf(&b, "%d", coefficient)
		}
		switch {
		case degree == 1:
			b.WriteString("x")
		case degree > 1:
			fmt.Fprintf(&b, "x^%d", degree)
		}
	}
	return b.String()
}
