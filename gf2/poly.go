// SPDX-License-Identifier: MIT
// Package: codenum/gf2
//
// poly.go — polynomials over GF(2).
//
// Coefficient i is bit i of the underlying bitset. A zero polynomial has
// Degree -1. Add mutates the receiver (XOR); Mul allocates.

package gf2

import (
	"strconv"
	"strings"

	"github.com/willf/bitset"
)

// Poly is a polynomial over GF(2) in the delay operator D.
type Poly struct {
	b *bitset.BitSet
}

// NewPoly returns the zero polynomial.
func NewPoly() *Poly {
	return &Poly{b: bitset.New(0)}
}

// PolyFromCoeffs returns the polynomial with exactly the listed coefficient
// positions set. Repeated positions cancel (GF(2) addition). Negative
// positions panic.
func PolyFromCoeffs(positions ...int) *Poly {
	p := NewPoly()
	for _, i := range positions {
		if i < 0 {
			panic("gf2: negative coefficient position")
		}
		p.b.Flip(uint(i))
	}

	return p
}

// ParsePoly parses a coefficient string, lowest degree first: "1101" is
// 1 + D + D³. An empty string is the zero polynomial.
func ParsePoly(s string) (*Poly, error) {
	p := NewPoly()
	for i, r := range s {
		switch r {
		case '0':
		case '1':
			p.b.Set(uint(i))
		default:
			return nil, ErrBadShape
		}
	}

	return p, nil
}

// Degree returns the index of the highest set coefficient, or -1 for zero.
func (p *Poly) Degree() int {
	deg := -1
	for i, ok := p.b.NextSet(0); ok; i, ok = p.b.NextSet(i + 1) {
		deg = int(i)
	}

	return deg
}

// Coeff reports coefficient i. Out-of-range indices read as zero.
func (p *Poly) Coeff(i int) bool {
	if i < 0 {
		return false
	}

	return p.b.Test(uint(i))
}

// SetCoeff assigns coefficient i.
func (p *Poly) SetCoeff(i int, v bool) {
	if i < 0 {
		panic("gf2: negative coefficient position")
	}
	if v {
		p.b.Set(uint(i))
	} else {
		p.b.Clear(uint(i))
	}
}

// IsZero reports whether every coefficient is zero.
func (p *Poly) IsZero() bool { return p.b.None() }

// Weight returns the number of non-zero coefficients.
func (p *Poly) Weight() int { return int(p.b.Count()) }

// Add sets p = p + q (XOR) and returns p.
func (p *Poly) Add(q *Poly) *Poly {
	for i, ok := q.b.NextSet(0); ok; i, ok = q.b.NextSet(i + 1) {
		p.b.Flip(i)
	}

	return p
}

// Mul returns the product p·q as a new polynomial.
// Complexity: O(Weight(p)·Weight(q)).
func (p *Poly) Mul(q *Poly) *Poly {
	r := NewPoly()
	for i, ok := p.b.NextSet(0); ok; i, ok = p.b.NextSet(i + 1) {
		for j, ok2 := q.b.NextSet(0); ok2; j, ok2 = q.b.NextSet(j + 1) {
			r.b.Flip(i + j)
		}
	}

	return r
}

// Clone returns an independent copy of p.
func (p *Poly) Clone() *Poly {
	return &Poly{b: p.b.Clone()}
}

// Equal reports whether p and q have identical coefficients.
func (p *Poly) Equal(q *Poly) bool {
	i, ok1 := p.b.NextSet(0)
	j, ok2 := q.b.NextSet(0)
	for ok1 && ok2 {
		if i != j {
			return false
		}
		i, ok1 = p.b.NextSet(i + 1)
		j, ok2 = q.b.NextSet(j + 1)
	}

	return ok1 == ok2
}

// Key returns the canonical coefficient string truncated at the degree,
// lowest degree first ("0" for the zero polynomial). Equal polynomials have
// equal keys regardless of how their storage grew.
func (p *Poly) Key() string {
	deg := p.Degree()
	if deg < 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(deg + 1)
	for i := 0; i <= deg; i++ {
		if p.b.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// String renders p as "1+D+D^3".
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i, ok := p.b.NextSet(0); ok; i, ok = p.b.NextSet(i + 1) {
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "D")
		default:
			terms = append(terms, "D^"+strconv.Itoa(int(i)))
		}
	}

	return strings.Join(terms, "+")
}
