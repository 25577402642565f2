// Package poly implements fixed-capacity, dense polynomials over GF(2^6),
// sized to the working degree of a particular P25 code rather than
// allocated dynamically, so the decode hot path never touches the heap.
package poly

import "github.com/kg-radio/p25core/gf6"

/*-------------------------------------------------------------
 *
 * Purpose:	Fixed-capacity dense polynomial over GF(2^6).
 *
 * Description:	Capacity is chosen by the caller, up to BCHCapacity
 *		(24 for BCH(63,16,23), t = 11). All arithmetic
 *		truncates to capacity; this is sound because the working
 *		degree during Berlekamp-Massey and Chien search never
 *		exceeds the capacity the caller chose. degree() is never
 *		cached - it is re-derived by scanning from the top every
 *		time, so a stale coefficient can never produce a stale
 *		degree.
 *
 *--------------------------------------------------------------*/

// NoDegree marks the zero polynomial, which has no well-defined degree.
const NoDegree = -1

// BCHCapacity is the fixed coefficient-array size shared by every
// polynomial BCH(63,16,23) works with: the syndrome polynomial needs
// S_0..S_22 (23 terms, indices 0..22) and the locator/backtrack
// polynomials never exceed degree t=11, so 24 coefficients covers both
// with one slot to spare.
const BCHCapacity = 24

// Poly is a little-endian (constant term first) coefficient array of a
// fixed capacity. The zero value has capacity 0 and holds no
// coefficients; use New or Zero to get a usable value.
type Poly struct {
	coef [BCHCapacity]gf6.Elem
	cap  int
}

// New builds a polynomial of the given capacity, filling coefficients
// from the arguments in order; coefficients beyond those given remain zero.
// Capacity must not exceed BCHCapacity, the only capacity this binary
// actually needs; a larger request is a contract violation.
func New(capacity int, coefficients ...gf6.Elem) Poly {
	if capacity <= 0 || capacity > BCHCapacity {
		panic("poly: capacity out of range")
	}
	if len(coefficients) > capacity {
		panic("poly: more coefficients than capacity")
	}
	var p = Poly{cap: capacity}
	copy(p.coef[:], coefficients)
	return p
}

// Zero builds the zero polynomial at the given capacity.
func Zero(capacity int) Poly {
	return New(capacity)
}

// Cap returns the polynomial's fixed capacity.
func (p Poly) Cap() int { return p.cap }

// Degree returns the index of the highest nonzero coefficient, or
// NoDegree if every coefficient is zero.
func (p Poly) Degree() int {
	for i := p.cap - 1; i >= 0; i-- {
		if !p.coef[i].IsZero() {
			return i
		}
	}
	return NoDegree
}

// Coef returns the coefficient at index i. Indices at or beyond capacity
// are a contract violation (reading past the fixed-size backing array);
// everywhere else, coefficients above the real degree are simply zero.
func (p Poly) Coef(i int) gf6.Elem {
	if i < 0 || i >= p.cap {
		panic("poly: coefficient index out of range")
	}
	return p.coef[i]
}

// SetCoef sets the coefficient at index i, used by decoders building up
// Lambda/B term by term. Out-of-range i is a contract violation.
func (p *Poly) SetCoef(i int, v gf6.Elem) {
	if i < 0 || i >= p.cap {
		panic("poly: coefficient index out of range")
	}
	p.coef[i] = v
}

// ScalarMul returns p scaled by a single field element.
func (p Poly) ScalarMul(s gf6.Elem) Poly {
	var out = Zero(p.cap)
	for i := 0; i < p.cap; i++ {
		out.coef[i] = p.coef[i].Mul(s)
	}
	return out
}

// ShiftTerms returns x^n * p, truncated to capacity; terms that would
// land at or beyond capacity are discarded.
func (p Poly) ShiftTerms(n int) Poly {
	var out = Zero(p.cap)
	for i := 0; i < p.cap; i++ {
		var src = i - n
		if src >= 0 && src < p.cap {
			out.coef[i] = p.coef[src]
		}
	}
	return out
}

// Add returns p + other (equivalently p - other: GF(2^n) addition is its
// own inverse). Both operands must share the same capacity.
func (p Poly) Add(other Poly) Poly {
	if p.cap != other.cap {
		panic("poly: capacity mismatch in Add")
	}
	var out = Zero(p.cap)
	for i := 0; i < p.cap; i++ {
		out.coef[i] = p.coef[i].Add(other.coef[i])
	}
	return out
}

// Mul returns p * other truncated to capacity. Both operands must share
// the same capacity; terms beyond capacity are silently dropped, which
// is sound because every caller bounds the working degree well below it.
func (p Poly) Mul(other Poly) Poly {
	if p.cap != other.cap {
		panic("poly: capacity mismatch in Mul")
	}
	var out = Zero(p.cap)
	for i := 0; i < p.cap; i++ {
		if p.coef[i].IsZero() {
			continue
		}
		for j := 0; j < p.cap-i; j++ {
			if other.coef[j].IsZero() {
				continue
			}
			out.coef[i+j] = out.coef[i+j].Add(p.coef[i].Mul(other.coef[j]))
		}
	}
	return out
}

// Eval evaluates p(x) at a field element via Horner's method.
func (p Poly) Eval(x gf6.Elem) gf6.Elem {
	var result = gf6.Zero()
	for i := p.cap - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coef[i])
	}
	return result
}
