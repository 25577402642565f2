// Package gf6 implements arithmetic over GF(2^6), the 64-element Galois
// field P25 uses for its BCH(63,16,23) link-layer code.
package gf6

/*-------------------------------------------------------------
 *
 * Purpose:	Element arithmetic over GF(2^6), defined by the P25
 *		primitive polynomial x^6 + x + 1.
 *
 * Description:	Every nonzero element has both a polynomial form (a
 *		6-bit integer, additive/XOR arithmetic) and a power
 *		form (a discrete log base the primitive element alpha,
 *		multiplicative arithmetic). Exp/log tables are built
 *		once at package init and are read-only afterward, so
 *		Elem values can be shared freely across goroutines.
 *
 *--------------------------------------------------------------*/

// Size is the number of elements in the field, including zero.
const Size = 64

// Order is the multiplicative order of the field: every nonzero element
// is alpha^k for some k in [0, Order).
const Order = Size - 1

// primitivePoly is x^6 + x + 1 in binary: bit i set means coefficient of x^i.
const primitivePoly = 0x43 // 0b1000011

// None marks "no discrete log", the power-form value of the zero element.
const None = -1

// expTable[k] = alpha^k for k in [0, Order). expTable is indexed mod Order
// by Elem.Mul so callers never need to reduce by hand.
var expTable [Order]byte

// logTable[p] = k such that alpha^k == p, for nonzero polynomial forms p.
// logTable[0] is unused; elements track "no log" via None, not via this
// table, so a caller can never accidentally read a bogus log for zero.
var logTable [Size]int

func init() {
	var reg = 1
	for k := 0; k < Order; k++ {
		expTable[k] = byte(reg)
		logTable[reg] = k

		reg <<= 1
		if reg&Size != 0 {
			reg ^= primitivePoly
		}
	}
}

// Elem is a single GF(2^6) field element, carrying both representations.
// The zero value of Elem is the field's zero element.
type Elem struct {
	poly  byte // 6-bit polynomial form; valid for every element including zero.
	power int  // discrete log, or None for the zero element.
}

// Zero is the additive identity.
func Zero() Elem { return Elem{poly: 0, power: None} }

// One is the multiplicative identity, alpha^0.
func One() Elem { return ForPower(0) }

// ForPower returns alpha^k. k is reduced modulo Order, so any integer,
// including negative ones, is accepted.
func ForPower(k int) Elem {
	var r = k % Order
	if r < 0 {
		r += Order
	}
	return Elem{poly: expTable[r], power: r}
}

// FromPoly reconstructs an Elem from its raw 6-bit polynomial form, e.g.
// when unpacking a received codeword bit-by-bit into a syndrome term.
func FromPoly(p byte) Elem {
	p &= Size - 1
	if p == 0 {
		return Zero()
	}
	return Elem{poly: p, power: logTable[p]}
}

// IsZero reports whether e is the field's zero element.
func (e Elem) IsZero() bool { return e.poly == 0 }

// Poly returns the 6-bit additive-form representation.
func (e Elem) Poly() byte { return e.poly }

// Power returns the discrete log of e, or None if e is zero.
func (e Elem) Power() int { return e.power }

// Add returns e + other. Field characteristic is 2, so this is XOR and
// doubles as subtraction: a.Add(a) == Zero(), and a.Add(b) == a.Sub(b).
func (e Elem) Add(other Elem) Elem {
	return FromPoly(e.poly ^ other.poly)
}

// Sub is an alias for Add; GF(2^n) subtraction is XOR, same as addition.
func (e Elem) Sub(other Elem) Elem {
	return e.Add(other)
}

// Mul returns e * other. Either operand zero yields zero; otherwise the
// product is alpha^((i+j) mod Order).
func (e Elem) Mul(other Elem) Elem {
	if e.IsZero() || other.IsZero() {
		return Zero()
	}
	return ForPower(e.power + other.power)
}

// Inv returns the multiplicative inverse of e. Inverting zero is a
// contract violation: callers must check IsZero (or Power() == None)
// first, as the BCH decoder always does before dividing.
func (e Elem) Inv() Elem {
	if e.IsZero() {
		panic("gf6: inverse of zero element")
	}
	return ForPower(Order - e.power)
}

// Div returns e / other. Panics if other is zero, per Inv.
func (e Elem) Div(other Elem) Elem {
	return e.Mul(other.Inv())
}

// Equal reports whether two elements represent the same field value.
func (e Elem) Equal(other Elem) bool {
	return e.poly == other.poly
}
