package bch

import (
	"github.com/kg-radio/p25core/gf6"
	"github.com/kg-radio/p25core/poly"
)

/*-------------------------------------------------------------
 *
 * Name:	Syndromes
 *
 * Purpose:	Compute the syndrome polynomial for a received 63-bit
 *		BCH word.
 *
 * Description:	S_k = r(alpha^k), the received word interpreted as a
 *		GF(2^6) polynomial of degree < 63, evaluated at the
 *		k-th power of the primitive element, for k in 1..22.
 *		S_0 is fixed to 1 as a sentinel so Berlekamp-Massey can
 *		be initialized uniformly starting at step n=0; Chien
 *		search ignores index 0.
 *
 *--------------------------------------------------------------*/

func Syndromes(received uint64) poly.Poly {
	var coeffs [23]gf6.Elem
	coeffs[0] = gf6.One()
	for k := 1; k < poly.BCHCapacity-1; k++ {
		var s = gf6.Zero()
		for b := 0; b < 63; b++ {
			if received>>uint(b)&1 != 0 {
				s = s.Add(gf6.ForPower(b * k))
			}
		}
		coeffs[k] = s
	}
	return poly.New(poly.BCHCapacity, coeffs[:]...)
}
