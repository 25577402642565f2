package bch

import (
	"github.com/kg-radio/p25core/gf6"
	"github.com/kg-radio/p25core/poly"
)

/*-------------------------------------------------------------
 *
 * Name:	BerlekampMassey
 *
 * Purpose:	Synthesize the minimal-degree error-locator polynomial
 *		Lambda from a syndrome sequence.
 *
 * Description:	Classic Berlekamp-Massey LFSR synthesis run for 2t
 *		steps (t = 11, the code's error-correcting capacity).
 *		Subtraction is XOR since the field has characteristic 2.
 *		If the resulting Lambda has degree greater than t, the
 *		received word has more errors than this code can
 *		correct; the caller is responsible for treating that as
 *		an uncorrectable result.
 *
 *--------------------------------------------------------------*/

func BerlekampMassey(syn poly.Poly) poly.Poly {
	var lambda = poly.New(poly.BCHCapacity, gf6.One())
	var back = poly.New(poly.BCHCapacity, gf6.One())

	var length = 0
	var sinceBump = 1
	var lastDiscrepancy = gf6.One()

	for n := 0; n < 2*MaxErrors; n++ {
		var discrepancy = discrepancyAt(lambda, syn, n, length)

		if discrepancy.IsZero() {
			sinceBump++
			continue
		}

		var scale = discrepancy.Div(lastDiscrepancy)
		var correction = back.ShiftTerms(sinceBump).ScalarMul(scale)

		if 2*length <= n {
			var prev = lambda
			lambda = lambda.Add(correction)
			length = n + 1 - length
			back = prev
			lastDiscrepancy = discrepancy
			sinceBump = 1
		} else {
			lambda = lambda.Add(correction)
			sinceBump++
		}
	}

	return lambda
}

// discrepancyAt computes Delta = sum_{i=0..length} Lambda_i * S_{n-i}.
func discrepancyAt(lambda poly.Poly, syn poly.Poly, n int, length int) gf6.Elem {
	var delta = gf6.Zero()
	for i := 0; i <= length; i++ {
		var k = n - i
		if k < 0 || k >= syn.Cap() {
			continue
		}
		delta = delta.Add(lambda.Coef(i).Mul(syn.Coef(k)))
	}
	return delta
}
