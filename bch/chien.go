package bch

import (
	"github.com/kg-radio/p25core/gf6"
	"github.com/kg-radio/p25core/poly"
)

/*-------------------------------------------------------------
 *
 * Name:	ChienSearch
 *
 * Purpose:	Enumerate the roots of an error-locator polynomial to
 *		find bit error positions.
 *
 * Description:	For each candidate position i in [0, 62], Lambda is
 *		evaluated at alpha^-i; a zero marks an error there. This
 *		is a binary code, so the "error value" needed to flip a
 *		bit is always 1 -- the Forney step collapses to nothing,
 *		and alpha^0 is returned as a sentinel confirming a root
 *		was actually found, rather than a computed correction
 *		magnitude.
 *
 *		Positions are reported from i=62 down to i=0 (most
 *		significant bit first), matching the natural order of
 *		a hardware Chien search stepping through alpha^-i. Test
 *		vectors depend on this ordering.
 *
 *--------------------------------------------------------------*/

// Location is a single corrected bit position and its (always alpha^0,
// for this binary code) error value.
type Location struct {
	Position int
	Value    gf6.Elem
}

// Locations is a fixed-capacity result buffer for ChienSearch, sized to
// the code's maximum correctable error count so the hot decode path
// never allocates.
type Locations [MaxErrors]Location

// ChienSearch fills out with at most maxLocations roots of lambda, in
// decreasing position order, and returns how many it found. It stops
// early once maxLocations are found.
func ChienSearch(lambda poly.Poly, maxLocations int, out *Locations) int {
	if maxLocations <= 0 {
		return 0
	}
	if maxLocations > MaxErrors {
		panic("bch: maxLocations exceeds MaxErrors capacity")
	}

	var count = 0
	for i := 62; i >= 0; i-- {
		var x = gf6.ForPower(-i)
		if lambda.Eval(x).IsZero() {
			out[count] = Location{Position: i, Value: gf6.One()}
			count++
			if count == maxLocations {
				break
			}
		}
	}

	return count
}
