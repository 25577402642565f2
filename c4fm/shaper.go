// Package c4fm maps a dibit stream to the impulse train a pulse-shaping
// FIR filter expects, and supplies the standard P25 deviation-test
// pattern used to calibrate transmit deviation.
package c4fm

/*------------------------------------------------------------------
 *
 * Purpose:     Convert a dibit stream into scaled impulses at symbol
 *		boundaries for the external pulse-shaping filter.
 *
 * Description:	One impulse is emitted per symbol period P: all but the
 *		first of every P samples are 0.0, and the first carries
 *		the Gray-coded deviation value for the dibit consumed at
 *		that boundary. The mapping is fixed by the standard and
 *		is not the natural binary ordering -- it is chosen so
 *		adjacent deviations differ by a single bit:
 *
 *			0b01  ->  +0.18
 *			0b00  ->  +0.06
 *			0b10  ->  -0.06
 *			0b11  ->  -0.18
 *
 *		After shaping by the transmit filter (external to this
 *		package), these correspond to the standard +-1.8kHz and
 *		+-0.6kHz deviations.
 *
 *---------------------------------------------------------------*/

// DibitSource is a lazy, possibly-infinite sequence of dibits. Next
// returns false once the source is exhausted.
type DibitSource interface {
	Next() (byte, bool)
}

// Impulses iterates over a dibit source, yielding sample-rate impulses
// at the rate the symbol period dictates. Impulses holds no resources
// beyond the source it wraps and a sample counter; it is safe to
// abandon mid-stream.
type Impulses struct {
	src    DibitSource
	period int
	sample uint64
}

// NewImpulses builds an Impulses iterator over src with the given
// symbol period (samples per symbol). period must be positive.
func NewImpulses(src DibitSource, period int) *Impulses {
	if period <= 0 {
		panic("c4fm: symbol period must be positive")
	}
	return &Impulses{src: src, period: period}
}

// Next returns the next sample, or false once the dibit source is
// exhausted at a symbol boundary.
func (it *Impulses) Next() (float32, bool) {
	var s = it.sample
	it.sample++

	if int(s%uint64(it.period)) != 0 {
		return 0.0, true
	}

	var dibit, ok = it.src.Next()
	if !ok {
		return 0, false
	}

	return impulseFor(dibit), true
}

func impulseFor(dibit byte) float32 {
	switch dibit & 0b11 {
	case 0b01:
		return 0.18
	case 0b00:
		return 0.06
	case 0b10:
		return -0.06
	case 0b11:
		return -0.18
	default:
		panic("c4fm: unreachable dibit value")
	}
}
