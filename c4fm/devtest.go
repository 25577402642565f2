package c4fm

/*------------------------------------------------------------------
 *
 * Name:	DeviationTest
 *
 * Purpose:	Generate the standard P25 transmitter deviation-test
 *		dibit pattern: 01, 01, 11, 11 repeating without end.
 *
 * Description:	Driving this pattern through Impulses produces the
 *		calibration tone used to check a transmitter's deviation
 *		against a service monitor. Only the outer symbols appear
 *		(+0.18 and -0.18 impulses, the +-1.8kHz points); the
 *		+-0.6kHz points are not exercised.
 *
 *---------------------------------------------------------------*/

var deviationPattern = [4]byte{0b01, 0b01, 0b11, 0b11}

// DeviationTest is an infinite DibitSource cycling the standard
// deviation-test pattern. Its zero value starts at the beginning of
// the pattern.
type DeviationTest struct {
	pos int
}

// Next always returns true; DeviationTest never ends.
func (d *DeviationTest) Next() (byte, bool) {
	var v = deviationPattern[d.pos]
	d.pos = (d.pos + 1) % len(deviationPattern)
	return v, true
}
