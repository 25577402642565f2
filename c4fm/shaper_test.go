package c4fm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource adapts a fixed slice of dibits to DibitSource, for tests.
type sliceSource struct {
	dibits []byte
	pos    int
}

func (s *sliceSource) Next() (byte, bool) {
	if s.pos >= len(s.dibits) {
		return 0, false
	}
	var v = s.dibits[s.pos]
	s.pos++
	return v, true
}

func drain(t *testing.T, it *Impulses, n int) []float32 {
	t.Helper()
	var out = make([]float32, 0, n)
	for i := 0; i < n; i++ {
		var v, ok = it.Next()
		require.True(t, ok, "impulses exhausted early at sample %d", i)
		out = append(out, v)
	}
	return out
}

func TestImpulseMappingIsGrayCoded(t *testing.T) {
	assert.Equal(t, float32(0.06), impulseFor(0b00))
	assert.Equal(t, float32(0.18), impulseFor(0b01))
	assert.Equal(t, float32(-0.06), impulseFor(0b10))
	assert.Equal(t, float32(-0.18), impulseFor(0b11))
}

func TestImpulsesEmitOnePerSymbolPeriod(t *testing.T) {
	var src = &sliceSource{dibits: []byte{0b00, 0b01, 0b10, 0b11}}
	var it = NewImpulses(src, 5)

	var got = drain(t, it, 20)
	var want = []float32{
		0.06, 0, 0, 0, 0,
		0.18, 0, 0, 0, 0,
		-0.06, 0, 0, 0, 0,
		-0.18, 0, 0, 0, 0,
	}
	assert.Equal(t, want, got)
}

func TestImpulsesEndWhenSourceExhausted(t *testing.T) {
	var src = &sliceSource{dibits: []byte{0b00}}
	var it = NewImpulses(src, 1)

	var v, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, float32(0.06), v)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestNewImpulsesPanicsOnNonPositivePeriod(t *testing.T) {
	assert.Panics(t, func() { NewImpulses(&sliceSource{}, 0) })
	assert.Panics(t, func() { NewImpulses(&sliceSource{}, -1) })
}

func TestDeviationTestCyclesStandardPattern(t *testing.T) {
	var d DeviationTest
	var got [8]byte
	for i := range got {
		var v, ok = d.Next()
		require.True(t, ok)
		got[i] = v
	}
	assert.Equal(t, [8]byte{0b01, 0b01, 0b11, 0b11, 0b01, 0b01, 0b11, 0b11}, got)
}

func TestDeviationTestThroughImpulses(t *testing.T) {
	var d DeviationTest
	var it = NewImpulses(&d, 1)

	var got = drain(t, it, 8)
	var want = []float32{0.18, 0.18, -0.18, -0.18, 0.18, 0.18, -0.18, -0.18}
	assert.Equal(t, want, got)
}
