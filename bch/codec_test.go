package bch

import (
	"testing"

	"github.com/kg-radio/p25core/gf6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeKnownVector(t *testing.T) {
	assert.Equal(t, uint64(0xFF00_9310_C230_6868), Encode(0xFF00))
}

func TestEncodeParityBits(t *testing.T) {
	assert.Equal(t, uint64(0), Encode(0b0011)&1)
	assert.Equal(t, uint64(1), Encode(0b0101)&1)
	assert.Equal(t, uint64(1), Encode(0b1010)&1)
	assert.Equal(t, uint64(0), Encode(0b1100)&1)
	assert.Equal(t, uint64(0), Encode(0b1111)&1)
}

func TestSyndromesOfCleanCodewordAreTrivial(t *testing.T) {
	var w = Encode(0xFF00) >> 1
	var s = Syndromes(w)
	assert.Equal(t, 0, s.Degree())
	assert.True(t, s.Coef(0).Equal(gf6.One()))
}

func TestSyndromesRiseWithErrors(t *testing.T) {
	var w = (Encode(0xFF00) ^ (1 << 60)) >> 1
	var s = Syndromes(w)
	assert.Equal(t, 22, s.Degree())
}

func TestDecodeZeroErrors(t *testing.T) {
	var data, errs, err = Decode(Encode(0xFF00))
	require.NoError(t, err)
	assert.Equal(t, uint16(0xFF00), data)
	assert.Equal(t, 0, errs)
}

func TestDecodeSingleErrorInTopDataBit(t *testing.T) {
	var data, errs, err = Decode(InjectErrors(Encode(0x0F0F), 1<<63))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0F0F), data)
	assert.Equal(t, 1, errs)
}

func TestDecodeOverallParityFlipAloneIsFree(t *testing.T) {
	var data, errs, err = Decode(InjectErrors(Encode(0xABCD), 1))
	require.NoError(t, err)
	assert.Equal(t, uint16(0xABCD), data)
	assert.Equal(t, 0, errs)
}

func TestDecodeTenAdjacentErrors(t *testing.T) {
	var data, errs, err = Decode(InjectErrors(Encode(0xFFFF), 0b111_1111_1111))
	require.NoError(t, err)
	assert.Equal(t, uint16(0xFFFF), data)
	assert.Equal(t, 10, errs)
}

func TestDecodeElevenErrorsAtCapacity(t *testing.T) {
	var data, errs, err = Decode(InjectErrors(Encode(0x0F80), 0b1111_1111_1110))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0F80), data)
	assert.Equal(t, 11, errs)
}

func TestDecodeTwelveErrorsUncorrectable(t *testing.T) {
	var _, _, err = Decode(InjectErrors(Encode(0x0F8A), 0b1_1111_1111_1110))
	require.Error(t, err)
	assert.IsType(t, &Uncorrectable{}, err)
}

func TestChienSearchOrderingFromSpecVector(t *testing.T) {
	var w = InjectErrors(Encode(0x0F0F), 0b11<<61)
	var syn = Syndromes(w >> 1)
	var lambda = BerlekampMassey(syn)

	require.Equal(t, 2, lambda.Degree())
	assert.Equal(t, 0, lambda.Coef(0).Power())
	assert.Equal(t, 3, lambda.Coef(1).Power())
	assert.Equal(t, 58, lambda.Coef(2).Power())

	var out Locations
	var n = ChienSearch(lambda, lambda.Degree(), &out)
	require.Equal(t, 2, n)
	assert.Equal(t, 61, out[0].Position)
	assert.Equal(t, 60, out[1].Position)
	assert.True(t, out[0].Value.Equal(gf6.One()))
	assert.True(t, out[1].Value.Equal(gf6.One()))
}

func TestDecodeRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var w = uint16(rapid.IntRange(0, 0xFFFF).Draw(t, "word"))
		var data, errs, err = Decode(Encode(w))
		require.NoError(t, err)
		assert.Equal(t, w, data)
		assert.Equal(t, 0, errs)
	})
}

func TestDecodeExhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive 65536-word check skipped in -short mode")
	}
	for w := 0; w < 0x10000; w++ {
		var data, _, err = Decode(Encode(uint16(w)))
		require.NoError(t, err)
		require.Equal(t, uint16(w), data)
	}
}
