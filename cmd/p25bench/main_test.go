package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordSourceEmitsMSBFirstDibitsAndWraps(t *testing.T) {
	var src = newWordSource(0b01_10_11_00_01_10_11_00)

	var got [9]byte
	for i := range got {
		var v, ok = src.Next()
		require.True(t, ok)
		got[i] = v
	}

	assert.Equal(t, [9]byte{0b01, 0b10, 0b11, 0b00, 0b01, 0b10, 0b11, 0b00, 0b01}, got)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	var dir = t.TempDir()
	var path = filepath.Join(dir, "p25bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: decode\nword: 61184\nperiod: 20\n"), 0644))

	var cfg = defaultConfig()
	require.NoError(t, cfg.loadFile(path))

	assert.Equal(t, "decode", cfg.Mode)
	assert.Equal(t, uint16(61184), cfg.Word)
	assert.Equal(t, 20, cfg.Period)
}

func TestLoadFileMissingReturnsError(t *testing.T) {
	var cfg = defaultConfig()
	assert.Error(t, cfg.loadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
