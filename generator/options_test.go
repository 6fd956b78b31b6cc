package generator

import (
	"image/color"
	"math"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safing/icongen/raster"
)

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Input = "icon.png"
	cfg.Out = "dist"

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, "icon.png", opts.InputPath)
	assert.Equal(t, "dist", opts.OutDir)
	assert.Equal(t, Targets{TargetWeb}, opts.Targets)
	assert.True(t, opts.PadToSquare)
	assert.Equal(t, color.NRGBA{A: 0xFF}, opts.Background)
	assert.InDelta(t, 0.80, opts.MaskableScale, 1e-9)
	assert.Equal(t, raster.FilterLanczos, opts.Filter.Name())

	cfg.NoPad = true
	cfg.Targets = "web,ue"
	cfg.Background = "#11223344"
	cfg.Filter = "no-such-filter"
	opts, err = cfg.Options()
	require.NoError(t, err)
	assert.False(t, opts.PadToSquare)
	assert.Equal(t, Targets{TargetWeb, TargetEngine}, opts.Targets)
	assert.Equal(t, color.NRGBA{0x11, 0x22, 0x33, 0x44}, opts.Background)
	assert.Equal(t, raster.FilterLanczos, opts.Filter.Name())
}

func TestConfigOptionsCollectsErrors(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Targets:       "bogus",
		Background:    "#12345",
		MaskableScale: math.NaN(),
	}
	_, err := cfg.Options()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTarget)
	assert.ErrorIs(t, err, raster.ErrInvalidColor)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)
}
