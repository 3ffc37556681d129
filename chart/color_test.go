// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"image/color"
	"testing"

	"github.com/petenewcomb/benchplot"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	chk := require.New(t)

	c, err := ParseColor("")
	chk.NoError(err)
	chk.Nil(c)

	c, err = ParseColor("blue")
	chk.NoError(err)
	chk.Equal(color.RGBA{B: 0xff, A: 0xff}, c)

	c, err = ParseColor(" DarkOrange ")
	chk.NoError(err)
	chk.Equal(color.RGBA{R: 0xff, G: 0x8c, A: 0xff}, c)

	c, err = ParseColor("#1f77b4")
	chk.NoError(err)
	chk.Equal(color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, c)

	c, err = ParseColor("#f0a")
	chk.NoError(err)
	chk.Equal(color.RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}, c)

	for _, bad := range []string{"#12345", "#zzzzzz", "notacolor"} {
		_, err = ParseColor(bad)
		chk.Error(err, bad)
	}
}

func TestSeriesColorsBeyondPalette(t *testing.T) {
	series := make([]benchplot.Series, 14)
	colors, err := seriesColors(series)
	require.NoError(t, err)
	require.Len(t, colors, 14)
	for _, c := range colors {
		require.NotNil(t, c)
	}
}
