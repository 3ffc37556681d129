// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/petenewcomb/benchplot"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotutil"
)

const paletteName = "Paired"

// ParseColor accepts an SVG color name such as "blue" or "darkorange", or a
// hex triplet in "#rgb" or "#rrggbb" form. The empty string yields a nil
// color, meaning "use the palette".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(s, hex)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("chart: unknown color %q", s)
}

func parseHex(orig, hex string) (color.Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("chart: malformed hex color %q", orig)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("chart: malformed hex color %q", orig)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// seriesColors returns the color of each series: its own if set, otherwise
// the palette entry for its position.
func seriesColors(series []benchplot.Series) ([]color.Color, error) {
	palette, err := brewer.GetPalette(brewer.TypeQualitative, paletteName, max(3, min(len(series), 12)))
	if err != nil {
		return nil, err
	}
	colors := palette.Colors()

	out := make([]color.Color, len(series))
	for i := range series {
		switch {
		case series[i].Color != nil:
			out[i] = series[i].Color
		case i < len(colors):
			out[i] = colors[i]
		default:
			out[i] = plotutil.Color(i)
		}
	}
	return out, nil
}
