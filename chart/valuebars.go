// Derived from https://github.com/gonum/plot/blob/v0.16.0/plotter/barchart.go:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// valueBars draws one vertical bar per point, rising from zero, with the
// bar's value printed above it. Several valueBars with different offsets make
// up a grouped bar chart.
type valueBars struct {
	// The category (X) and height (Y) of each bar.
	Bars plotter.XYs

	// Labels holds the text drawn above each bar.
	Labels []string

	// Width is the width of each bar in data units along X.
	Width float64

	// Offset is added to the X location of each bar, in data units, so that
	// the bars of several series can sit side by side in the same category.
	Offset float64

	// MaxWidth, when positive, caps the drawn width of a bar. Width and
	// Offset shrink together so that a group of bars stays centered.
	MaxWidth vg.Length

	Color color.Color

	// LineStyle is the style of the bar outlines.
	draw.LineStyle

	LabelStyle text.Style

	// LabelGap is the space between the top of a bar and its label.
	LabelGap vg.Length
}

func newValueBars(bars plotter.XYer, labels []string, width float64) (*valueBars, error) {
	if width <= 0 {
		return nil, errors.New("chart: bar width was not positive")
	}
	barsCopy, err := plotter.CopyXYs(bars)
	if err != nil {
		return nil, err
	}
	if labels != nil && len(labels) != len(barsCopy) {
		return nil, errors.New("chart: label count does not match bar count")
	}
	return &valueBars{
		Bars:      barsCopy,
		Labels:    append([]string(nil), labels...),
		Width:     width,
		Color:     color.Black,
		LineStyle: plotter.DefaultLineStyle,
		LabelStyle: text.Style{
			Font:    font.From(plotter.DefaultFont, plotter.DefaultFontSize),
			XAlign:  text.XCenter,
			YAlign:  text.YBottom,
			Handler: plot.DefaultTextHandler,
		},
		LabelGap: vg.Points(2),
	}, nil
}

// Plot implements the plot.Plotter interface.
func (b *valueBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, bar := range b.Bars {
		if !c.ContainsX(trX(bar.X)) {
			continue
		}
		xMin, xMax := b.bounds(trX, i)
		x := (xMin + xMax) / 2
		yMin := trY(0)
		yMax := trY(bar.Y)

		pts := []vg.Point{
			{X: xMin, Y: yMin},
			{X: xMin, Y: yMax},
			{X: xMax, Y: yMax},
			{X: xMax, Y: yMin},
		}
		c.FillPolygon(b.Color, c.ClipPolygonY(pts))

		pts = append(pts, pts[0])
		c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)

		if len(b.Labels) > 0 {
			c.FillText(b.LabelStyle, vg.Point{X: x, Y: yMax + b.LabelGap}, b.Labels[i])
		}
	}
}

// bounds returns the left and right edges of bar i on the canvas described by
// trX.
func (b *valueBars) bounds(trX func(float64) vg.Length, i int) (xMin, xMax vg.Length) {
	scale := 1.0
	if drawn := trX(b.Width) - trX(0); b.MaxWidth > 0 && drawn > b.MaxWidth {
		scale = float64(b.MaxWidth / drawn)
	}
	center := b.Bars[i].X + b.Offset*scale
	half := b.Width * scale / 2
	return trX(center - half), trX(center + half)
}

// DataRange implements the plot.DataRanger interface.
func (b *valueBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = 0, 0
	for _, bar := range b.Bars {
		xmin = math.Min(xmin, bar.X)
		xmax = math.Max(xmax, bar.X)
		ymin = math.Min(ymin, bar.Y)
		ymax = math.Max(ymax, bar.Y)
	}
	return xmin, xmax, ymin, ymax
}

// GlyphBoxes implements the plot.GlyphBoxer interface so that the plot leaves
// room for the bars at the edges and for the labels above them.
func (b *valueBars) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	boxes := make([]plot.GlyphBox, len(b.Bars))
	for i, bar := range b.Bars {
		box := &boxes[i]
		box.X = plt.X.Norm(bar.X + b.Offset)
		box.Y = plt.Y.Norm(bar.Y)
		if len(b.Labels) > 0 {
			label := b.LabelStyle.Rectangle(b.Labels[i])
			box.Rectangle = vg.Rectangle{
				Min: vg.Point{X: label.Min.X},
				Max: vg.Point{X: label.Max.X, Y: b.LabelGap + label.Max.Y},
			}
		}
	}
	return boxes
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *valueBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))

	pts = append(pts, pts[0])
	c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
}
