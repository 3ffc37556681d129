// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"

	"github.com/petenewcomb/benchplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Style holds the presentation settings of a chart. Zero fields take the
// defaults of DefaultBarStyle and DefaultLineStyle.
type Style struct {
	Title      string
	XAxisLabel string
	YAxisLabel string

	Width  vg.Length
	Height vg.Length

	// BarWidth caps the width of each bar in a grouped bar chart, which
	// otherwise fills the space between neighboring boards. Zero uses a
	// 24pt cap.
	BarWidth vg.Length

	// Statistic and Window select the curve drawn by CumulativeLines.
	Statistic benchplot.Statistic
	Window    int

	Background color.Color
}

const (
	defaultWidth  = 10 * vg.Inch
	defaultHeight = 5 * vg.Inch

	maxBarWidth = vg.Length(24)

	// yAxisGrowFactor leaves headroom above the tallest bar for its label.
	yAxisGrowFactor = 1.15
)

func DefaultBarStyle() Style {
	return Style{
		Title:      "Execution Time on Premade Boards",
		XAxisLabel: "Board Index",
		YAxisLabel: "Execution Time (ms)",
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: color.White,
	}
}

func DefaultLineStyle() Style {
	return Style{
		Title:      "Average Execution Time Over Simulated Boards",
		XAxisLabel: "Number of Boards Simulated",
		YAxisLabel: "Average Execution Time (ms)",
		Width:      defaultWidth,
		Height:     defaultHeight,
		Statistic:  benchplot.Mean,
		Background: color.White,
	}
}

func (s Style) withDefaults(defaults Style) Style {
	if s.Title == "" {
		s.Title = defaults.Title
	}
	if s.XAxisLabel == "" {
		s.XAxisLabel = defaults.XAxisLabel
	}
	if s.YAxisLabel == "" {
		s.YAxisLabel = defaults.YAxisLabel
	}
	if s.Width <= 0 {
		s.Width = defaults.Width
	}
	if s.Height <= 0 {
		s.Height = defaults.Height
	}
	if s.Statistic == "" {
		s.Statistic = defaults.Statistic
	}
	if s.Background == nil {
		s.Background = defaults.Background
	}
	return s
}

func setupPlot(s *Style, verticalGrid bool) *plot.Plot {
	p := plot.New()

	p.Title.Text = s.Title
	p.X.Label.Text = s.XAxisLabel
	p.Y.Label.Text = s.YAxisLabel

	grid := plotter.NewGrid()
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Horizontal.Color = color.Gray{192}
	if verticalGrid {
		grid.Vertical.Dashes = grid.Horizontal.Dashes
		grid.Vertical.Color = color.Gray{192}
	} else {
		grid.Vertical.Color = nil
	}
	p.Add(grid)

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = 1 * vg.Millimeter
	p.BackgroundColor = s.Background

	return p
}

func savePlot(p *plot.Plot, s *Style, outputPath string) error {
	if outputPath == "" {
		return errors.New("chart: no output path")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	return p.Save(s.Width, s.Height, outputPath)
}
