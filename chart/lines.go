// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"fmt"

	"github.com/petenewcomb/benchplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CumulativeLines draws, for each series, a line of its running statistic
// (the cumulative average unless the style selects another) against board
// index. Legend entries carry the final value of each line. Both axes start
// at zero and extend to the largest board index and value across all series.
// No series, or an empty one, fails with benchplot.ErrEmptySeries.
func CumulativeLines(style Style, series []benchplot.Series, outputPath string) error {
	s := style.withDefaults(DefaultLineStyle())
	p, _, err := newLinesPlot(s, series)
	if err != nil {
		return err
	}
	return savePlot(p, &s, outputPath)
}

func newLinesPlot(s Style, series []benchplot.Series) (*plot.Plot, []*plotter.Line, error) {
	if len(series) == 0 {
		return nil, nil, fmt.Errorf("%w: no series given", benchplot.ErrEmptySeries)
	}
	colors, err := seriesColors(series)
	if err != nil {
		return nil, nil, err
	}

	p := setupPlot(&s, true)

	var maxX, maxY float64
	lines := make([]*plotter.Line, len(series))
	for i := range series {
		sr := &series[i]
		if sr.Len() == 0 {
			return nil, nil, fmt.Errorf("%w: %q", benchplot.ErrEmptySeries, sr.Label)
		}
		if err := sr.Validate(); err != nil {
			return nil, nil, err
		}
		values, err := benchplot.Aggregate(s.Statistic, sr.Records, s.Window)
		if err != nil {
			return nil, nil, fmt.Errorf("series %q: %w", sr.Label, err)
		}

		points := make(plotter.XYs, len(values))
		for j, v := range values {
			points[j].X = float64(sr.Records[j].BoardIndex)
			points[j].Y = v
			maxY = max(maxY, v)
		}
		maxX = max(maxX, points[len(points)-1].X)

		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, nil, err
		}
		line.Color = colors[i]
		line.Width = vg.Points(1.5)

		p.Add(line)
		final := values[len(values)-1]
		p.Legend.Add(fmt.Sprintf("%s (final %s ms)", sr.Label, benchplot.FormatValue(final)), line)
		lines[i] = line
	}

	// Both axes start at zero; a degenerate maximum still gets a unit range.
	p.X.Min, p.Y.Min = 0, 0
	p.X.Max, p.Y.Max = maxX, maxY
	if p.X.Max <= 0 {
		p.X.Max = 1
	}
	if p.Y.Max <= 0 {
		p.Y.Max = 1
	}

	return p, lines, nil
}
