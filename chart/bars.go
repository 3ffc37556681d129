// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"strconv"

	"github.com/petenewcomb/benchplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// GroupedBars draws the execution time of every board in every series as a
// bar, grouping the bars of each board side by side and labeling each bar
// with its value. All series must cover the same boards in the same order;
// otherwise GroupedBars fails with benchplot.ErrIndexMismatch rather than
// drawing misaligned bars. No series, or an empty one, fails with
// benchplot.ErrEmptySeries.
func GroupedBars(style Style, series []benchplot.Series, outputPath string) error {
	s := style.withDefaults(DefaultBarStyle())
	p, _, err := newGroupedBarsPlot(s, series)
	if err != nil {
		return err
	}
	return savePlot(p, &s, outputPath)
}

func newGroupedBarsPlot(s Style, series []benchplot.Series) (*plot.Plot, []*valueBars, error) {
	if err := benchplot.CheckComparable(series); err != nil {
		return nil, nil, err
	}
	colors, err := seriesColors(series)
	if err != nil {
		return nil, nil, err
	}

	p := setupPlot(&s, false)

	indices := series[0].BoardIndices()
	ticks := make([]plot.Tick, len(indices))
	for i, index := range indices {
		ticks[i] = plot.Tick{Value: float64(index), Label: strconv.Itoa(index)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	// Each board owns a slot as wide as the closest pair of boards, so
	// groups never overlap even when the indices have gaps.
	slot := minIndexGap(indices)
	barWidth := slot * 4 / 5 / float64(len(series))
	barSpacing := barWidth / 8
	maxWidth := s.BarWidth
	if maxWidth <= 0 {
		maxWidth = maxBarWidth
	}

	// Calculate the total width of the bar group, center to center.
	groupWidth := (barWidth + barSpacing) * float64(len(series)-1)

	labelStyle := p.X.Tick.Label
	labelStyle.Font.Size *= 0.8

	all := make([]*valueBars, len(series))
	for i := range series {
		sr := &series[i]
		points := make(plotter.XYs, sr.Len())
		labels := make([]string, sr.Len())
		for j, r := range sr.Records {
			points[j].X = float64(r.BoardIndex)
			points[j].Y = r.ExecutionTimeMS
			labels[j] = benchplot.FormatValue(r.ExecutionTimeMS)
		}

		bars, err := newValueBars(points, labels, barWidth)
		if err != nil {
			return nil, nil, err
		}
		bars.Offset = (barWidth+barSpacing)*float64(i) - groupWidth/2
		bars.MaxWidth = maxWidth
		bars.Color = colors[i]
		bars.LineStyle.Width = 0
		bars.LabelStyle.Font = labelStyle.Font
		bars.LabelStyle.Color = labelStyle.Color

		p.Add(bars)
		p.Legend.Add(sr.Label, bars)
		all[i] = bars
	}

	// Half a slot of padding keeps the outermost groups inside the axes.
	p.X.Min = float64(indices[0]) - slot/2
	p.X.Max = float64(indices[len(indices)-1]) + slot/2
	p.Y.Min = 0
	if p.Y.Max <= 0 {
		p.Y.Max = 1
	}
	p.Y.Max *= yAxisGrowFactor

	return p, all, nil
}

// minIndexGap returns the smallest distance between consecutive board
// indices, or 1 when there is only one board.
func minIndexGap(indices []int) float64 {
	gap := 0
	for i := 1; i < len(indices); i++ {
		if d := indices[i] - indices[i-1]; gap == 0 || d < gap {
			gap = d
		}
	}
	if gap == 0 {
		return 1
	}
	return float64(gap)
}
