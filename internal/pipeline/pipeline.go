// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package pipeline renders every chart named by a configuration, one after
// another, stopping at the first failure.
package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/petenewcomb/benchplot"
	"github.com/petenewcomb/benchplot/chart"
	"github.com/petenewcomb/benchplot/internal/config"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// Run renders every chart in cfg. It returns the first error encountered,
// wrapped with the name of the chart that caused it.
func Run(cfg *config.Config, logger *zap.Logger) error {
	for i := range cfg.Charts {
		ch := &cfg.Charts[i]
		if err := renderChart(cfg, ch, logger); err != nil {
			return fmt.Errorf("chart %s: %w", ch.Name(), err)
		}
	}
	logger.Info("All charts rendered",
		zap.Int("charts", len(cfg.Charts)),
		zap.String("output_dir", cfg.OutputDir))
	return nil
}

func renderChart(cfg *config.Config, ch *config.Chart, logger *zap.Logger) error {
	startTime := time.Now()
	outputPath := resolve(cfg.OutputDir, ch.Output)
	logger.Debug("Rendering chart",
		zap.String("chart", ch.Name()),
		zap.String("kind", string(ch.Kind)),
		zap.Int("series", len(ch.Series)))

	series, err := LoadSeries(cfg, ch.Series)
	if err != nil {
		return err
	}
	for _, s := range series {
		logger.Debug("Loaded series",
			zap.String("chart", ch.Name()),
			zap.String("label", s.Label),
			zap.Int("records", s.Len()))
	}

	style, err := styleFor(cfg, ch)
	if err != nil {
		return err
	}

	switch ch.Kind {
	case config.Bars:
		err = chart.GroupedBars(style, series, outputPath)
	case config.Cumulative:
		err = chart.CumulativeLines(style, series, outputPath)
	default:
		err = fmt.Errorf("%w: unknown chart kind %q", config.ErrInvalid, ch.Kind)
	}
	if err != nil {
		return err
	}

	logger.Info("Chart written",
		zap.String("chart", ch.Name()),
		zap.String("path", outputPath),
		zap.Duration("duration", time.Since(startTime)))
	return nil
}

func styleFor(cfg *config.Config, ch *config.Chart) (chart.Style, error) {
	st, err := benchplot.ParseStatistic(ch.Statistic)
	if err != nil {
		return chart.Style{}, err
	}
	return chart.Style{
		Title:      ch.Title,
		XAxisLabel: ch.XLabel,
		YAxisLabel: ch.YLabel,
		Width:      vg.Length(cfg.Width) * vg.Inch,
		Height:     vg.Length(cfg.Height) * vg.Inch,
		BarWidth:   vg.Points(ch.BarWidth),
		Statistic:  st,
		Window:     ch.Window,
	}, nil
}

// LoadSeries loads each configured series from the data directory.
func LoadSeries(cfg *config.Config, entries []config.Series) ([]benchplot.Series, error) {
	series := make([]benchplot.Series, len(entries))
	for i, entry := range entries {
		c, err := chart.ParseColor(entry.Color)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", entry.Label, err)
		}
		series[i], err = benchplot.LoadSeries(entry.Label, resolve(cfg.DataDir, entry.File), c)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", entry.Label, err)
		}
	}
	return series, nil
}

// Summaries loads every distinct series file referenced by cfg, in order of
// first appearance, and summarizes it.
func Summaries(cfg *config.Config) ([]FileSummary, error) {
	seen := make(map[string]struct{})
	var out []FileSummary
	for _, ch := range cfg.Charts {
		for _, entry := range ch.Series {
			path := resolve(cfg.DataDir, entry.File)
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}

			s, err := benchplot.LoadSeries(entry.Label, path, nil)
			if err != nil {
				return nil, err
			}
			sum, err := benchplot.Summarize(s, cfg.Confidence)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			out = append(out, FileSummary{Path: path, Summary: sum})
		}
	}
	return out, nil
}

// FileSummary is the summary of the series stored in one results file.
type FileSummary struct {
	Path string
	benchplot.Summary
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
