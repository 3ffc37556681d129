// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package config loads the settings of a chart rendering run from a config
// file, BENCHPLOT_* environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/petenewcomb/benchplot"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrInvalid = constError("invalid configuration")

// Kind names the type of chart a job renders.
type Kind string

const (
	Bars       Kind = "bars"
	Cumulative Kind = "cumulative"
)

type Series struct {
	Label string `mapstructure:"label"`
	// Color is an SVG color name or hex triplet; empty picks from the palette.
	Color string `mapstructure:"color"`
	// File is relative to the data directory unless absolute.
	File string `mapstructure:"file"`
}

type Chart struct {
	Kind   Kind   `mapstructure:"kind"`
	Output string `mapstructure:"output"`
	Title  string `mapstructure:"title"`
	XLabel string `mapstructure:"x_label"`
	YLabel string `mapstructure:"y_label"`

	// Statistic and Window apply to cumulative charts only.
	Statistic string `mapstructure:"statistic"`
	Window    int    `mapstructure:"window"`

	// BarWidth caps the bar width in points; zero uses the default cap.
	BarWidth float64 `mapstructure:"bar_width"`

	Series []Series `mapstructure:"series"`
}

// Name identifies the chart in logs and errors.
func (c *Chart) Name() string {
	return c.Output
}

type Config struct {
	DataDir   string `mapstructure:"data_dir"`
	OutputDir string `mapstructure:"output_dir"`
	LogLevel  string `mapstructure:"log_level"`

	// Width and Height of every chart, in inches.
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	// Confidence is the level used for the median interval in summaries.
	Confidence float64 `mapstructure:"confidence"`

	Charts []Chart `mapstructure:"charts"`
}

const EnvPrefix = "BENCHPLOT"

// Flag names bound by Load when present in the flag set.
const (
	FlagDataDir   = "data-dir"
	FlagOutputDir = "output-dir"
	FlagLogLevel  = "log-level"
)

// DefaultCharts reproduces the charts of the original plotting script: a bar
// chart of the premade boards and a cumulative-average chart of the random
// ones.
func DefaultCharts() []Chart {
	return []Chart{
		{
			Kind:   Bars,
			Output: "ex_premade_plot.png",
			Title:  "Execution Time on Premade Boards",
			XLabel: "Board Index",
			YLabel: "Execution Time (ms)",
			Series: []Series{{Label: "Exhaustive", Color: "blue", File: "ex_premade.json"}},
		},
		{
			Kind:      Cumulative,
			Output:    "ex_random_plot.png",
			Title:     "Average Execution Time Over Simulated Boards",
			XLabel:    "Number of Boards Simulated",
			YLabel:    "Average Execution Time (ms)",
			Statistic: string(benchplot.Mean),
			Series:    []Series{{Label: "Exhaustive", File: "ex_random.json"}},
		},
	}
}

// Load reads the config file at path, if path is not empty, then applies
// environment variables and any of the FlagDataDir, FlagOutputDir and
// FlagLogLevel flags that were set. The result is validated before it is
// returned.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", "data")
	v.SetDefault("output_dir", "data")
	v.SetDefault("log_level", "info")
	v.SetDefault("width", 10)
	v.SetDefault("height", 5)
	v.SetDefault("confidence", 0.95)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"data_dir":   FlagDataDir,
			"output_dir": FlagOutputDir,
			"log_level":  FlagLogLevel,
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(cfg.Charts) == 0 {
		cfg.Charts = DefaultCharts()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem with c as a single error wrapping
// ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir is empty"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir is empty"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("chart size %vx%v must be positive", c.Width, c.Height))
	}
	if !(c.Confidence > 0 && c.Confidence < 1) {
		errs = append(errs, fmt.Errorf("confidence %v must be between 0 and 1", c.Confidence))
	}

	outputs := make(map[string]int)
	for i := range c.Charts {
		ch := &c.Charts[i]
		prefix := fmt.Sprintf("charts[%d]", i)
		switch ch.Kind {
		case Bars, Cumulative:
		default:
			errs = append(errs, fmt.Errorf("%s: unknown kind %q", prefix, ch.Kind))
		}
		if ch.Output == "" {
			errs = append(errs, fmt.Errorf("%s: output is empty", prefix))
		} else if j, dup := outputs[ch.Output]; dup {
			errs = append(errs, fmt.Errorf("%s: output %q already written by charts[%d]", prefix, ch.Output, j))
		} else {
			outputs[ch.Output] = i
		}
		if _, err := benchplot.ParseStatistic(ch.Statistic); err != nil {
			errs = append(errs, fmt.Errorf("%s: %v", prefix, err))
		}
		if ch.Statistic == string(benchplot.Rolling) && ch.Window <= 0 {
			errs = append(errs, fmt.Errorf("%s: rolling statistic needs a positive window", prefix))
		}
		if ch.BarWidth < 0 {
			errs = append(errs, fmt.Errorf("%s: bar_width is negative", prefix))
		}
		if len(ch.Series) == 0 {
			errs = append(errs, fmt.Errorf("%s: no series", prefix))
		}
		for j, s := range ch.Series {
			if s.File == "" {
				errs = append(errs, fmt.Errorf("%s.series[%d]: file is empty", prefix, j))
			}
			if s.Label == "" {
				errs = append(errs, fmt.Errorf("%s.series[%d]: label is empty", prefix, j))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
