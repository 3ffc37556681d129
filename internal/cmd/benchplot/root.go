// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/petenewcomb/benchplot"
	"github.com/petenewcomb/benchplot/internal/config"
	"github.com/petenewcomb/benchplot/internal/logging"
	"github.com/petenewcomb/benchplot/internal/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "benchplot",
		Short: "Render benchmark comparison charts",
		Long: `Loads board-solver benchmark results (JSON arrays of board_index and
execution_time_ms) and renders grouped bar charts and cumulative-average line
charts as configured. With no config file the premade and random board charts
are rendered from ./data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (YAML, JSON or TOML)")
	flags.String(config.FlagDataDir, "", "directory holding the benchmark result files")
	flags.String(config.FlagOutputDir, "", "directory the charts are written to")
	flags.String(config.FlagLogLevel, "", "log level: debug, info, warn or error")

	root.AddCommand(
		&cobra.Command{
			Use:   "render",
			Short: "Render every configured chart (the default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRender(cmd, &opts)
			},
		},
		&cobra.Command{
			Use:   "summary",
			Short: "Print execution time statistics for every configured series",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSummary(cmd, &opts)
			},
		},
	)
	return root
}

func setup(cmd *cobra.Command, opts *options) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runRender(cmd *cobra.Command, opts *options) error {
	cfg, logger, err := setup(cmd, opts)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "benchplot:", err)
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if err := pipeline.Run(cfg, logger); err != nil {
		logger.Error("Rendering failed", zap.Error(err))
		return err
	}
	return nil
}

func runSummary(cmd *cobra.Command, opts *options) error {
	cfg, logger, err := setup(cmd, opts)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "benchplot:", err)
		return err
	}
	defer logger.Sync() //nolint:errcheck

	sums, err := pipeline.Summaries(cfg)
	if err != nil {
		logger.Error("Summary failed", zap.Error(err))
		return err
	}
	return writeSummaries(cmd.OutOrStdout(), sums, cfg.Confidence)
}

func writeSummaries(w io.Writer, sums []pipeline.FileSummary, confidence float64) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SERIES\tFILE\tBOARDS\tMEAN (FINAL CUM. AVG)\tMEDIAN\t%.0f%% CI\tMIN\tMAX\n", confidence*100)
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t[%s, %s]\t%s\t%s\n",
			s.Label,
			s.Path,
			s.Count,
			benchplot.FormatValue(s.Mean),
			benchplot.FormatValue(s.Median.Center),
			benchplot.FormatValue(s.Median.Lo),
			benchplot.FormatValue(s.Median.Hi),
			benchplot.FormatValue(s.Min),
			benchplot.FormatValue(s.Max),
		)
	}
	return tw.Flush()
}
