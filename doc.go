// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package benchplot loads board-solver benchmark results and derives the
// per-series curves that the [github.com/petenewcomb/benchplot/chart] package
// renders.
//
// A benchmark run produces one JSON array of [Record] values per combination
// of board set and solver variant. Each array is loaded into a [Series],
// labeled and optionally colored, and then either plotted directly as bars
// (one per board) or reduced to a running statistic such as the
// [CumulativeAverage] of execution time.
//
// Everything here is sequential and side-effect free apart from [Load] and
// [Save]. Empty inputs are rejected with [ErrEmptySeries] rather than producing
// degenerate output.
package benchplot

//go:generate go run ./internal/cmd/benchplot --config benchplot.yaml
