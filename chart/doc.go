// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package chart renders [benchplot.Series] as image files using gonum/plot.
//
// [GroupedBars] compares the per-board execution times of series that cover
// the same boards. [CumulativeLines] compares how a running statistic of
// execution time, by default the cumulative average, evolves as more boards
// are solved. The output format follows the extension of the output path.
package chart
