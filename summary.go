// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package benchplot

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/perf/benchmath"
	"golang.org/x/perf/benchunit"
)

// Summary describes the distribution of execution times in a series.
type Summary struct {
	Label string
	Count int
	Min   float64
	Max   float64

	// Mean is also the final value of the series' cumulative average.
	Mean float64

	// Median is the sample median with a distribution-free confidence
	// interval around it.
	Median benchmath.Summary
}

// Summarize computes a Summary of s. Confidence is the confidence level of the
// median's interval and must lie strictly between 0 and 1.
func Summarize(s Series, confidence float64) (Summary, error) {
	if s.Len() == 0 {
		return Summary{}, fmt.Errorf("%w: %q", ErrEmptySeries, s.Label)
	}
	if !(confidence > 0 && confidence < 1) {
		return Summary{}, fmt.Errorf("confidence must be in (0, 1), got %v", confidence)
	}

	times := s.Times()
	averages, err := CumulativeAverage(s.Records)
	if err != nil {
		return Summary{}, err
	}
	sample := benchmath.NewSample(slices.Clone(times), &benchmath.DefaultThresholds)

	return Summary{
		Label:  s.Label,
		Count:  len(times),
		Min:    slices.Min(times),
		Max:    slices.Max(times),
		Mean:   averages[len(averages)-1],
		Median: benchmath.AssumeNothing.Summary(sample, confidence),
	}, nil
}

// FormatValue renders a millisecond value compactly for chart annotations and
// tables.
func FormatValue(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.Abs(v) < 1:
		return fmt.Sprintf("%.3f", v)
	case math.Abs(v) < 10000:
		return fmt.Sprintf("%.1f", v)
	default:
		return benchunit.Scale(v, benchunit.Decimal)
	}
}
