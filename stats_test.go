// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package benchplot_test

import (
	"slices"
	"testing"

	"github.com/petenewcomb/benchplot"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func recordsOf(times ...float64) []benchplot.Record {
	records := make([]benchplot.Record, len(times))
	for i, t := range times {
		records[i] = benchplot.Record{BoardIndex: i, ExecutionTimeMS: t}
	}
	return records
}

func TestCumulativeAverage(t *testing.T) {
	cases := []struct {
		name  string
		times []float64
		want  []float64
	}{
		{"single", []float64{10}, []float64{10}},
		{"pair", []float64{10, 20}, []float64{10, 15}},
		{"constant", []float64{4, 4, 4, 4}, []float64{4, 4, 4, 4}},
		{"rising", []float64{1, 2, 3, 4, 5}, []float64{1, 1.5, 2, 2.5, 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := benchplot.CumulativeAverage(recordsOf(c.times...))
			require.NoError(t, err)
			require.InDeltaSlice(t, c.want, got, 1e-12)
		})
	}
}

func TestAggregatesRejectEmpty(t *testing.T) {
	chk := require.New(t)

	_, err := benchplot.CumulativeAverage(nil)
	chk.ErrorIs(err, benchplot.ErrEmptySeries)

	_, err = benchplot.CumulativeMedian([]benchplot.Record{})
	chk.ErrorIs(err, benchplot.ErrEmptySeries)

	_, err = benchplot.RollingAverage(nil, 3)
	chk.ErrorIs(err, benchplot.ErrEmptySeries)

	_, err = benchplot.RollingAverage(recordsOf(1), 0)
	chk.Error(err)
}

func TestCumulativeMedian(t *testing.T) {
	got, err := benchplot.CumulativeMedian(recordsOf(5, 1, 9, 3, 7, 100))
	require.NoError(t, err)
	require.Equal(t, []float64{5, 3, 5, 4, 5, 6}, got)
}

func TestRollingAverage(t *testing.T) {
	got, err := benchplot.RollingAverage(recordsOf(2, 4, 6, 8, 10), 2)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 3, 5, 7, 9}, got, 1e-12)
}

func TestRollingAverageMixedMagnitudes(t *testing.T) {
	got, err := benchplot.RollingAverage(recordsOf(1e17, 1, 1), 1)
	require.NoError(t, err)
	require.Equal(t, []float64{1e17, 1, 1}, got)

	got, err = benchplot.RollingAverage(recordsOf(1e17, 2, 4, 6), 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1e17, 5e16, 3, 5}, got)
}

func TestAggregate(t *testing.T) {
	chk := require.New(t)
	records := recordsOf(1, 3)

	got, err := benchplot.Aggregate(benchplot.Mean, records, 0)
	chk.NoError(err)
	chk.Equal([]float64{1, 2}, got)

	got, err = benchplot.Aggregate(benchplot.Median, records, 0)
	chk.NoError(err)
	chk.Equal([]float64{1, 2}, got)

	got, err = benchplot.Aggregate(benchplot.Rolling, records, 1)
	chk.NoError(err)
	chk.Equal([]float64{1, 3}, got)

	_, err = benchplot.Aggregate("mode", records, 0)
	chk.ErrorIs(err, benchplot.ErrUnknownStatistic)
}

func TestParseStatistic(t *testing.T) {
	chk := require.New(t)

	st, err := benchplot.ParseStatistic("")
	chk.NoError(err)
	chk.Equal(benchplot.Mean, st)

	st, err = benchplot.ParseStatistic("median")
	chk.NoError(err)
	chk.Equal(benchplot.Median, st)

	_, err = benchplot.ParseStatistic("p99")
	chk.ErrorIs(err, benchplot.ErrUnknownStatistic)
}

func drawTimes(t *rapid.T) []float64 {
	return rapid.SliceOfN(rapid.Float64Range(0, 1e6), 1, 200).Draw(t, "times")
}

func TestCumulativeAverageProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		times := drawTimes(t)
		got, err := benchplot.CumulativeAverage(recordsOf(times...))
		require.NoError(t, err)
		require.Len(t, got, len(times))

		var sum float64
		for i, x := range times {
			sum += x
			require.InDelta(t, sum/float64(i+1), got[i], 1e-6)
			// A running mean never leaves the range of the values seen so far.
			require.GreaterOrEqual(t, got[i], slices.Min(times[:i+1])-1e-6)
			require.LessOrEqual(t, got[i], slices.Max(times[:i+1])+1e-6)
		}
	})
}

func TestRollingAverageMatchesCumulativeWhenWindowCoversAll(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsOf(drawTimes(t)...)
		window := rapid.IntRange(len(records), len(records)+10).Draw(t, "window")

		rolling, err := benchplot.RollingAverage(records, window)
		require.NoError(t, err)
		cumulative, err := benchplot.CumulativeAverage(records)
		require.NoError(t, err)
		require.Equal(t, cumulative, rolling)
	})
}

func TestCumulativeMedianMatchesSorting(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		times := drawTimes(t)
		got, err := benchplot.CumulativeMedian(recordsOf(times...))
		require.NoError(t, err)
		require.Len(t, got, len(times))

		for i := range times {
			prefix := slices.Clone(times[:i+1])
			slices.Sort(prefix)
			n := len(prefix)
			want := prefix[n/2]
			if n%2 == 0 {
				want = (prefix[n/2-1] + prefix[n/2]) / 2
			}
			require.Equal(t, want, got[i], "prefix %d", i)
		}
	})
}
