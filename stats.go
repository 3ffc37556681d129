// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package benchplot

import (
	"cmp"
	"fmt"

	"github.com/addrummond/heap"
	"github.com/gammazero/deque"
)

// Statistic selects the running statistic drawn for a series.
type Statistic string

const (
	// Mean is the cumulative average of all records so far.
	Mean Statistic = "mean"
	// Median is the cumulative median of all records so far.
	Median Statistic = "median"
	// Rolling is the average of the most recent records, up to a window size.
	Rolling Statistic = "rolling"
)

func ParseStatistic(s string) (Statistic, error) {
	switch st := Statistic(s); st {
	case Mean, Median, Rolling:
		return st, nil
	case "":
		return Mean, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatistic, s)
	}
}

// Aggregate computes the running statistic st over records. The window is
// only consulted for Rolling.
func Aggregate(st Statistic, records []Record, window int) ([]float64, error) {
	switch st {
	case Mean:
		return CumulativeAverage(records)
	case Median:
		return CumulativeMedian(records)
	case Rolling:
		return RollingAverage(records, window)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatistic, st)
	}
}

// CumulativeAverage returns, for each position i, the mean execution time of
// records[0] through records[i].
func CumulativeAverage(records []Record) ([]float64, error) {
	if len(records) == 0 {
		return nil, ErrEmptySeries
	}
	out := make([]float64, len(records))
	var sum float64
	for i, r := range records {
		sum += r.ExecutionTimeMS
		out[i] = sum / float64(i+1)
	}
	return out, nil
}

// RollingAverage returns, for each position i, the mean execution time of the
// last window records ending at records[i], or of all of them while fewer
// than window have been seen.
func RollingAverage(records []Record, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("rolling window must be positive, got %d", window)
	}
	if len(records) == 0 {
		return nil, ErrEmptySeries
	}
	out := make([]float64, len(records))
	var recent deque.Deque[float64]
	for i, r := range records {
		recent.PushBack(r.ExecutionTimeMS)
		if recent.Len() > window {
			recent.PopFront()
		}
		// Subtracting departed values would leave their rounding error behind.
		var sum float64
		for j := 0; j < recent.Len(); j++ {
			sum += recent.At(j)
		}
		out[i] = sum / float64(recent.Len())
	}
	return out, nil
}

// Both halves of the running median are min-heaps; the lower half stores
// negated values so that its top is the largest value below the median.
type medianSample struct {
	Value float64
}

func (a *medianSample) Cmp(b *medianSample) int {
	return cmp.Compare(a.Value, b.Value)
}

// CumulativeMedian returns, for each position i, the median execution time of
// records[0] through records[i]. Even-sized prefixes take the mean of the two
// middle values.
func CumulativeMedian(records []Record) ([]float64, error) {
	if len(records) == 0 {
		return nil, ErrEmptySeries
	}
	var lower, upper heap.Heap[medianSample, heap.Min]
	var lowerLen, upperLen int

	top := func(h *heap.Heap[medianSample, heap.Min]) float64 {
		s, ok := heap.Peek(h)
		if !ok {
			panic("peek on empty half")
		}
		return s.Value
	}

	out := make([]float64, len(records))
	for i, r := range records {
		x := r.ExecutionTimeMS
		if lowerLen == 0 || x <= -top(&lower) {
			heap.PushOrderable(&lower, medianSample{Value: -x})
			lowerLen++
		} else {
			heap.PushOrderable(&upper, medianSample{Value: x})
			upperLen++
		}

		// Keep len(lower) == len(upper) or len(upper)+1.
		switch {
		case lowerLen > upperLen+1:
			s, _ := heap.PopOrderable(&lower)
			heap.PushOrderable(&upper, medianSample{Value: -s.Value})
			lowerLen--
			upperLen++
		case upperLen > lowerLen:
			s, _ := heap.PopOrderable(&upper)
			heap.PushOrderable(&lower, medianSample{Value: -s.Value})
			upperLen--
			lowerLen++
		}

		if lowerLen > upperLen {
			out[i] = -top(&lower)
		} else {
			out[i] = (-top(&lower) + top(&upper)) / 2
		}
	}
	return out, nil
}
