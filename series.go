// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package benchplot

import (
	"fmt"
	"image/color"
	"slices"
)

// Series is one labeled run of a solver over a board set.
type Series struct {
	Label string

	// Color is the color used to draw the series. A nil Color lets the
	// renderer pick one from its palette.
	Color color.Color

	Records []Record
}

// LoadSeries loads the records at path and checks that their board indices
// are strictly increasing.
func LoadSeries(label, path string, c color.Color) (Series, error) {
	records, err := Load(path)
	if err != nil {
		return Series{}, err
	}
	s := Series{
		Label:   label,
		Color:   c,
		Records: records,
	}
	if err := s.Validate(); err != nil {
		return Series{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Series) Len() int {
	return len(s.Records)
}

// Validate reports ErrUnorderedIndices if any board index is not greater
// than the one before it.
func (s *Series) Validate() error {
	for i := 1; i < len(s.Records); i++ {
		prev, cur := s.Records[i-1].BoardIndex, s.Records[i].BoardIndex
		if cur <= prev {
			return fmt.Errorf("%w: series %q has board %d after board %d",
				ErrUnorderedIndices, s.Label, cur, prev)
		}
	}
	return nil
}

// BoardIndices returns the board index of each record, in order.
func (s *Series) BoardIndices() []int {
	indices := make([]int, len(s.Records))
	for i, r := range s.Records {
		indices[i] = r.BoardIndex
	}
	return indices
}

// Times returns the execution time of each record, in order.
func (s *Series) Times() []float64 {
	times := make([]float64, len(s.Records))
	for i, r := range s.Records {
		times[i] = r.ExecutionTimeMS
	}
	return times
}

// CheckComparable returns ErrEmptySeries if there are no series or any of
// them is empty, ErrUnorderedIndices if any of them fails Validate, and
// ErrIndexMismatch if they do not all cover the same boards.
func CheckComparable(series []Series) error {
	if len(series) == 0 {
		return fmt.Errorf("%w: no series given", ErrEmptySeries)
	}
	var reference []int
	for i := range series {
		s := &series[i]
		if s.Len() == 0 {
			return fmt.Errorf("%w: %q", ErrEmptySeries, s.Label)
		}
		if err := s.Validate(); err != nil {
			return err
		}
		indices := s.BoardIndices()
		if i == 0 {
			reference = indices
			continue
		}
		if !slices.Equal(reference, indices) {
			return fmt.Errorf("%w: %q and %q", ErrIndexMismatch, series[0].Label, s.Label)
		}
	}
	return nil
}
