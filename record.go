// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package benchplot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
)

// Record is the measurement of a single solver invocation on a single board.
type Record struct {
	// BoardIndex is the position of the board within its board set. Sets may
	// be numbered from zero or from one.
	BoardIndex int `json:"board_index"`

	// BestMove and Probability are the solver's answer for the board. They
	// are carried through unchanged when present and are never required.
	BestMove    *[2]int  `json:"best_move,omitempty"`
	Probability *float64 `json:"probability,omitempty"`

	// ExecutionTimeMS is the wall-clock solve time in milliseconds.
	ExecutionTimeMS float64 `json:"execution_time_ms"`
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		BoardIndex      *int     `json:"board_index"`
		BestMove        *[2]int  `json:"best_move"`
		Probability     *float64 `json:"probability"`
		ExecutionTimeMS *float64 `json:"execution_time_ms"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.BoardIndex == nil:
		return errors.New("missing board_index")
	case raw.ExecutionTimeMS == nil:
		return errors.New("missing execution_time_ms")
	case *raw.ExecutionTimeMS < 0 || math.IsNaN(*raw.ExecutionTimeMS):
		return fmt.Errorf("invalid execution_time_ms %v", *raw.ExecutionTimeMS)
	}
	*r = Record{
		BoardIndex:      *raw.BoardIndex,
		BestMove:        raw.BestMove,
		Probability:     raw.Probability,
		ExecutionTimeMS: *raw.ExecutionTimeMS,
	}
	return nil
}

// Decode parses a JSON array of records. Any problem with the input is
// reported as an error wrapping [ErrParse].
func Decode(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrParse)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	records := make([]Record, len(elems))
	for i, elem := range elems {
		if err := json.Unmarshal(elem, &records[i]); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrParse, i, err)
		}
	}
	return records, nil
}

// Load reads the records stored at path. A missing file is reported as an
// error wrapping [ErrMissingFile] and unparseable content as one wrapping
// [ErrParse]. Any other read failure is returned as an I/O error prefixed
// with path and wrapping the underlying error.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Save writes records to path as an indented JSON array, creating parent
// directories as needed.
func Save(path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
