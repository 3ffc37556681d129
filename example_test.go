// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package benchplot_test

import (
	"fmt"

	"github.com/petenewcomb/benchplot"
)

// Computes the running mean of solve times as boards are simulated one after
// another.
func ExampleCumulativeAverage() {
	records := []benchplot.Record{
		{BoardIndex: 1, ExecutionTimeMS: 10},
		{BoardIndex: 2, ExecutionTimeMS: 20},
		{BoardIndex: 3, ExecutionTimeMS: 60},
	}
	averages, err := benchplot.CumulativeAverage(records)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(averages)
	// Output: [10 15 30]
}

func ExampleCumulativeAverage_empty() {
	_, err := benchplot.CumulativeAverage(nil)
	fmt.Println(err)
	// Output: series has no records
}
