// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package benchplot

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrMissingFile = constError("benchmark results file not found")
const ErrParse = constError("malformed benchmark results")
const ErrEmptySeries = constError("series has no records")
const ErrIndexMismatch = constError("series board indices differ")
const ErrUnorderedIndices = constError("board indices not strictly increasing")
const ErrUnknownStatistic = constError("unknown statistic")
