// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	chk := require.New(t)
	chk.Equal(zapcore.DebugLevel, ParseLevel("debug"))
	chk.Equal(zapcore.InfoLevel, ParseLevel("info"))
	chk.Equal(zapcore.WarnLevel, ParseLevel("warn"))
	chk.Equal(zapcore.ErrorLevel, ParseLevel("error"))
	chk.Equal(zapcore.InfoLevel, ParseLevel("verbose"))
	chk.Equal(zapcore.InfoLevel, ParseLevel(""))
}

func TestNew(t *testing.T) {
	chk := require.New(t)
	logger, err := New("warn")
	chk.NoError(err)
	chk.False(logger.Core().Enabled(zapcore.InfoLevel))
	chk.True(logger.Core().Enabled(zapcore.WarnLevel))
}
