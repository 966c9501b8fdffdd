package logger

import (
	"github.com/facebookincubator/go-belt/tool/logger"
)

// Level is the verbosity of a logger; it also implements pflag.Value.
type Level = logger.Level

const (
	LevelUndefined = logger.LevelUndefined
	LevelFatal     = logger.LevelFatal
	LevelPanic     = logger.LevelPanic
	LevelError     = logger.LevelError
	LevelWarning   = logger.LevelWarning
	LevelInfo      = logger.LevelInfo
	LevelDebug     = logger.LevelDebug

	// LevelTrace is only effective in binaries built with the `debug_trace` tag.
	LevelTrace = logger.LevelTrace
)
