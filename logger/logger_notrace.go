//go:build !debug_trace
// +build !debug_trace

// logger_notrace.go compiles the per-pixel-pass tracing out of regular builds.

package logger

import (
	"context"
)

// Tracef is a no-op unless built with the `debug_trace` tag.
func Tracef(ctx context.Context, format string, args ...any) {}
