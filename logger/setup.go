// setup.go builds and installs the default logger used by the CLI and by tests.

package logger

import (
	"context"
	"sync"

	"github.com/facebookincubator/go-belt/pkg/runtime"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/xaionaro-go/observability"
)

var installCallerFilterOnce sync.Once

// Setup creates a logrus-backed logger of the given level, makes it
// the default logger and returns a context carrying it.
func Setup(ctx context.Context, level Level) (context.Context, Logger) {
	installCallerFilterOnce.Do(func() {
		runtime.DefaultCallerPCFilter = observability.CallerPCFilter(runtime.DefaultCallerPCFilter)
	})
	l := logrus.Default().WithLevel(level)
	SetDefault(func() Logger {
		return l
	})
	return CtxWithLogger(ctx, l), l
}

func FromCtx(ctx context.Context) Logger {
	return logger.FromCtx(ctx)
}

func CtxWithLogger(ctx context.Context, l Logger) context.Context {
	return logger.CtxWithLogger(ctx, l)
}
