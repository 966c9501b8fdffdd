package framepump

import (
	"context"
	"fmt"

	"github.com/go-ng/xatomic"
	"github.com/xaionaro-go/pixfilter/filter"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/xsync"
)

// SpecHolder is the currently selected filter, shared between the
// controls and the pump.
type SpecHolder struct {
	locker       xsync.Mutex
	spec         filter.Spec
	changeSignal *chan struct{}
}

func NewSpecHolder(spec filter.Spec) *SpecHolder {
	if spec == nil {
		spec = filter.Identity{}
	}
	return &SpecHolder{
		spec:         spec,
		changeSignal: ptr(make(chan struct{})),
	}
}

func ptr[T any](v T) *T {
	return &v
}

// ChangeSignal returns a channel closed on the next change of the filter.
func (h *SpecHolder) ChangeSignal() <-chan struct{} {
	return *xatomic.LoadPointer(&h.changeSignal)
}

func (h *SpecHolder) setLocked(ctx context.Context, spec filter.Spec) {
	logger.Debugf(ctx, "filter: %s -> %s", h.spec, spec)
	h.spec = spec
	close(*xatomic.SwapPointer(&h.changeSignal, ptr(make(chan struct{}))))
}

func (h *SpecHolder) Get(ctx context.Context) filter.Spec {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &h.locker, func() filter.Spec {
		return h.spec
	})
}

// Set replaces the filter; an invalid one is rejected and the previous
// filter stays in effect.
func (h *SpecHolder) Set(ctx context.Context, spec filter.Spec) error {
	if spec == nil {
		spec = filter.Identity{}
	}
	if err := filter.Validate(spec); err != nil {
		return fmt.Errorf("unable to set the filter: %w", err)
	}
	h.locker.Do(ctx, func() {
		h.setLocked(ctx, spec)
	})
	return nil
}

// Update applies fn to the current filter atomically.
func (h *SpecHolder) Update(ctx context.Context, fn func(filter.Spec) filter.Spec) error {
	return xsync.DoR1(ctx, &h.locker, func() error {
		spec := fn(h.spec)
		if spec == nil {
			spec = filter.Identity{}
		}
		if err := filter.Validate(spec); err != nil {
			return fmt.Errorf("unable to update the filter: %w", err)
		}
		h.setLocked(ctx, spec)
		return nil
	})
}
