// sink.go defines Sink, the consumer of filtered frames.

// Package framesink provides the destinations of filtered frames.
package framesink

import (
	"context"

	"github.com/xaionaro-go/pixfilter/filter"
	"github.com/xaionaro-go/pixfilter/pixbuf"
)

// Sink receives each filtered frame together with the filter that
// produced it. The buffer belongs to the sink after the call.
type Sink interface {
	Consume(ctx context.Context, buf *pixbuf.Buffer, spec filter.Spec) error
}

// Func adapts a function to Sink.
type Func func(ctx context.Context, buf *pixbuf.Buffer, spec filter.Spec) error

var _ Sink = Func(nil)

func (fn Func) Consume(ctx context.Context, buf *pixbuf.Buffer, spec filter.Spec) error {
	return fn(ctx, buf, spec)
}

// Multi fans a frame out to every sink, stopping at the first error.
type Multi []Sink

var _ Sink = Multi(nil)

func (s Multi) Consume(ctx context.Context, buf *pixbuf.Buffer, spec filter.Spec) error {
	for _, sink := range s {
		if err := sink.Consume(ctx, buf, spec); err != nil {
			return err
		}
	}
	return nil
}
