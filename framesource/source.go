// source.go defines Source, the supplier of raw frames for the frame pump.

// Package framesource provides frame suppliers: still images, anything
// libav can open (files, streams, V4L2 devices) and, when built with the
// `with_cv` tag, webcams through OpenCV.
package framesource

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
)

var ErrClosed = errors.New("the source is closed")

// Source yields one freshly allocated buffer per frame.
//
// Next returns io.EOF when there are no more frames.
type Source interface {
	fmt.Stringer
	Next(ctx context.Context) (*pixbuf.Buffer, error)
	Close(ctx context.Context) error
}

// closer releases the underlying resources exactly once.
type closer struct {
	closeOnce sync.Once
	c         chan struct{}
	release   func(ctx context.Context)
}

func newCloser(release func(ctx context.Context)) *closer {
	return &closer{
		c:       make(chan struct{}),
		release: release,
	}
}

func (c *closer) Close(ctx context.Context) error {
	logger.Debugf(ctx, "Close")
	defer func() { logger.Debugf(ctx, "/Close") }()
	c.closeOnce.Do(func() {
		close(c.c)
		if c.release != nil {
			c.release(ctx)
		}
	})
	return nil
}

func (c *closer) IsClosed() bool {
	select {
	case <-c.c:
		return true
	default:
		return false
	}
}
