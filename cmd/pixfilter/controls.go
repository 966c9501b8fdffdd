package main

import (
	"context"
	"os"

	"github.com/xaionaro-go/pixfilter/control"
	"github.com/xaionaro-go/pixfilter/logger"
)

// serveControls handles the signals standing in for the keys of an
// interactive viewer.
func serveControls(
	ctx context.Context,
	c *control.Controller,
) {
	snapshotRequests := make(chan os.Signal, 1)
	nextFilterRequests := make(chan os.Signal, 1)
	notifyControlSignals(snapshotRequests, nextFilterRequests)

	for {
		select {
		case <-ctx.Done():
			return
		case <-snapshotRequests:
			c.RequestSnapshot(ctx)
		case <-nextFilterRequests:
			if err := c.NextFilter(ctx); err != nil {
				logger.Errorf(ctx, "unable to switch the filter: %v", err)
			}
		case <-c.Spec.ChangeSignal():
			logger.Infof(ctx, "the filter is now %s", c.Spec.Get(ctx))
		}
	}
}
