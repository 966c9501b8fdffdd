package main

import (
	"context"
	"time"
)

// waitForPump returns the result of the pump once it reports to done,
// calling onTick on every tick meanwhile. After ctx is cancelled the pump
// gets grace to stop; stopped is false if it did not.
func waitForPump(
	ctx context.Context,
	done <-chan error,
	tick <-chan time.Time,
	onTick func(),
	grace time.Duration,
) (stopped bool, err error) {
	for {
		select {
		case err := <-done:
			return true, err
		case <-ctx.Done():
			// a source blocked in a read may ignore the cancellation
			t := time.NewTimer(grace)
			defer t.Stop()
			select {
			case err := <-done:
				return true, err
			case <-t.C:
				return false, ctx.Err()
			}
		case <-tick:
			onTick()
		}
	}
}
