// controller.go implements Controller, the runtime controls of the
// filter: filter selection, Gaussian parameters and snapshots.

// Package control maps user input (keys, signals) to changes of the
// filter applied by a running frame pump.
package control

import (
	"context"
	"errors"
	"fmt"

	"github.com/xaionaro-go/pixfilter/filter"
	"github.com/xaionaro-go/pixfilter/framepump"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/xsync"
)

// ErrQuit is returned once the user asked to quit.
var ErrQuit = errors.New("quit requested")

// SnapshotRequester arms saving of the next frame.
type SnapshotRequester interface {
	Request(ctx context.Context)
}

// Controller remembers the Gaussian parameters even while another filter
// is selected, so that switching back restores them.
type Controller struct {
	Spec     *framepump.SpecHolder
	Snapshot SnapshotRequester

	locker   xsync.Mutex
	gaussian filter.Gaussian
}

// New returns a Controller; gaussian is snapped into the range of the
// controls if it cannot be applied as is.
func New(
	ctx context.Context,
	spec *framepump.SpecHolder,
	snapshot SnapshotRequester,
	gaussian filter.Gaussian,
) *Controller {
	gaussian = gaussian.Resolve()
	if err := filter.Validate(gaussian); err != nil {
		clamped := gaussian.Clamp()
		logger.Warnf(ctx, "%v; using %s", err, clamped)
		gaussian = clamped
	}
	if g, ok := spec.Get(ctx).(filter.Gaussian); ok && filter.Validate(g) == nil {
		gaussian = g.Resolve()
	}
	return &Controller{
		Spec:     spec,
		Snapshot: snapshot,
		gaussian: gaussian,
	}
}

func (c *Controller) String() string {
	return fmt.Sprintf("Controller(%s)", c.Spec.Get(context.Background()))
}

// Gaussian returns the parameters the Gaussian filter is selected with.
func (c *Controller) Gaussian(ctx context.Context) filter.Gaussian {
	return xsync.DoR1(ctx, &c.locker, func() filter.Gaussian {
		return c.gaussian
	})
}

// Select switches to the filter identified by name (see filter.Parse).
func (c *Controller) Select(ctx context.Context, name string) error {
	return xsync.DoR1(ctx, &c.locker, func() error {
		return c.Spec.Set(ctx, c.specLocked(name))
	})
}

// NextFilter switches to the filter following the current one in
// filter.Names(), wrapping around.
func (c *Controller) NextFilter(ctx context.Context) error {
	return xsync.DoR1(ctx, &c.locker, func() error {
		return c.Spec.Update(ctx, func(cur filter.Spec) filter.Spec {
			names := filter.Names()
			next := names[0]
			name := filter.Name(cur)
			for idx := range names {
				if names[idx] == name {
					next = names[(idx+1)%len(names)]
					break
				}
			}
			return c.specLocked(next)
		})
	})
}

// StepKernelSize moves the Gaussian kernel size by steps odd sizes.
func (c *Controller) StepKernelSize(ctx context.Context, steps int) error {
	return c.updateGaussian(ctx, func(g filter.Gaussian) filter.Gaussian {
		return g.StepKernelSize(steps)
	})
}

// StepSigma moves the Gaussian sigma by steps units.
func (c *Controller) StepSigma(ctx context.Context, steps int) error {
	return c.updateGaussian(ctx, func(g filter.Gaussian) filter.Gaussian {
		return g.StepSigma(steps)
	})
}

// RequestSnapshot saves the next frame.
func (c *Controller) RequestSnapshot(ctx context.Context) {
	if c.Snapshot != nil {
		c.Snapshot.Request(ctx)
	}
}

func (c *Controller) updateGaussian(
	ctx context.Context,
	fn func(filter.Gaussian) filter.Gaussian,
) error {
	return xsync.DoR1(ctx, &c.locker, func() error {
		c.gaussian = fn(c.gaussian)
		logger.Infof(ctx, "Gaussian: kernel size %d, sigma %v", c.gaussian.KernelSize, c.gaussian.Sigma)
		return c.Spec.Update(ctx, func(cur filter.Spec) filter.Spec {
			if _, ok := cur.(filter.Gaussian); ok {
				return c.gaussian
			}
			return cur
		})
	})
}

func (c *Controller) specLocked(name string) filter.Spec {
	return filter.Parse(name, c.gaussian.KernelSize, c.gaussian.Sigma)
}
