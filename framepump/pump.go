// pump.go implements Pump, the loop moving frames from a source through
// the selected filter into a sink.

// Package framepump drives the filter engine over a stream of frames.
package framepump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/xaionaro-go/pixfilter/filter"
	"github.com/xaionaro-go/pixfilter/framesink"
	"github.com/xaionaro-go/pixfilter/framesource"
	"github.com/xaionaro-go/pixfilter/indicator"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
	"github.com/xaionaro-go/pixfilter/types"
)

type Config struct {
	// MaxFPS limits the processing rate; frames arriving before the next
	// slot are dropped. Zero means unlimited.
	MaxFPS types.Rational

	// Frames stops the pump after that many frames were sent to the sink.
	// Zero means until the end of the source.
	Frames uint64

	// SideBySide sends the original and the filtered frame next to each
	// other (squeezed into one frame) instead of just the filtered one.
	SideBySide bool
}

// the captions of the halves of the comparison view
const (
	LabelOriginal = "ORIGINAL"
	LabelFiltered = "FILTERED"
)

type Pump struct {
	Source framesource.Source
	Sink   framesink.Sink
	Spec   *SpecHolder
	Config Config

	counters   types.Counters
	filterTime indicator.MovingAverage[time.Duration]
	now        func() time.Time
}

// filterTimeWindow is the number of frames the filter time is smoothed over.
const filterTimeWindow = 30

func New(
	source framesource.Source,
	sink framesink.Sink,
	spec *SpecHolder,
	cfg Config,
) *Pump {
	if spec == nil {
		spec = NewSpecHolder(nil)
	}
	return &Pump{
		Source: source,
		Sink:   sink,
		Spec:   spec,
		Config: cfg,

		filterTime: indicator.NewMAMADefault[time.Duration](filterTimeWindow),
		now:        time.Now,
	}
}

func (p *Pump) String() string {
	return fmt.Sprintf("Pump(%s)", p.Source)
}

func (p *Pump) GetStats() types.Statistics {
	return p.counters.ToStats()
}

// Serve runs until the source ends, Config.Frames frames are sent, ctx
// is cancelled or an error occurs. The end of the source is not an error.
func (p *Pump) Serve(
	ctx context.Context,
) (_err error) {
	logger.Debugf(ctx, "Serve[%s]", p)
	defer func() { logger.Debugf(ctx, "/Serve[%s]: %v", p, _err) }()

	interval := p.Config.MaxFPS.FrameInterval()
	var nextSlot time.Time
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.Config.Frames > 0 && p.counters.Sent.Count.Load() >= p.Config.Frames {
			return nil
		}

		buf, err := p.Source.Next(ctx)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		default:
			return fmt.Errorf("unable to get a frame from %s: %w", p.Source, err)
		}
		size := uint64(buf.Size())
		p.counters.Received.Increment(size)

		if interval > 0 {
			now := p.now()
			if now.Before(nextSlot) {
				logger.Tracef(ctx, "dropping %s, the next slot is in %v", buf, nextSlot.Sub(now))
				p.counters.Dropped.Increment(size)
				continue
			}
			nextSlot = nextSlot.Add(interval)
			if nextSlot.Before(now) {
				nextSlot = now.Add(interval)
			}
		}

		spec := p.Spec.Get(ctx)
		startedAt := time.Now()
		out, err := filter.Apply(ctx, buf, spec)
		p.counters.FilterTime.Store(p.filterTime.Update(time.Since(startedAt)))
		if err != nil {
			p.counters.Failed.Increment(size)
			return fmt.Errorf("unable to apply %s: %w", spec, err)
		}
		p.counters.Processed.Increment(size)

		if p.Config.SideBySide {
			out, err = pixbuf.SideBySide(buf, out, LabelOriginal, LabelFiltered)
			if err != nil {
				return fmt.Errorf("unable to compose the comparison view: %w", err)
			}
		}

		if err := p.Sink.Consume(ctx, out, spec); err != nil {
			return fmt.Errorf("unable to pass the frame to the sink: %w", err)
		}
		p.counters.Sent.Increment(uint64(out.Size()))
	}
}
