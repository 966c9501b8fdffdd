// statistics.go implements the frame counters reported by the frame pump.

package types

import (
	"time"

	"go.uber.org/atomic"
)

type StatisticsItem struct {
	Count uint64 `json:",omitempty"`
	Bytes uint64 `json:",omitempty"`
}

type Statistics struct {
	Received  StatisticsItem
	Dropped   StatisticsItem
	Processed StatisticsItem
	Failed    StatisticsItem
	Sent      StatisticsItem

	// FilterTime is the smoothed time spent filtering one frame.
	FilterTime time.Duration `json:",omitempty"`
}

type CountersItem struct {
	Count atomic.Uint64
	Bytes atomic.Uint64
}

func (c *CountersItem) Increment(msgSize uint64) {
	c.Count.Inc()
	c.Bytes.Add(msgSize)
}

func (c *CountersItem) ToStats() StatisticsItem {
	return StatisticsItem{
		Count: c.Count.Load(),
		Bytes: c.Bytes.Load(),
	}
}

// Counters is the concurrency-safe counterpart of Statistics.
type Counters struct {
	Received  CountersItem
	Dropped   CountersItem
	Processed CountersItem
	Failed    CountersItem
	Sent      CountersItem

	FilterTime atomic.Duration
}

func (c *Counters) ToStats() Statistics {
	return Statistics{
		Received:  c.Received.ToStats(),
		Dropped:   c.Dropped.ToStats(),
		Processed: c.Processed.ToStats(),
		Failed:    c.Failed.ToStats(),
		Sent:      c.Sent.ToStats(),

		FilterTime: c.FilterTime.Load(),
	}
}
