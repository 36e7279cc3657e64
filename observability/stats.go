// Package observability aggregates live-delivery counters for the stats
// endpoint and the periodic telemetry report.
package observability

import "sync/atomic"

// DeliveryStats counts delivery outcomes since process start.
// All fields are atomics; the struct is safe for concurrent use.
type DeliveryStats struct {
	sent          atomic.Uint64
	delivered     atomic.Uint64
	read          atomic.Uint64
	droppedPushes atomic.Uint64
	online        atomic.Int64
}

func NewDeliveryStats() *DeliveryStats {
	return &DeliveryStats{}
}

func (s *DeliveryStats) MessageSent()      { s.sent.Add(1) }
func (s *DeliveryStats) MessageDelivered() { s.delivered.Add(1) }
func (s *DeliveryStats) MessagesRead(n int) {
	if n > 0 {
		s.read.Add(uint64(n))
	}
}
func (s *DeliveryStats) PushDropped() { s.droppedPushes.Add(1) }

func (s *DeliveryStats) ConnectionOpened() { s.online.Add(1) }
func (s *DeliveryStats) ConnectionClosed() { s.online.Add(-1) }

// Snapshot is the JSON shape served by /api/stats.
type Snapshot struct {
	Sent          uint64 `json:"sent"`
	Delivered     uint64 `json:"delivered"`
	Read          uint64 `json:"read"`
	DroppedPushes uint64 `json:"droppedPushes"`
	Online        int64  `json:"online"`
}

func (s *DeliveryStats) Snapshot() Snapshot {
	return Snapshot{
		Sent:          s.sent.Load(),
		Delivered:     s.delivered.Load(),
		Read:          s.read.Load(),
		DroppedPushes: s.droppedPushes.Load(),
		Online:        s.online.Load(),
	}
}
