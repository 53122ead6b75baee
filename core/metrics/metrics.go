package metrics

import "time"

// StatusTransition represents one accepted agent status change as seen by
// the supply tracker.
type StatusTransition struct {
	AgentID  string
	RegionID string
	Old      string
	New      string
	// Supply is the region's idle-agent count after applying the transition.
	Supply int
	Time   time.Time
}

// RegionRate is the outcome of the pricing sweep for one region.
type RegionRate struct {
	RegionID      string
	Tier          string
	Adjustment    float64
	EffectiveRate float64
	Supply        int
	Time          time.Time
}

// PricingSink records pricing engine activity for observability purposes.
// The core hands over structured values; rendering and export are the
// sink's concern.
type PricingSink interface {
	RecordTransition(rec StatusTransition) error
	RecordRegionRates(rates []RegionRate) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordTransition(StatusTransition) error { return nil }
func (NopSink) RecordRegionRates([]RegionRate) error    { return nil }
