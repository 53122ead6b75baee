package metrics

import coremetrics "github.com/kilianp07/surgecast/core/metrics"

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.PricingSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.PricingSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordTransition forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordTransition(rec coremetrics.StatusTransition) error {
	for _, s := range m.Sinks {
		if err := s.RecordTransition(rec); err != nil {
			return err
		}
	}
	return nil
}

// RecordRegionRates forwards the sweep result to all sinks.
func (m *MultiSink) RecordRegionRates(rates []coremetrics.RegionRate) error {
	for _, s := range m.Sinks {
		if err := s.RecordRegionRates(rates); err != nil {
			return err
		}
	}
	return nil
}
