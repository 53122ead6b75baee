package metrics

import (
	coremetrics "github.com/kilianp07/surgecast/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink exports pricing engine activity as Prometheus metrics.
type PromSink struct {
	transitions *prometheus.CounterVec
	supply      *prometheus.GaugeVec
	adjustment  *prometheus.GaugeVec
	rate        *prometheus.GaugeVec
}

// NewPromSink registers pricing metrics on the default Prometheus
// registerer. The metrics server should be started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_status_transitions_total",
		Help: "Total number of accepted agent status transitions",
	}, []string{"region_id", "old", "new"})
	supply := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "region_idle_agents",
		Help: "Number of idle agents per region",
	}, []string{"region_id"})
	adjustment := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "region_demand_adjustment",
		Help: "Demand adjustment applied to the region base rate",
	}, []string{"region_id", "tier"})
	rate := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "region_effective_rate",
		Help: "Demand-adjusted rate per region",
	}, []string{"region_id"})

	if err := reg.Register(transitions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			transitions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(supply); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			supply = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(adjustment); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			adjustment = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(rate); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			rate = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{transitions: transitions, supply: supply, adjustment: adjustment, rate: rate}, nil
}

// RecordTransition increments the transition counter.
func (s *PromSink) RecordTransition(rec coremetrics.StatusTransition) error {
	s.transitions.WithLabelValues(rec.RegionID, rec.Old, rec.New).Inc()
	return nil
}

// RecordRegionRates updates the per-region gauges from a sweep result.
func (s *PromSink) RecordRegionRates(rates []coremetrics.RegionRate) error {
	for _, r := range rates {
		s.supply.WithLabelValues(r.RegionID).Set(float64(r.Supply))
		s.adjustment.WithLabelValues(r.RegionID, r.Tier).Set(r.Adjustment)
		s.rate.WithLabelValues(r.RegionID).Set(r.EffectiveRate)
	}
	return nil
}
