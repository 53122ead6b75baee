package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/kilianp07/surgecast/core/metrics"
)

func TestPromSink_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	now := time.Now()
	rec := coremetrics.StatusTransition{
		AgentID:  "a1",
		RegionID: "downtown",
		Old:      "idle",
		New:      "busy",
		Supply:   1,
		Time:     now,
	}
	if err := sink.RecordTransition(rec); err != nil {
		t.Fatalf("record transition: %v", err)
	}
	if err := sink.RecordRegionRates([]coremetrics.RegionRate{{
		RegionID:      "downtown",
		Tier:          "Very High Demand",
		Adjustment:    0.5,
		EffectiveRate: 60,
		Supply:        1,
		Time:          now,
	}}); err != nil {
		t.Fatalf("record rates: %v", err)
	}

	expected := `
# HELP agent_status_transitions_total Total number of accepted agent status transitions
# TYPE agent_status_transitions_total counter
agent_status_transitions_total{new="busy",old="idle",region_id="downtown"} 1
`
	if err := testutil.CollectAndCompare(sink.transitions, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if got := testutil.ToFloat64(sink.supply.WithLabelValues("downtown")); got != 1 {
		t.Errorf("supply gauge %v", got)
	}
	if got := testutil.ToFloat64(sink.rate.WithLabelValues("downtown")); got != 60 {
		t.Errorf("rate gauge %v", got)
	}
}

func TestPromSink_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second registration must reuse collectors: %v", err)
	}
}

func TestMultiSinkForwards(t *testing.T) {
	reg := prometheus.NewRegistry()
	prom, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	multi := NewMultiSink(coremetrics.NopSink{}, prom)
	if err := multi.RecordTransition(coremetrics.StatusTransition{RegionID: "downtown", Old: "idle", New: "busy"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := testutil.ToFloat64(prom.transitions.WithLabelValues("downtown", "idle", "busy")); got != 1 {
		t.Errorf("counter %v", got)
	}
}
