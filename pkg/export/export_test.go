package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kilianp07/surgecast/core/metrics"
)

func sample() []metrics.RegionRate {
	return []metrics.RegionRate{{
		RegionID:      "downtown",
		Tier:          "Very High Demand",
		Adjustment:    0.5,
		EffectiveRate: 60,
		Supply:        1,
		Time:          time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "region_id,tier,adjustment,effective_rate,supply,time" {
		t.Fatalf("header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "downtown,Very High Demand,0.5,60,1,") {
		t.Fatalf("row %q", lines[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"RegionID":"downtown"`) {
		t.Fatalf("json %q", out)
	}
}
