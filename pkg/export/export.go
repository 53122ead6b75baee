// Package export renders region rate snapshots for external consumers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/kilianp07/surgecast/core/metrics"
)

// WriteJSON writes the rate snapshot to w in JSON format.
func WriteJSON(w io.Writer, rates []metrics.RegionRate) error {
	enc := json.NewEncoder(w)
	return enc.Encode(rates)
}

// WriteCSV writes the rate snapshot to w in CSV format.
func WriteCSV(w io.Writer, rates []metrics.RegionRate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"region_id", "tier", "adjustment", "effective_rate", "supply", "time"}); err != nil {
		return err
	}
	for _, r := range rates {
		rec := []string{
			r.RegionID,
			r.Tier,
			strconv.FormatFloat(r.Adjustment, 'f', -1, 64),
			strconv.FormatFloat(r.EffectiveRate, 'f', -1, 64),
			strconv.Itoa(r.Supply),
			r.Time.Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
