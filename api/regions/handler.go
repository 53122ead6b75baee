package regions

import (
	"encoding/json"
	"net/http"

	"github.com/kilianp07/surgecast/core/fleet"
	"github.com/kilianp07/surgecast/core/pricing"
)

// NewRatesHandler returns an HTTP handler exposing the current per-region
// rates via GET /api/regions.
func NewRatesHandler(tracker *pricing.SupplyTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tracker.Snapshot()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// NewKPIHandler returns an HTTP handler exposing fleet-wide pricing
// statistics via GET /api/kpi.
func NewKPIHandler(tracker *pricing.SupplyTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tracker.KPI()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// NewAgentsHandler returns an HTTP handler exposing ledger entries via
// GET /api/agents. Results can be narrowed with region_id and status
// query parameters.
func NewAgentsHandler(store fleet.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		f := fleet.Filter{
			RegionID: r.URL.Query().Get("region_id"),
			Status:   r.URL.Query().Get("status"),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(store.List(f)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
