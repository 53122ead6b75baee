package regions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/surgecast/core/dispatch"
	"github.com/kilianp07/surgecast/core/fleet"
	coremetrics "github.com/kilianp07/surgecast/core/metrics"
	"github.com/kilianp07/surgecast/core/model"
	"github.com/kilianp07/surgecast/core/pricing"
)

func newTracker(t *testing.T) (*pricing.SupplyTracker, *model.Region) {
	t.Helper()
	r := model.NewRegion("downtown", 40)
	tracker, err := pricing.NewSupplyTracker([]*model.Region{r}, map[string]int{"downtown": 1}, nil)
	require.NoError(t, err)
	return tracker, r
}

func TestRatesHandler(t *testing.T) {
	tracker, _ := newTracker(t)
	srv := httptest.NewServer(NewRatesHandler(tracker))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rates []coremetrics.RegionRate
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rates))
	require.Len(t, rates, 1)
	assert.Equal(t, "downtown", rates[0].RegionID)
	assert.Equal(t, "Very High Demand", rates[0].Tier)
	assert.Equal(t, 60.0, rates[0].EffectiveRate)
	assert.Equal(t, 1, rates[0].Supply)
}

func TestRatesHandlerMethodNotAllowed(t *testing.T) {
	tracker, _ := newTracker(t)
	srv := httptest.NewServer(NewRatesHandler(tracker))
	defer srv.Close()

	resp, err := http.Post(srv.URL, "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestKPIHandler(t *testing.T) {
	tracker, _ := newTracker(t)
	srv := httptest.NewServer(NewKPIHandler(tracker))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var kpi pricing.FleetKPI
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&kpi))
	assert.Equal(t, 1, kpi.Regions)
	assert.Equal(t, 1, kpi.VeryHighDemand)
	assert.Equal(t, 60.0, kpi.MeanRate)
}

func TestAgentsHandler(t *testing.T) {
	r := model.NewRegion("downtown", 40)
	agent := model.NewAgent("a1", r)
	ledger := fleet.NewLedger(nil)
	d := dispatch.New()
	d.Subscribe(ledger)
	agent.AttachDispatcher(d)
	require.NoError(t, agent.SetStatus(model.StatusBusy))

	srv := httptest.NewServer(NewAgentsHandler(ledger.Store()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "?region_id=downtown")
	require.NoError(t, err)
	defer resp.Body.Close()

	var entries []fleet.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a1", entries[0].AgentID)
	assert.Equal(t, "busy", entries[0].Status)

	resp2, err := http.Get(srv.URL + "?status=idle")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var empty []fleet.Entry
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&empty))
	assert.Empty(t, empty)
}
