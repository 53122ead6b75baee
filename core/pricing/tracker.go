package pricing

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kilianp07/surgecast/core/events"
	"github.com/kilianp07/surgecast/core/logger"
	"github.com/kilianp07/surgecast/core/metrics"
	"github.com/kilianp07/surgecast/core/model"
	"github.com/kilianp07/surgecast/internal/eventbus"
)

// SupplyTracker maintains a per-region count of idle agents and recomputes
// every region's demand adjustment whenever a count changes. It implements
// the dispatch Listener interface and is the sole mutator of
// Region.Adjustment.
//
// The count is maintained incrementally from status transitions; only
// transitions into or out of Idle move it. After every supply mutation the
// tracker re-tiers all tracked regions, not just the changed one, which
// keeps the rate computation idempotent and independent of event order.
type SupplyTracker struct {
	mu        sync.Mutex
	interests []string
	regions   map[string]*model.Region
	supply    map[string]int
	sink      metrics.PricingSink
	bus       *eventbus.TypedBus[events.Event]
	log       logger.Logger
	now       func() time.Time
}

// NewSupplyTracker creates a tracker over the given regions with an initial
// supply seed. The seed must cover exactly the tracked regions with
// non-negative counts; the caller obtains it by counting idle agents per
// region before any dispatcher is attached.
func NewSupplyTracker(regions []*model.Region, initial map[string]int, log logger.Logger) (*SupplyTracker, error) {
	if log == nil {
		log = logger.Nop{}
	}
	t := &SupplyTracker{
		interests: []string{model.PropertyStatus},
		regions:   make(map[string]*model.Region, len(regions)),
		supply:    make(map[string]int, len(regions)),
		sink:      metrics.NopSink{},
		log:       log,
		now:       time.Now,
	}
	for _, r := range regions {
		if _, dup := t.regions[r.ID]; dup {
			return nil, fmt.Errorf("duplicate region %s", r.ID)
		}
		t.regions[r.ID] = r
	}
	for id, count := range initial {
		if _, ok := t.regions[id]; !ok {
			return nil, fmt.Errorf("supply seed references unknown region %s", id)
		}
		if count < 0 {
			return nil, fmt.Errorf("negative supply seed %d for region %s", count, id)
		}
		t.supply[id] = count
	}
	for id := range t.regions {
		if _, ok := t.supply[id]; !ok {
			t.supply[id] = 0
		}
	}
	t.sweep(t.now())
	return t, nil
}

// SetSink configures the sink receiving transition and rate records.
func (t *SupplyTracker) SetSink(sink metrics.PricingSink) {
	t.mu.Lock()
	if sink == nil {
		sink = metrics.NopSink{}
	}
	t.sink = sink
	t.mu.Unlock()
}

// SetBus configures the event bus on which transition and rate events are
// published for out-of-core collaborators.
func (t *SupplyTracker) SetBus(bus *eventbus.TypedBus[events.Event]) {
	t.mu.Lock()
	t.bus = bus
	t.mu.Unlock()
}

// Interests declares the properties the tracker observes.
func (t *SupplyTracker) Interests() []string { return t.interests }

// Notify applies one status transition to the supply count for the event's
// region, then re-tiers all tracked regions. Events for regions the tracker
// does not manage are ignored. A decrement below zero returns a
// NegativeSupplyError and leaves the count untouched.
func (t *SupplyTracker) Notify(ev model.ChangeEvent) error {
	if !t.observes(ev.Property) {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	regionID := ev.Attr(model.AttrRegionID)
	region, ok := t.regions[regionID]
	if !ok {
		t.log.Debugf("ignoring event for unmanaged region %q", regionID)
		return nil
	}

	old, next := model.Status(ev.Old), model.Status(ev.New)
	switch {
	case old != model.StatusIdle && next == model.StatusIdle:
		t.supply[region.ID]++
	case old == model.StatusIdle && next != model.StatusIdle:
		if t.supply[region.ID] == 0 {
			return &NegativeSupplyError{RegionID: region.ID, AgentID: ev.Attr(model.AttrAgentID)}
		}
		t.supply[region.ID]--
	}

	now := t.now()
	rec := metrics.StatusTransition{
		AgentID:  ev.Attr(model.AttrAgentID),
		RegionID: region.ID,
		Old:      old.String(),
		New:      next.String(),
		Supply:   t.supply[region.ID],
		Time:     now,
	}
	rates := t.sweep(now)

	if err := t.sink.RecordTransition(rec); err != nil {
		t.log.Errorf("record transition: %v", err)
	}
	if err := t.sink.RecordRegionRates(rates); err != nil {
		t.log.Errorf("record region rates: %v", err)
	}
	if t.bus != nil {
		t.bus.Publish(events.TransitionEvent{Transition: rec})
		t.bus.Publish(events.RateEvent{Rates: rates})
	}
	return nil
}

// sweep re-tiers every tracked region from its current supply and returns
// the resulting rate records in region ID order. Callers hold t.mu.
func (t *SupplyTracker) sweep(now time.Time) []metrics.RegionRate {
	ids := make([]string, 0, len(t.regions))
	for id := range t.regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rates := make([]metrics.RegionRate, 0, len(ids))
	for _, id := range ids {
		region := t.regions[id]
		supply := t.supply[id]
		tier := TierFor(supply)
		region.Adjustment = tier.Adjustment()
		rates = append(rates, metrics.RegionRate{
			RegionID:      id,
			Tier:          tier.String(),
			Adjustment:    region.Adjustment,
			EffectiveRate: region.EffectiveRate(),
			Supply:        supply,
			Time:          now,
		})
	}
	return rates
}

// Supply returns the current idle-agent count for a region.
func (t *SupplyTracker) Supply(regionID string) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	count, ok := t.supply[regionID]
	return count, ok
}

// Snapshot returns the current rate records for all tracked regions without
// mutating any state.
func (t *SupplyTracker) Snapshot() []metrics.RegionRate {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]string, 0, len(t.regions))
	for id := range t.regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	now := t.now()
	rates := make([]metrics.RegionRate, 0, len(ids))
	for _, id := range ids {
		region := t.regions[id]
		supply := t.supply[id]
		tier := TierFor(supply)
		rates = append(rates, metrics.RegionRate{
			RegionID:      id,
			Tier:          tier.String(),
			Adjustment:    region.Adjustment,
			EffectiveRate: region.EffectiveRate(),
			Supply:        supply,
			Time:          now,
		})
	}
	return rates
}

func (t *SupplyTracker) observes(property string) bool {
	for _, p := range t.interests {
		if p == property {
			return true
		}
	}
	return false
}
