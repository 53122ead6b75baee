package fleet

import (
	"time"

	"github.com/kilianp07/surgecast/core/model"
)

// Ledger records per-agent status transitions observed on the dispatcher.
// It is a second Listener variant alongside the supply tracker and backs
// the fleet status API.
type Ledger struct {
	store Store
	now   func() time.Time
}

// NewLedger creates a ledger writing to the given store. A nil store gets
// a fresh MemoryStore.
func NewLedger(store Store) *Ledger {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Ledger{store: store, now: time.Now}
}

// Store returns the backing store for queries.
func (l *Ledger) Store() Store { return l.store }

// Interests declares the properties the ledger observes.
func (l *Ledger) Interests() []string { return []string{model.PropertyStatus} }

// Notify updates the agent's entry from the event payload.
func (l *Ledger) Notify(ev model.ChangeEvent) error {
	agentID := ev.Attr(model.AttrAgentID)
	if agentID == "" {
		return nil
	}
	e, _ := l.store.Get(agentID)
	e.AgentID = agentID
	e.RegionID = ev.Attr(model.AttrRegionID)
	e.Previous = model.Status(ev.Old).String()
	e.Status = model.Status(ev.New).String()
	e.Transitions++
	e.UpdatedAt = l.now()
	l.store.Set(e)
	return nil
}
