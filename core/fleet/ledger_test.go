package fleet

import (
	"testing"

	"github.com/kilianp07/surgecast/core/dispatch"
	"github.com/kilianp07/surgecast/core/model"
)

func TestLedgerRecordsTransitions(t *testing.T) {
	l := NewLedger(nil)
	r := model.NewRegion("downtown", 40)
	agent := model.NewAgent("a1", r)
	d := dispatch.New()
	d.Subscribe(l)
	agent.AttachDispatcher(d)

	if err := agent.SetStatus(model.StatusOnTheWay); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := agent.SetStatus(model.StatusBusy); err != nil {
		t.Fatalf("set status: %v", err)
	}

	e, ok := l.Store().Get("a1")
	if !ok {
		t.Fatalf("missing entry")
	}
	if e.Status != "busy" || e.Previous != "on_the_way" {
		t.Fatalf("entry %#v", e)
	}
	if e.RegionID != "downtown" {
		t.Fatalf("region %q", e.RegionID)
	}
	if e.Transitions != 2 {
		t.Fatalf("transitions %d", e.Transitions)
	}
	if e.UpdatedAt.IsZero() {
		t.Fatalf("updated_at not set")
	}
}

func TestLedgerIgnoresEventsWithoutAgentID(t *testing.T) {
	l := NewLedger(nil)
	ev := model.ChangeEvent{Property: model.PropertyStatus, Old: 0, New: 2}
	if err := l.Notify(ev); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if out := l.Store().List(Filter{}); len(out) != 0 {
		t.Fatalf("expected empty store, got %#v", out)
	}
}
