package model

import (
	"errors"
	"testing"
)

type capturingPublisher struct {
	events []ChangeEvent
	err    error
}

func (p *capturingPublisher) Publish(ev ChangeEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func TestSetStatusRejectsInvalidValue(t *testing.T) {
	pub := &capturingPublisher{}
	a := NewAgent("a1", NewRegion("downtown", 40))
	a.AttachDispatcher(pub)
	if err := a.SetStatus(Status(7)); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Fatalf("no event expected for rejected status, got %d", len(pub.events))
	}
	if a.Status() != StatusIdle {
		t.Fatalf("status must be unchanged, got %v", a.Status())
	}
}

func TestSetStatusWithoutDispatcher(t *testing.T) {
	a := NewAgent("a1", NewRegion("downtown", 40))
	if err := a.SetStatus(StatusBusy); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if a.Status() != StatusBusy {
		t.Fatalf("got %v", a.Status())
	}
}

func TestSetStatusEventPayload(t *testing.T) {
	pub := &capturingPublisher{}
	a := NewAgent("a1", NewRegion("downtown", 40))
	a.AttachDispatcher(pub)
	if err := a.SetStatus(StatusOnTheWay); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.Property != PropertyStatus {
		t.Errorf("property %q", ev.Property)
	}
	if ev.Old != int(StatusIdle) || ev.New != int(StatusOnTheWay) {
		t.Errorf("transition %d->%d", ev.Old, ev.New)
	}
	if ev.Attr(AttrRegionID) != "downtown" || ev.Attr(AttrAgentID) != "a1" {
		t.Errorf("attributes %v", ev.Attributes)
	}
}

// The field is assigned before the event is published, so a listener
// reading the agent directly observes the new value.
func TestSetStatusAssignsBeforePublish(t *testing.T) {
	a := NewAgent("a1", NewRegion("downtown", 40))
	seen := make(chan Status, 1)
	a.AttachDispatcher(publisherFunc(func(ChangeEvent) error {
		seen <- a.Status()
		return nil
	}))
	if err := a.SetStatus(StatusBusy); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if got := <-seen; got != StatusBusy {
		t.Fatalf("listener saw %v", got)
	}
}

func TestNotifyPolicy(t *testing.T) {
	pub := &capturingPublisher{}
	a := NewAgent("a1", NewRegion("downtown", 40))
	a.AttachDispatcher(pub)

	// default: same-value assignment still notifies
	if err := a.SetStatus(StatusIdle); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected same-value notification, got %d events", len(pub.events))
	}

	a.SetNotifyPolicy(NotifyOnChange)
	if err := a.SetStatus(StatusIdle); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected suppression, got %d events", len(pub.events))
	}
	if err := a.SetStatus(StatusBusy); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if len(pub.events) != 2 {
		t.Fatalf("expected real transition to notify, got %d events", len(pub.events))
	}
}

func TestSetStatusSurfacesListenerError(t *testing.T) {
	want := errors.New("listener broke")
	pub := &capturingPublisher{err: want}
	a := NewAgent("a1", NewRegion("downtown", 40))
	a.AttachDispatcher(pub)
	if err := a.SetStatus(StatusBusy); !errors.Is(err, want) {
		t.Fatalf("expected listener error, got %v", err)
	}
	// the assignment itself is not rolled back
	if a.Status() != StatusBusy {
		t.Fatalf("got %v", a.Status())
	}
}

type publisherFunc func(ChangeEvent) error

func (f publisherFunc) Publish(ev ChangeEvent) error { return f(ev) }
