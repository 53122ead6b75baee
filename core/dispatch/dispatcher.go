package dispatch

import (
	"fmt"
	"sync"

	"github.com/kilianp07/surgecast/core/model"
)

// Listener receives change events it has declared interest in.
type Listener interface {
	// Interests returns the property names the listener wants to observe.
	Interests() []string
	// Notify delivers one event. A returned error aborts the remaining
	// fan-out for that event.
	Notify(ev model.ChangeEvent) error
}

// Dispatcher routes agent change events to subscribed listeners in
// subscription order. It owns neither agents nor listeners.
type Dispatcher struct {
	mu        sync.Mutex
	listeners []Listener
}

// New creates an empty dispatcher.
func New() *Dispatcher { return &Dispatcher{} }

// Subscribe appends the listener to the fan-out list. Duplicate
// subscriptions are permitted and deliver the event once per occurrence.
func (d *Dispatcher) Subscribe(l Listener) {
	d.mu.Lock()
	d.listeners = append(d.listeners, l)
	d.mu.Unlock()
}

// Unsubscribe removes every occurrence of the listener, comparing by
// identity. Unknown listeners are a no-op.
func (d *Dispatcher) Unsubscribe(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.listeners[:0]
	for _, sub := range d.listeners {
		if sub != l {
			kept = append(kept, sub)
		}
	}
	d.listeners = kept
}

// Publish delivers the event synchronously to every listener whose interest
// set contains the event's property, in current subscription order. The
// fan-out together with each listener's state update forms one critical
// section, so concurrent publishers cannot interleave supply mutations.
// The first listener error halts delivery to the remaining listeners and is
// returned to the publisher.
func (d *Dispatcher) Publish(ev model.ChangeEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, l := range d.listeners {
		if !interested(l, ev.Property) {
			continue
		}
		if err := l.Notify(ev); err != nil {
			return fmt.Errorf("listener notify %s: %w", ev.Property, err)
		}
	}
	return nil
}

func interested(l Listener, property string) bool {
	for _, p := range l.Interests() {
		if p == property {
			return true
		}
	}
	return false
}
