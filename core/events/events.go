package events

import "github.com/kilianp07/surgecast/core/metrics"

// Event is the union of values carried on the pricing event bus.
type Event interface {
	pricingEvent()
}

// TransitionEvent is published for each accepted status transition.
type TransitionEvent struct {
	Transition metrics.StatusTransition
}

func (TransitionEvent) pricingEvent() {}

// RateEvent is published after each pricing sweep with the rates of all
// tracked regions.
type RateEvent struct {
	Rates []metrics.RegionRate
}

func (RateEvent) pricingEvent() {}
