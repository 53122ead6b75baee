// Package events defines the pricing related events emitted on the event bus.
//
// Available event types:
//   - TransitionEvent: accepted agent status transition
//   - RateEvent: per-region rates after a pricing sweep
package events
