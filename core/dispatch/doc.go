// Package dispatch implements the synchronous observer at the heart of the
// pricing engine.
//
// Agents publish ChangeEvent values on status mutation; the Dispatcher fans
// each event out to every subscribed Listener whose interest set contains
// the changed property, in subscription order, on the calling goroutine.
// There is no buffering and no retry. A listener error aborts the remaining
// fan-out for that event and propagates to the publisher.
//
// Listeners are decoupled behind the Listener interface; the pricing
// tracker and the fleet ledger are the two built-in variants.
package dispatch
