// Package pricing implements the demand-based rate engine.
//
// A SupplyTracker subscribes to agent status events and keeps, per region,
// the count of idle agents. Each accepted transition triggers a full
// re-tiering sweep over all tracked regions:
//
//	supply <= 1  -> +50% (Very High Demand)
//	supply 2..3  -> +25% (High Demand)
//	supply >= 4  -> +0%  (Normal Demand)
//
// The sweep mutates Region.Adjustment in place and emits structured
// RegionRate records; formatting and export belong to the configured sink
// and event bus subscribers.
package pricing
