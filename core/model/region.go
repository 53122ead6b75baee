package model

// Region is a pricing zone served by a set of agents. The identifier is
// immutable and unique; BaseRate is set at bootstrap and Adjustment is
// mutated exclusively by the pricing sweep.
type Region struct {
	ID         string
	BaseRate   float64
	Adjustment float64
}

// NewRegion creates a region with a zero demand adjustment.
func NewRegion(id string, baseRate float64) *Region {
	return &Region{ID: id, BaseRate: baseRate}
}

// EffectiveRate returns the demand-adjusted rate for the region.
func (r *Region) EffectiveRate() float64 {
	return r.BaseRate * (1 + r.Adjustment)
}
