package pricing

// Tier is a demand level derived from a region's idle-agent supply.
type Tier int

const (
	TierNormal Tier = iota
	TierHigh
	TierVeryHigh
)

// String returns a human-readable representation of the tier.
func (t Tier) String() string {
	switch t {
	case TierVeryHigh:
		return "Very High Demand"
	case TierHigh:
		return "High Demand"
	case TierNormal:
		return "Normal Demand"
	default:
		return "unknown"
	}
}

// Adjustment returns the rate adjustment applied for the tier.
func (t Tier) Adjustment() float64 {
	switch t {
	case TierVeryHigh:
		return 0.50
	case TierHigh:
		return 0.25
	default:
		return 0
	}
}

// TierFor maps an idle-agent count to its demand tier. The mapping is a
// pure function of the count, so re-applying it with an unchanged supply
// is idempotent.
func TierFor(supply int) Tier {
	switch {
	case supply <= 1:
		return TierVeryHigh
	case supply <= 3:
		return TierHigh
	default:
		return TierNormal
	}
}
