package pricing

import "gonum.org/v1/gonum/stat"

// FleetKPI summarizes pricing pressure across all tracked regions.
type FleetKPI struct {
	Regions        int     `json:"regions"`
	MeanRate       float64 `json:"mean_effective_rate"`
	StdDevRate     float64 `json:"stddev_effective_rate"`
	MeanSupply     float64 `json:"mean_supply"`
	VeryHighDemand int     `json:"very_high_demand_regions"`
	HighDemand     int     `json:"high_demand_regions"`
	NormalDemand   int     `json:"normal_demand_regions"`
}

// KPI computes fleet-wide pricing statistics from the current snapshot.
func (t *SupplyTracker) KPI() FleetKPI {
	rates := t.Snapshot()
	kpi := FleetKPI{Regions: len(rates)}
	if len(rates) == 0 {
		return kpi
	}

	effective := make([]float64, 0, len(rates))
	supply := make([]float64, 0, len(rates))
	for _, r := range rates {
		effective = append(effective, r.EffectiveRate)
		supply = append(supply, float64(r.Supply))
		switch TierFor(r.Supply) {
		case TierVeryHigh:
			kpi.VeryHighDemand++
		case TierHigh:
			kpi.HighDemand++
		default:
			kpi.NormalDemand++
		}
	}
	kpi.MeanRate = stat.Mean(effective, nil)
	kpi.MeanSupply = stat.Mean(supply, nil)
	if len(effective) > 1 {
		kpi.StdDevRate = stat.StdDev(effective, nil)
	}
	return kpi
}
