package config

import "fmt"

// RegionConfig declares one pricing zone.
type RegionConfig struct {
	ID       string  `json:"id"`
	BaseRate float64 `json:"base_rate"`
}

// AgentConfig declares agents assigned to a region. With Count > 1 the ID
// is used as a prefix and agent identifiers are generated at bootstrap.
type AgentConfig struct {
	ID     string `json:"id"`
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// FleetConfig describes the regions and agents built at bootstrap. All
// agents start Idle.
type FleetConfig struct {
	Regions []RegionConfig `json:"regions"`
	Agents  []AgentConfig  `json:"agents"`
}

// Validate checks region uniqueness and agent region references.
func (c FleetConfig) Validate() error {
	if len(c.Regions) == 0 {
		return fmt.Errorf("at least one region is required")
	}
	regions := make(map[string]struct{}, len(c.Regions))
	for _, r := range c.Regions {
		if r.ID == "" {
			return fmt.Errorf("region id is required")
		}
		if _, dup := regions[r.ID]; dup {
			return fmt.Errorf("duplicate region %s", r.ID)
		}
		if r.BaseRate <= 0 {
			return fmt.Errorf("region %s: base rate must be positive", r.ID)
		}
		regions[r.ID] = struct{}{}
	}
	for _, a := range c.Agents {
		if _, ok := regions[a.Region]; !ok {
			return fmt.Errorf("agent %s references unknown region %s", a.ID, a.Region)
		}
		if a.Count < 0 {
			return fmt.Errorf("agent %s: count must not be negative", a.ID)
		}
	}
	return nil
}
