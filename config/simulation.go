package config

import (
	"fmt"

	"github.com/kilianp07/surgecast/core/model"
)

// StepConfig is one scripted status transition.
type StepConfig struct {
	Agent  string `json:"agent"`
	Status string `json:"status"`
}

// SimulationConfig drives the fleet simulator. With scripted steps the
// simulator replays them in order; otherwise it performs a seeded random
// status walk over the fleet.
type SimulationConfig struct {
	Seed       int64        `json:"seed"`
	IntervalMS int          `json:"interval_ms"`
	Steps      []StepConfig `json:"steps"`
}

// SetDefaults applies sane defaults.
func (c *SimulationConfig) SetDefaults() {
	if c.IntervalMS <= 0 {
		c.IntervalMS = 500
	}
}

// Validate checks scripted steps parse into valid statuses.
func (c SimulationConfig) Validate() error {
	for i, step := range c.Steps {
		if step.Agent == "" {
			return fmt.Errorf("step %d: agent is required", i)
		}
		if _, err := model.ParseStatus(step.Status); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
