package config

import (
	"fmt"

	"github.com/kilianp07/surgecast/core/model"
)

// PricingConfig tunes the supply tracker behavior.
type PricingConfig struct {
	// NotifyPolicy selects same-value transition handling: "always" or
	// "on_change". The default matches the historical behavior of always
	// notifying.
	NotifyPolicy string `json:"notify_policy"`
}

// SetDefaults applies sane defaults.
func (c *PricingConfig) SetDefaults() {
	if c.NotifyPolicy == "" {
		c.NotifyPolicy = "always"
	}
}

// Validate checks the notify policy value.
func (c PricingConfig) Validate() error {
	switch c.NotifyPolicy {
	case "always", "on_change":
		return nil
	default:
		return fmt.Errorf("unknown notify policy %s", c.NotifyPolicy)
	}
}

// Policy returns the parsed notify policy.
func (c PricingConfig) Policy() model.NotifyPolicy {
	if c.NotifyPolicy == "on_change" {
		return model.NotifyOnChange
	}
	return model.NotifyAlways
}
