package pricing

import "fmt"

// NegativeSupplyError reports an idle-agent count about to drop below zero.
// It indicates an inconsistent initial supply seed or a missed event
// upstream; the tracker surfaces it instead of clamping the count.
type NegativeSupplyError struct {
	RegionID string
	AgentID  string
}

func (e *NegativeSupplyError) Error() string {
	return fmt.Sprintf("supply for region %s already at zero (agent %s left idle)", e.RegionID, e.AgentID)
}
