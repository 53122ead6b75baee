package model

// Property and attribute names carried on change events.
const (
	PropertyStatus = "Status"

	AttrRegionID = "region_id"
	AttrAgentID  = "agent_id"
)

// ChangeEvent describes a single observed property mutation on an agent.
// It is built at the moment of the mutation, consumed synchronously by the
// dispatcher fan-out and then discarded; listeners must rely on the event
// payload rather than reading the agent back.
type ChangeEvent struct {
	Property   string
	Old        int
	New        int
	Attributes map[string]string
}

// Attr returns the named attribute or the empty string.
func (e ChangeEvent) Attr(key string) string {
	if e.Attributes == nil {
		return ""
	}
	return e.Attributes[key]
}

// Publisher routes change events to interested listeners. Agents hold a
// non-owning handle to one; the publisher has no knowledge of the agents
// feeding it.
type Publisher interface {
	Publish(ev ChangeEvent) error
}
