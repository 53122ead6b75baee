package model

import "fmt"

// NotifyPolicy controls whether a same-value status assignment still emits
// a change event.
type NotifyPolicy int

const (
	// NotifyAlways emits an event on every accepted SetStatus call, including
	// transitions where old and new status are equal.
	NotifyAlways NotifyPolicy = iota
	// NotifyOnChange suppresses events for same-value assignments.
	NotifyOnChange
)

// Agent is a mobile service agent assigned to one region. Status mutations
// go through SetStatus so validation and event publication cannot be
// bypassed by plain field assignment.
type Agent struct {
	ID     string
	Region *Region

	status     Status
	dispatcher Publisher
	policy     NotifyPolicy
}

// NewAgent creates an agent in the Idle status with no dispatcher attached.
func NewAgent(id string, region *Region) *Agent {
	return &Agent{ID: id, Region: region, status: StatusIdle}
}

// Status returns the agent's current status.
func (a *Agent) Status() Status { return a.status }

// AttachDispatcher sets the publisher notified on status mutations. The
// handle is non-owning; passing nil detaches the agent.
func (a *Agent) AttachDispatcher(p Publisher) { a.dispatcher = p }

// SetNotifyPolicy configures same-value transition handling. The default is
// NotifyAlways.
func (a *Agent) SetNotifyPolicy(p NotifyPolicy) { a.policy = p }

// SetStatus validates and assigns a new status, then publishes a change
// event describing the transition. With no dispatcher attached the
// assignment succeeds silently. A listener error surfaces to the caller;
// the assignment itself is not rolled back.
func (a *Agent) SetStatus(s Status) error {
	if !s.Valid() {
		return fmt.Errorf("agent %s: %w: %d", a.ID, ErrInvalidStatus, int(s))
	}
	old := a.status
	a.status = s
	if a.dispatcher == nil {
		return nil
	}
	if a.policy == NotifyOnChange && old == s {
		return nil
	}
	ev := ChangeEvent{
		Property: PropertyStatus,
		Old:      int(old),
		New:      int(s),
		Attributes: map[string]string{
			AttrRegionID: a.Region.ID,
			AttrAgentID:  a.ID,
		},
	}
	return a.dispatcher.Publish(ev)
}
