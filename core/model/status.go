package model

import (
	"errors"
	"fmt"
	"strings"
)

// Status defines what a service agent is currently doing.
type Status int

const (
	StatusIdle Status = iota
	StatusOnTheWay
	StatusBusy
)

// ErrInvalidStatus is returned when a status value outside the enumeration
// is assigned to an agent.
var ErrInvalidStatus = errors.New("invalid agent status")

// Valid reports whether s is a defined status value.
func (s Status) Valid() bool {
	return s >= StatusIdle && s <= StatusBusy
}

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusOnTheWay:
		return "on_the_way"
	case StatusBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// ParseStatus converts a configuration string into a Status.
func ParseStatus(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "idle":
		return StatusIdle, nil
	case "on_the_way", "ontheway", "en_route":
		return StatusOnTheWay, nil
	case "busy":
		return StatusBusy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}
}
