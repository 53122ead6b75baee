// Package simulator drives agent status mutations against the pricing
// engine, either from a scripted scenario or as a seeded random walk.
package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/kilianp07/surgecast/core/logger"
	"github.com/kilianp07/surgecast/core/model"
)

// Step is one scripted status transition.
type Step struct {
	AgentID string
	Status  model.Status
}

// Config tunes the driver.
type Config struct {
	// Seed initializes the random walk. Zero falls back to the wall clock.
	Seed int64
	// Interval is the pause between transitions.
	Interval time.Duration
	// Steps, when non-empty, are replayed in order instead of the random
	// walk.
	Steps []Step
}

// Driver mutates agent statuses over time. Every transition goes through
// Agent.SetStatus, so the dispatcher fan-out and pricing sweep run inline.
type Driver struct {
	agents map[string]*model.Agent
	order  []*model.Agent
	cfg    Config
	rng    *rand.Rand
	log    logger.Logger
}

// New creates a driver over the given agents.
func New(agents []*model.Agent, cfg Config, log logger.Logger) *Driver {
	if log == nil {
		log = logger.Nop{}
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 500 * time.Millisecond
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	byID := make(map[string]*model.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}
	return &Driver{
		agents: byID,
		order:  agents,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		log:    log,
	}
}

// Run executes the scenario until it completes or the context is canceled.
// The random walk runs until cancellation.
func (d *Driver) Run(ctx context.Context) error {
	if len(d.cfg.Steps) > 0 {
		return d.runScripted(ctx)
	}
	return d.runRandom(ctx)
}

func (d *Driver) runScripted(ctx context.Context) error {
	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()
	for i, step := range d.cfg.Steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		agent, ok := d.agents[step.AgentID]
		if !ok {
			return fmt.Errorf("step %d: unknown agent %s", i, step.AgentID)
		}
		if err := agent.SetStatus(step.Status); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		d.log.Debugf("step %d: agent %s -> %s", i, agent.ID, step.Status)
	}
	return nil
}

func (d *Driver) runRandom(ctx context.Context) error {
	if len(d.order) == 0 {
		return fmt.Errorf("no agents to simulate")
	}
	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		agent := d.order[d.rng.Intn(len(d.order))]
		next := d.nextStatus(agent.Status())
		if err := agent.SetStatus(next); err != nil {
			return err
		}
		d.log.Debugf("agent %s -> %s", agent.ID, next)
	}
}

// nextStatus walks the service lifecycle: idle agents get dispatched,
// dispatched agents start a job, busy agents mostly finish it.
func (d *Driver) nextStatus(current model.Status) model.Status {
	switch current {
	case model.StatusIdle:
		return model.StatusOnTheWay
	case model.StatusOnTheWay:
		return model.StatusBusy
	default:
		if d.rng.Float64() < 0.8 {
			return model.StatusIdle
		}
		return model.StatusBusy
	}
}
