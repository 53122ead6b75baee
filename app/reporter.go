package app

import (
	"context"

	"github.com/kilianp07/surgecast/core/events"
)

// reportLoop renders pricing events as log lines. The core only emits
// structured values; turning them into human-readable output happens here.
func (s *Service) reportLoop(ctx context.Context, ch <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case events.TransitionEvent:
				t := e.Transition
				s.log.Infow("agent status changed", map[string]any{
					"agent_id":  t.AgentID,
					"region_id": t.RegionID,
					"from":      t.Old,
					"to":        t.New,
					"supply":    t.Supply,
				})
			case events.RateEvent:
				for _, r := range e.Rates {
					s.log.Infow("region rate", map[string]any{
						"tier":           r.Tier,
						"region_id":      r.RegionID,
						"effective_rate": r.EffectiveRate,
						"supply":         r.Supply,
					})
				}
			}
		}
	}
}
