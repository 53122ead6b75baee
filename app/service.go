package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/surgecast/api/regions"
	"github.com/kilianp07/surgecast/config"
	"github.com/kilianp07/surgecast/core/dispatch"
	"github.com/kilianp07/surgecast/core/events"
	"github.com/kilianp07/surgecast/core/fleet"
	coremetrics "github.com/kilianp07/surgecast/core/metrics"
	"github.com/kilianp07/surgecast/core/model"
	"github.com/kilianp07/surgecast/core/pricing"
	"github.com/kilianp07/surgecast/infra/logger"
	"github.com/kilianp07/surgecast/infra/metrics"
	"github.com/kilianp07/surgecast/internal/eventbus"
)

// Service wires the pricing engine from configuration: regions, agents,
// dispatcher, supply tracker, fleet ledger, sinks and servers.
type Service struct {
	Tracker    *pricing.SupplyTracker
	Ledger     *fleet.Ledger
	Dispatcher *dispatch.Dispatcher
	Agents     []*model.Agent
	Regions    []*model.Region

	bus *eventbus.TypedBus[events.Event]
	cfg *config.Config
	log logger.Logger
}

// New creates a Service from the configuration. Agents start Idle; the
// initial supply seed is taken by counting idle agents per region before
// the dispatcher is attached.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	byID := make(map[string]*model.Region, len(cfg.Fleet.Regions))
	regionList := make([]*model.Region, 0, len(cfg.Fleet.Regions))
	for _, rc := range cfg.Fleet.Regions {
		r := model.NewRegion(rc.ID, rc.BaseRate)
		byID[r.ID] = r
		regionList = append(regionList, r)
	}

	policy := cfg.Pricing.Policy()
	var agents []*model.Agent
	for _, ac := range cfg.Fleet.Agents {
		count := ac.Count
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			id := ac.ID
			if id == "" {
				id = uuid.NewString()
			} else if count > 1 {
				id = fmt.Sprintf("%s-%d", ac.ID, i+1)
			}
			a := model.NewAgent(id, byID[ac.Region])
			a.SetNotifyPolicy(policy)
			agents = append(agents, a)
		}
	}

	seed := make(map[string]int, len(regionList))
	for _, a := range agents {
		if a.Status() == model.StatusIdle {
			seed[a.Region.ID]++
		}
	}

	tracker, err := pricing.NewSupplyTracker(regionList, seed, logger.New("pricing"))
	if err != nil {
		return nil, fmt.Errorf("supply tracker: %w", err)
	}

	var sinks []coremetrics.PricingSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	if len(sinks) == 1 {
		tracker.SetSink(sinks[0])
	} else if len(sinks) > 1 {
		tracker.SetSink(metrics.NewMultiSink(sinks...))
	}

	bus := eventbus.New[events.Event]()
	tracker.SetBus(bus)

	ledger := fleet.NewLedger(nil)

	d := dispatch.New()
	d.Subscribe(tracker)
	d.Subscribe(ledger)
	for _, a := range agents {
		a.AttachDispatcher(d)
	}

	return &Service{
		Tracker:    tracker,
		Ledger:     ledger,
		Dispatcher: d,
		Agents:     agents,
		Regions:    regionList,
		bus:        bus,
		cfg:        cfg,
		log:        logg,
	}, nil
}

// Run starts the reporter and the configured servers, then blocks until the
// context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.reportLoop(ctx, s.bus.Subscribe())
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.cfg.API.Enabled {
		go func() {
			if err := s.startAPIServer(ctx); err != nil {
				s.log.Errorf("api server: %v", err)
			}
		}()
	}
	<-ctx.Done()
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}

func (s *Service) startAPIServer(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/api/regions", regions.NewRatesHandler(s.Tracker))
	mux.Handle("/api/kpi", regions.NewKPIHandler(s.Tracker))
	mux.Handle("/api/agents", regions.NewAgentsHandler(s.Ledger.Store()))
	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api server shutdown: %v", err)
		}
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
