package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/surgecast/app"
	"github.com/kilianp07/surgecast/config"
	"github.com/kilianp07/surgecast/core/model"
	"github.com/kilianp07/surgecast/infra/logger"
	"github.com/kilianp07/surgecast/pkg/export"
	"github.com/kilianp07/surgecast/simulator"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drive the fleet through a scenario and report the resulting rates",
	RunE:  runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("simulate").Errorf("service close: %v", err)
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := svc.Run(runCtx); err != nil {
			logger.New("simulate").Errorf("service run: %v", err)
		}
	}()

	steps := make([]simulator.Step, 0, len(cfg.Simulation.Steps))
	for _, s := range cfg.Simulation.Steps {
		status, err := model.ParseStatus(s.Status)
		if err != nil {
			return err
		}
		steps = append(steps, simulator.Step{AgentID: s.Agent, Status: status})
	}
	driver := simulator.New(svc.Agents, simulator.Config{
		Seed:     cfg.Simulation.Seed,
		Interval: time.Duration(cfg.Simulation.IntervalMS) * time.Millisecond,
		Steps:    steps,
	}, logger.New("simulator"))

	if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("simulation: %w", err)
	}
	return export.WriteCSV(os.Stdout, svc.Tracker.Snapshot())
}
