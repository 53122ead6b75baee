package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/surgecast/app"
	"github.com/kilianp07/surgecast/config"
	"github.com/kilianp07/surgecast/pkg/export"
)

var ratesFormat string

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the bootstrap rate table for the configured fleet",
	RunE:  runRates,
}

func init() {
	ratesCmd.Flags().StringVarP(&ratesFormat, "format", "f", "csv", "output format: csv or json")
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close() //nolint:errcheck

	switch ratesFormat {
	case "json":
		return export.WriteJSON(os.Stdout, svc.Tracker.Snapshot())
	case "csv":
		return export.WriteCSV(os.Stdout, svc.Tracker.Snapshot())
	default:
		return fmt.Errorf("unknown format %s", ratesFormat)
	}
}
