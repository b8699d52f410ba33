package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jolanka/booking-cli/internal/config"
	"github.com/jolanka/booking-cli/internal/extract"
	"github.com/jolanka/booking-cli/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "booking-cli",
	Short: "Booking form extraction tool",
	Long:  "Reads semi-structured booking form spreadsheets, extracts normalized order records, and writes order-details output files.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// extractOptions maps the extract config onto engine options, falling back
// to the engine defaults for unset values.
func extractOptions(c *config.Config) extract.Options {
	opts := extract.DefaultOptions()
	if c.Extract.Marker != "" {
		opts.Marker = c.Extract.Marker
	}
	if c.Extract.LookaheadRows > 0 {
		opts.LookaheadRows = c.Extract.LookaheadRows
	}
	if c.Extract.ColsBefore > 0 {
		opts.ColsBefore = c.Extract.ColsBefore
	}
	if c.Extract.ColsAfter > 0 {
		opts.ColsAfter = c.Extract.ColsAfter
	}
	if len(c.Extract.ValueOffsets) > 0 {
		opts.ValueOffsets = c.Extract.ValueOffsets
	}
	if c.Extract.LeadTimeDays > 0 {
		opts.LeadTimeDays = c.Extract.LeadTimeDays
	}
	return opts
}

// openStore opens the run-history store when one is configured. A nil
// store disables run recording.
func openStore() (store.Store, error) {
	if cfg.Store.Path == "" {
		return nil, nil
	}
	s, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
