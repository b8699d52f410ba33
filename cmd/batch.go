package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jolanka/booking-cli/internal/extract"
	"github.com/jolanka/booking-cli/internal/ingest"
)

var (
	batchMode        string
	batchConcurrency int
	batchFormat      string
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Extract every booking form workbook in a directory",
	Long:  "Processes all .xlsx files in the directory concurrently. Each workbook's extraction is independent, so failures are reported per file without stopping the batch.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		if err := cfg.Validate("batch"); err != nil {
			return err
		}

		modeName := batchMode
		if modeName == "" {
			modeName = cfg.Extract.Mode
		}
		mode := extract.Mode(modeName)
		if mode != extract.ModeLabel && mode != extract.ModeFixed {
			return eris.Errorf("batch: unknown mode %q (want label or fixed)", modeName)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return eris.Wrap(err, "batch: read directory")
		}

		var files []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if strings.HasSuffix(strings.ToLower(name), ".xlsx") && !strings.HasPrefix(name, "order_processing_") {
				files = append(files, filepath.Join(dir, name))
			}
		}
		if len(files) == 0 {
			fmt.Println("No .xlsx workbooks found.")
			return nil
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		if st != nil {
			defer st.Close()
			if err := st.Migrate(cmd.Context()); err != nil {
				return err
			}
		}

		opts := extractOptions(cfg)
		format := batchFormat
		if format == "" {
			format = cfg.Output.Format
		}

		var processed, failed atomic.Int64

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(batchConcurrency)
		for _, file := range files {
			g.Go(func() error {
				result, err := processWorkbook(ctx, file, mode, opts, ingest.Options{}, st)
				if err != nil {
					failed.Add(1)
					zap.L().Error("batch: workbook failed",
						zap.String("file", file),
						zap.Error(err),
					)
					return nil // keep processing the rest of the batch
				}
				if len(result.Rows) > 0 {
					if _, err := writeOutputs(result.Rows, file, dir, format); err != nil {
						failed.Add(1)
						zap.L().Error("batch: write output failed",
							zap.String("file", file),
							zap.Error(err),
						)
						return nil
					}
				}
				processed.Add(1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Printf("Processed %d workbooks, %d failed.\n", processed.Load(), failed.Load())
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchMode, "mode", "", "extraction strategy: label or fixed (default: config extract.mode)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "max workbooks processed in parallel")
	batchCmd.Flags().StringVar(&batchFormat, "format", "", "output format: xlsx, csv, or both")
	rootCmd.AddCommand(batchCmd)
}
