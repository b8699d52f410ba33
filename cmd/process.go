package main

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jolanka/booking-cli/internal/export"
	"github.com/jolanka/booking-cli/internal/extract"
	"github.com/jolanka/booking-cli/internal/ingest"
	"github.com/jolanka/booking-cli/internal/store"
)

// processResult summarizes one workbook extraction.
type processResult struct {
	Forms int
	Lots  int
	Rows  []extract.OutputRow
}

// processWorkbook runs the full pipeline for one workbook: decode, extract,
// project. The run is recorded in the store when one is configured; store
// failures are logged but never fail the extraction itself.
func processWorkbook(ctx context.Context, path string, mode extract.Mode, opts extract.Options, sheet ingest.Options, st store.Store) (*processResult, error) {
	var runID string
	if st != nil {
		if run, err := st.CreateRun(ctx, path); err != nil {
			zap.L().Warn("process: create run failed", zap.Error(err))
		} else {
			runID = run.ID
		}
	}

	g, err := ingest.ReadWorkbook(path, sheet)
	if err != nil {
		recordFailure(ctx, st, runID, err)
		return nil, err
	}

	forms := extract.Aggregate(g, extract.NewExtractor(mode, opts), opts)
	rows := extract.Project(forms)

	lots := 0
	for _, f := range forms {
		lots += len(f.Lots)
	}

	if st != nil && runID != "" {
		if err := st.CompleteRun(ctx, runID, len(forms), lots, len(rows)); err != nil {
			zap.L().Warn("process: complete run failed", zap.Error(err))
		}
	}

	zap.L().Info("process: workbook extracted",
		zap.String("file", path),
		zap.Int("forms", len(forms)),
		zap.Int("lots", lots),
		zap.Int("rows", len(rows)),
	)

	return &processResult{Forms: len(forms), Lots: lots, Rows: rows}, nil
}

func recordFailure(ctx context.Context, st store.Store, runID string, cause error) {
	if st == nil || runID == "" {
		return
	}
	if err := st.FailRun(ctx, runID, cause.Error()); err != nil {
		zap.L().Warn("process: fail run failed", zap.Error(err))
	}
}

// writeOutputs serializes rows next to the source file in the configured
// formats. format is "xlsx", "csv", or "both".
func writeOutputs(rows []extract.OutputRow, srcPath, outDir, format string) ([]string, error) {
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))

	var written []string
	if format == "xlsx" || format == "both" {
		out := filepath.Join(outDir, "order_processing_"+base+".xlsx")
		if err := export.WriteOrderXLSX(rows, out); err != nil {
			return written, err
		}
		written = append(written, out)
	}
	if format == "csv" || format == "both" {
		out := filepath.Join(outDir, "order_processing_"+base+".csv")
		if err := export.WriteOrderCSV(rows, out); err != nil {
			return written, err
		}
		written = append(written, out)
	}
	return written, nil
}
