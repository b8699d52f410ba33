package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jolanka/booking-cli/internal/extract"
	"github.com/jolanka/booking-cli/internal/ingest"
	"github.com/jolanka/booking-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an HTTP server accepting workbook uploads",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := openStore()
		if err != nil {
			return err
		}
		if st != nil {
			defer st.Close()
			if err := st.Migrate(ctx); err != nil {
				return err
			}
		}

		mux := newServeMux(extract.Mode(cfg.Extract.Mode), extractOptions(cfg), st)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		errCh := make(chan error, 1)
		go func() {
			zap.L().Info("serve: listening", zap.Int("port", port))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			zap.L().Info("serve: shutting down")
			return srv.Close()
		case err := <-errCh:
			if err == http.ErrServerClosed {
				return nil
			}
			return err
		}
	},
}

// newServeMux builds the upload API. defaultMode applies when the request
// does not name an extraction mode.
func newServeMux(defaultMode extract.Mode, opts extract.Options, st store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /extract", func(w http.ResponseWriter, r *http.Request) {
		mode := extract.Mode(r.URL.Query().Get("mode"))
		if mode == "" {
			mode = defaultMode
		}
		if mode != extract.ModeLabel && mode != extract.ModeFixed {
			http.Error(w, `{"error":"unknown mode"}`, http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("workbook")
		if err != nil {
			http.Error(w, `{"error":"workbook file is required"}`, http.StatusBadRequest)
			return
		}
		defer file.Close()

		// tealeg reads from a path; spool the upload to a temp file.
		tmp, err := os.CreateTemp("", "booking-*.xlsx")
		if err != nil {
			http.Error(w, `{"error":"temp file"}`, http.StatusInternalServerError)
			return
		}
		defer os.Remove(tmp.Name())
		if _, err := io.Copy(tmp, file); err != nil {
			tmp.Close()
			http.Error(w, `{"error":"read upload"}`, http.StatusBadRequest)
			return
		}
		tmp.Close()

		result, err := processWorkbook(r.Context(), tmp.Name(), mode, opts, ingest.Options{SheetName: r.URL.Query().Get("sheet")}, st)
		if err != nil {
			zap.L().Error("serve: extraction failed",
				zap.String("upload", header.Filename),
				zap.Error(err),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"error": "workbook could not be processed"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"upload":  header.Filename,
			"forms":   result.Forms,
			"lots":    result.Lots,
			"columns": extract.OrderColumns,
			"rows":    result.Rows,
		})
	})

	return mux
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default: config server.port)")
	rootCmd.AddCommand(serveCmd)
}
