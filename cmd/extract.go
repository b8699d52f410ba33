package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/jolanka/booking-cli/internal/extract"
	"github.com/jolanka/booking-cli/internal/ingest"
)

var (
	extractMode   string
	extractSheet  string
	extractOut    string
	extractFormat string
)

var extractCmd = &cobra.Command{
	Use:   "extract <workbook.xlsx>",
	Short: "Extract order details from one booking form workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if err := cfg.Validate("extract"); err != nil {
			return err
		}

		modeName := extractMode
		if modeName == "" {
			modeName = cfg.Extract.Mode
		}
		mode := extract.Mode(modeName)
		if mode != extract.ModeLabel && mode != extract.ModeFixed {
			return eris.Errorf("extract: unknown mode %q (want label or fixed)", modeName)
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

		result, err := processWorkbook(cmd.Context(), path, mode, extractOptions(cfg), ingest.Options{SheetName: extractSheet}, st)
		if err != nil {
			return err
		}

		if len(result.Rows) == 0 {
			fmt.Println("No forms with usable data were found in the workbook.")
			return nil
		}

		outDir := extractOut
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		format := extractFormat
		if format == "" {
			format = cfg.Output.Format
		}

		written, err := writeOutputs(result.Rows, path, outDir, format)
		if err != nil {
			return err
		}

		fmt.Printf("Extracted %d forms (%d rows).\n", result.Forms, len(result.Rows))
		for _, f := range written {
			fmt.Printf("Wrote %s\n", f)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractMode, "mode", "", "extraction strategy: label or fixed (default: config extract.mode)")
	extractCmd.Flags().StringVar(&extractSheet, "sheet", "", "sheet name (default: first sheet)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "output directory (default: config output.dir)")
	extractCmd.Flags().StringVar(&extractFormat, "format", "", "output format: xlsx, csv, or both")
	rootCmd.AddCommand(extractCmd)
}
