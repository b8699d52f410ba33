package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent extraction runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		if st == nil {
			return eris.New("runs: no store configured (set store.path)")
		}
		defer st.Close()

		if err := st.Migrate(cmd.Context()); err != nil {
			return err
		}

		runs, err := st.ListRuns(cmd.Context(), runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		for _, r := range runs {
			line := fmt.Sprintf("%s  %-9s  forms=%d lots=%d rows=%d  %s",
				r.CreatedAt.Format("2006-01-02 15:04:05"), r.Status, r.Forms, r.Lots, r.Rows, r.SourceFile)
			if r.Error != "" {
				line += "  error: " + r.Error
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "max runs to list")
	rootCmd.AddCommand(runsCmd)
}
