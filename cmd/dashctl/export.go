package main

import (
	"fmt"
	"os"

	"github.com/JonMunkholm/dashboard/internal/table"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	q := &queryFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "export <view>",
		Short: "Export the full filtered and sorted view as CSV",
		Example: `  # All pending applicants to export.csv
  dashctl export applicants --filter pending

  # To stdout
  dashctl export applicants --output -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.view(args[0])
			if err != nil {
				return err
			}
			state, err := q.state(view)
			if err != nil {
				return err
			}

			art, err := a.service.ExportView(cmd.Context(), view, state)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(art.Body)
				return err
			}
			if err := os.WriteFile(output, art.Body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d bytes)\n", output, len(art.Body))
			return nil
		},
	}
	q.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", table.ExportFilename, "Output file, or - for stdout")
	return cmd
}
