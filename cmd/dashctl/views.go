package main

import (
	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newViewsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the registered views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Key", "Label", "Page size", "Description"})
			for _, v := range core.All() {
				t.AppendRow(table.Row{v.Key, v.Label, v.Options.PageSize, v.Description})
			}
			t.Render()
			return nil
		},
	}
}
