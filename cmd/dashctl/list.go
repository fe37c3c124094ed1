package main

import (
	"fmt"

	"github.com/JonMunkholm/dashboard/internal/core"
	dtable "github.com/JonMunkholm/dashboard/internal/table"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// queryFlags select the view state, mirroring the web query parameters.
type queryFlags struct {
	search   string
	filter   string
	sort     string
	desc     bool
	page     int
	pageSize int
}

func (f *queryFlags) register(cmd *cobra.Command, withPage bool) {
	cmd.Flags().StringVar(&f.search, "search", "", "Search term (case-insensitive substring of the view's search column)")
	cmd.Flags().StringVar(&f.filter, "filter", "", "Filter value (default: all)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sortable column key")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "Sort descending")
	if withPage {
		cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
		cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "Rows per page (default: the view's page size)")
	}
}

// state folds the flags into the view's initial state through the reducer,
// in the same order the web handlers apply query parameters.
func (f *queryFlags) state(view core.ListView) (dtable.ViewState, error) {
	var actions []dtable.Action

	if f.pageSize < 0 {
		return dtable.ViewState{}, fmt.Errorf("--page-size must be positive")
	}
	if f.pageSize > 0 {
		actions = append(actions, dtable.SetPageSize{Size: f.pageSize})
	}
	if f.search != "" {
		actions = append(actions, dtable.SetSearch{Term: f.search})
	}
	if f.filter != "" {
		actions = append(actions, dtable.SetFilter{Value: f.filter})
	}
	if f.sort != "" {
		if !view.Sortable(f.sort) {
			return dtable.ViewState{}, fmt.Errorf("column %q of view %q is not sortable", f.sort, view.Key)
		}
		actions = append(actions, dtable.ToggleSort{Key: f.sort})
		if f.desc {
			actions = append(actions, dtable.ToggleSort{Key: f.sort})
		}
	}
	if f.page > 1 {
		actions = append(actions, dtable.SetPage{Page: f.page})
	}

	return dtable.ReduceAll(view.InitialState(), actions...), nil
}

func newListCmd(a *app) *cobra.Command {
	q := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "list <view>",
		Short: "Print one page of a view",
		Example: `  # First page of applicants
  dashctl list applicants

  # Approved applicants sorted by name, 25 per page
  dashctl list applicants --filter approved --sort name --page-size 25`,
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

			result, err := a.service.BuildView(cmd.Context(), view, state)
			if err != nil {
				return err
			}
			renderPage(cmd, view, result)
			return nil
		},
	}
	q.register(cmd, true)
	return cmd
}

func renderPage(cmd *cobra.Command, view core.ListView, result dtable.Result) {
	out := cmd.OutOrStdout()
	page := result.Page

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(view.Columns))
	for i, col := range view.Columns {
		header[i] = col.Header
	}
	t.AppendHeader(header)

	for _, r := range page.Items {
		row := make(table.Row, len(view.Columns))
		for i, col := range view.Columns {
			row[i] = dtable.Cell(r, col)
		}
		t.AppendRow(row)
	}
	if len(page.Items) == 0 {
		_, _ = fmt.Fprintln(out, "No data found")
	} else {
		t.Render()
	}

	_, _ = fmt.Fprintf(out, "Showing %d to %d of %d entries\n", page.From(), page.To(), page.TotalItems)
	_, _ = fmt.Fprintf(out, "Page %d of %d\n", page.Page, page.DisplayTotalPages())
}
