package web

// handlers_common.go holds the helpers shared by the view handlers: URL
// query <-> view state translation and view lookup.

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/JonMunkholm/dashboard/internal/table"
	"github.com/JonMunkholm/dashboard/internal/web/templates"
	"github.com/go-chi/chi/v5"
)

// MaxPageSize caps the size query parameter.
const MaxPageSize = 100

// pageSizes are offered in the page size selector.
var pageSizes = []int{10, 25, 50, 100}

var errUnknownView = errors.New("unknown view")

// lookupView resolves the {viewKey} URL parameter.
func lookupView(r *http.Request) (core.ListView, error) {
	key := chi.URLParam(r, "viewKey")
	v, ok := core.Get(key)
	if !ok {
		return core.ListView{}, fmt.Errorf("%w %q", errUnknownView, key)
	}
	return v, nil
}

// parseIntParam parses a positive integer query parameter.
func parseIntParam(q url.Values, name string) (int, bool) {
	val := q.Get(name)
	if val == "" {
		return 0, false
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return 0, false
	}
	return i, true
}

// stateFromQuery folds the query parameters into the view's initial state
// with the same actions the UI dispatches, so the reducer's rules (page
// reset on search, filter and size changes) hold for links as well.
//
//	search=<term> filter=<value> sort=<key> dir=asc|desc page=<n> size=<n>
func stateFromQuery(view core.ListView, q url.Values) table.ViewState {
	var actions []table.Action

	if n, ok := parseIntParam(q, "size"); ok {
		actions = append(actions, table.SetPageSize{Size: min(n, MaxPageSize)})
	}
	if q.Has("search") {
		actions = append(actions, table.SetSearch{Term: q.Get("search")})
	}
	if q.Has("filter") {
		actions = append(actions, table.SetFilter{Value: q.Get("filter")})
	}
	if key := q.Get("sort"); key != "" && view.Sortable(key) {
		actions = append(actions, table.ToggleSort{Key: key})
		if table.ParseSortDirection(q.Get("dir")) == table.Descending {
			actions = append(actions, table.ToggleSort{Key: key})
		}
	}
	// Last, because the actions above reset the page.
	if n, ok := parseIntParam(q, "page"); ok {
		actions = append(actions, table.SetPage{Page: n})
	}

	return table.ReduceAll(view.InitialState(), actions...)
}

// stateQuery is the inverse of stateFromQuery. Defaults are omitted.
func stateQuery(view core.ListView, state table.ViewState, withPage bool) url.Values {
	q := url.Values{}
	if state.SearchTerm != "" {
		q.Set("search", state.SearchTerm)
	}
	if state.Filtering() {
		q.Set("filter", state.FilterValue)
	}
	if state.SortKey != "" {
		q.Set("sort", state.SortKey)
		q.Set("dir", string(state.SortDirection))
	}
	if state.PageSize != view.Options.PageSize {
		q.Set("size", strconv.Itoa(state.PageSize))
	}
	if withPage && state.Page > 1 {
		q.Set("page", strconv.Itoa(state.Page))
	}
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// viewPath is the page URL of a view.
func viewPath(view core.ListView) string {
	return "/views/" + url.PathEscape(view.Key)
}

// viewLink returns the page URL of view in state.
func viewLink(view core.ListView, state table.ViewState) string {
	return withQuery(viewPath(view), stateQuery(view, state, true))
}

// exportLink returns the export URL for state. The page is irrelevant to
// an export and is left out.
func exportLink(view core.ListView, state table.ViewState) string {
	return withQuery(viewPath(view)+"/export", stateQuery(view, state, false))
}

// sidebarFor lists every registered view for navigation.
func (s *Server) sidebarFor(active string) templates.SidebarParams {
	views := s.service.ListViews()
	items := make([]templates.NavItem, len(views))
	for i, v := range views {
		items[i] = templates.NavItem{Key: v.Key, Label: v.Label}
	}
	return templates.SidebarParams{ActivePage: active, Views: items}
}
