package templates

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/JonMunkholm/dashboard/internal/table"
	"github.com/a-h/templ"
)

// ViewChangedEvent is the HX-Trigger event that makes the table reload.
const ViewChangedEvent = "view-changed"

// TableData is everything the list view components need.
type TableData struct {
	View   core.ListView
	Result table.Result

	// Link returns the URL of this view in the given state.
	Link      func(table.ViewState) string
	ExportURL string
	PageSizes []int
}

// TableView renders the full list view page.
func TableView(sidebar SidebarParams, data TableData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(w)
		if data.View.Description != "" {
			h.raw(`<p class="subtitle">`)
			h.text(data.View.Description)
			h.raw(`</p>`)
		}
		h.component(ctx, TablePartial(data))
		h.raw(`<div class="card details-panel"`)
		h.attr("id", strings.TrimPrefix(core.DetailsTarget, "#"))
		h.raw(`></div>`)
		if data.View.CreatePath != "" && len(data.View.FormFields) > 0 {
			h.component(ctx, createForm(data.View))
		}
		return h.err
	})
	return Layout(data.View.Label, sidebar, body)
}

// TablePartial renders the swappable table container: controls, rows and
// pagination.
func TablePartial(data TableData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newWriter(w)
		state := data.Result.State
		current := data.Link(state)

		h.raw(`<div id="table-container" hx-swap="outerHTML" hx-target="#table-container"`)
		h.attr("hx-get", current)
		h.attr("hx-trigger", ViewChangedEvent+" from:body")
		h.raw(`>`)

		writeControls(h, data)
		writeTable(h, data)
		writePagination(h, data)

		h.raw(`</div>`)
		return h.err
	})
}

func writeControls(h *htmlWriter, data TableData) {
	state := data.Result.State
	base := data.Link(table.NewViewState(data.View.Options))
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}

	h.raw(`<form class="controls" method="get" hx-push-url="true"`)
	h.attr("action", base)
	h.attr("hx-get", base)
	h.raw(` hx-trigger="input changed delay:300ms from:input[name=search], change">`)

	if state.SearchKey != "" {
		placeholder := data.View.SearchPlaceholder
		if placeholder == "" {
			placeholder = "Search..."
		}
		h.raw(`<input type="search" name="search" class="search"`)
		h.attr("value", state.SearchTerm)
		h.attr("placeholder", placeholder)
		h.raw(`>`)
	}

	if state.FilterKey != "" && len(data.View.Options.FilterOptions) > 0 {
		h.raw(`<select name="filter" class="filter">`)
		option(h, table.FilterAll, "All", state.FilterValue == table.FilterAll)
		for _, opt := range data.View.Options.FilterOptions {
			option(h, opt.Value, opt.Label, state.FilterValue == opt.Value)
		}
		h.raw(`</select>`)
	}

	if len(data.PageSizes) > 0 {
		h.raw(`<select name="size" class="page-size">`)
		for _, n := range data.PageSizes {
			v := itoa(n)
			option(h, v, v+" / page", state.PageSize == n)
		}
		h.raw(`</select>`)
	}

	if state.SortKey != "" {
		hidden(h, "sort", state.SortKey)
		hidden(h, "dir", string(state.SortDirection))
	}

	h.raw(`<noscript><button type="submit">Apply</button></noscript>`)
	h.raw(`<a class="btn btn-outline" hx-boost="false"`)
	h.attr("href", data.ExportURL)
	h.raw(`>Export CSV</a>`)
	h.raw(`</form>`)
}

func writeTable(h *htmlWriter, data TableData) {
	state := data.Result.State
	cols := data.View.Columns
	actions := data.View.RowActions

	h.raw(`<table class="data-table"><thead><tr>`)
	for _, col := range cols {
		if !col.Sortable {
			h.raw(`<th>`)
			h.text(col.Header)
			h.raw(`</th>`)
			continue
		}

		next := table.Reduce(state, table.ToggleSort{Key: col.Key})
		h.raw(`<th class="sortable"><a hx-push-url="true"`)
		link := data.Link(next)
		h.attr("href", link)
		h.attr("hx-get", link)
		h.raw(`>`)
		h.text(col.Header)
		if state.SortKey == col.Key {
			if state.SortDirection == table.Descending {
				h.raw(` <span class="sort-indicator">↓</span>`)
			} else {
				h.raw(` <span class="sort-indicator">↑</span>`)
			}
		}
		h.raw(`</a></th>`)
	}
	if len(actions) > 0 {
		h.raw(`<th>Actions</th>`)
	}
	h.raw(`</tr></thead><tbody>`)

	items := data.Result.Page.Items
	if len(items) == 0 {
		span := len(cols)
		if len(actions) > 0 {
			span++
		}
		h.raw(`<tr><td class="empty"`)
		h.attr("colspan", itoa(span))
		h.raw(`>No data found</td></tr>`)
	}

	for _, r := range items {
		h.raw(`<tr>`)
		for _, col := range cols {
			h.raw(`<td`)
			h.attr("data-column", col.Key)
			h.raw(`>`)
			h.text(table.Cell(r, col))
			h.raw(`</td>`)
		}
		if len(actions) > 0 {
			h.raw(`<td class="actions">`)
			for _, a := range actions {
				writeAction(h, a, r)
			}
			h.raw(`</td>`)
		}
		h.raw(`</tr>`)
	}
	h.raw(`</tbody></table>`)
}

func writeAction(h *htmlWriter, a core.RowAction, r table.Record) {
	if a.Path == nil {
		return
	}
	h.raw(`<button type="button" class="btn btn-small"`)
	h.attr("hx-"+strings.ToLower(a.Method), a.Path(r))
	if a.Target != "" {
		h.attr("hx-target", a.Target)
		h.raw(` hx-swap="innerHTML"`)
	} else {
		h.raw(` hx-swap="none"`)
	}
	if len(a.Values) > 0 {
		vals, err := json.Marshal(a.Values)
		if err == nil {
			h.attr("hx-vals", string(vals))
		}
	}
	if a.Confirm != "" {
		h.attr("hx-confirm", a.Confirm)
	}
	h.raw(`>`)
	h.text(a.Label)
	h.raw(`</button>`)
}

func writePagination(h *htmlWriter, data TableData) {
	state := data.Result.State
	page := data.Result.Page

	h.raw(`<div class="pagination"><p class="showing">`)
	h.text(ShowingText(page))
	h.raw(`</p><div class="pager">`)

	if prev, ok := table.PrevPage(state); ok {
		pageLink(h, data.Link(prev), "Previous", "‹")
	} else {
		h.raw(`<span class="btn btn-outline disabled" aria-disabled="true">‹</span>`)
	}

	h.raw(`<span class="page-count">Page `)
	h.int(page.Page)
	h.raw(` of `)
	h.int(page.DisplayTotalPages())
	h.raw(`</span>`)

	if next, ok := table.NextPage(state, page.TotalPages); ok {
		pageLink(h, data.Link(next), "Next", "›")
	} else {
		h.raw(`<span class="btn btn-outline disabled" aria-disabled="true">›</span>`)
	}
	h.raw(`</div></div>`)
}

func pageLink(h *htmlWriter, href, label, glyph string) {
	h.raw(`<a class="btn btn-outline" hx-push-url="true"`)
	h.attr("href", href)
	h.attr("hx-get", href)
	h.attr("aria-label", label)
	h.raw(`>`)
	h.raw(glyph)
	h.raw(`</a>`)
}

// ShowingText is the "Showing X to Y of Z entries" summary of a page.
func ShowingText(p table.Page) string {
	return "Showing " + itoa(p.From()) + " to " + itoa(p.To()) + " of " + itoa(p.TotalItems) + " entries"
}

func createForm(v core.ListView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newWriter(w)
		h.raw(`<details class="create-form"><summary class="btn">Add `)
		h.text(strings.TrimSuffix(v.Label, "s"))
		h.raw(`</summary><form method="post" hx-swap="innerHTML" hx-target="#form-result"`)
		h.attr("action", v.CreatePath)
		h.attr("hx-post", v.CreatePath)
		h.raw(` hx-on::after-request="if(event.detail.successful) this.reset()">`)
		h.raw(`<div class="form-grid">`)
		for _, f := range v.FormFields {
			formField(h, f)
		}
		h.raw(`</div><div id="form-result"></div><button type="submit" class="btn">Save</button></form></details>`)
		return h.err
	})
}

func formField(h *htmlWriter, f core.FormField) {
	id := "field-" + f.Name
	h.raw(`<label`)
	h.attr("for", id)
	h.raw(`>`)
	h.text(f.Label)
	if f.Required {
		h.raw(` <span class="required">*</span>`)
	}
	h.raw(`</label>`)

	if f.Type == "select" {
		h.raw(`<select`)
		h.attr("id", id)
		h.attr("name", f.Name)
		h.raw(`><option value="">Select</option>`)
		for _, o := range f.Options {
			option(h, o.Value, o.Label, false)
		}
		h.raw(`</select>`)
		return
	}

	h.raw(`<input`)
	h.attr("id", id)
	h.attr("name", f.Name)
	h.attr("type", f.Type)
	if f.Placeholder != "" {
		h.attr("placeholder", f.Placeholder)
	}
	if f.Required {
		h.raw(` required`)
	}
	h.raw(`>`)
}

func option(h *htmlWriter, value, label string, selected bool) {
	h.raw(`<option`)
	h.attr("value", value)
	if selected {
		h.raw(` selected`)
	}
	h.raw(`>`)
	h.text(label)
	h.raw(`</option>`)
}

func hidden(h *htmlWriter, name, value string) {
	h.raw(`<input type="hidden"`)
	h.attr("name", name)
	h.attr("value", value)
	h.raw(`>`)
}
