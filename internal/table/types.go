package table

import "strings"

// Record is one row of domain data keyed by field name.
type Record map[string]any

// Renderer produces the display text of a cell.
type Renderer func(Record) string

// Comparator orders two records for a column. It returns a negative number
// when a sorts before b, zero when they are equal and a positive number
// otherwise.
type Comparator func(a, b Record) int

// Column describes one displayed, sortable or exported attribute of a Record.
type Column struct {
	Key      string // Field name in the record
	Header   string // Display label, also the CSV header
	Sortable bool

	// Render is optional. Only the presentation layer calls it.
	Render Renderer

	// Compare overrides the string comparator when sorting by this column.
	Compare Comparator
}

// HasRenderer reports whether the column has a custom display renderer.
func (c Column) HasRenderer() bool {
	return c.Render != nil
}

// FilterOption is one selectable value of the filter control.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SortDirection is the direction of the single sort key.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortDirection returns Descending for "desc" (any case) and Ascending
// for everything else.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(Descending)) {
		return Descending
	}
	return Ascending
}

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

const (
	// FilterAll is the filter value meaning "no filtering".
	FilterAll = "all"

	// DefaultPageSize is used when no page size is configured.
	DefaultPageSize = 10
)

// ViewState is the search, filter, sort and pagination configuration chosen
// by the user. It is owned by the view and replaced through Reduce.
type ViewState struct {
	SearchTerm    string        `json:"searchTerm"`
	SearchKey     string        `json:"searchKey,omitempty"`
	FilterKey     string        `json:"filterKey,omitempty"`
	FilterValue   string        `json:"filterValue"`
	SortKey       string        `json:"sortKey,omitempty"`
	SortDirection SortDirection `json:"sortDirection"`
	Page          int           `json:"page"`
	PageSize      int           `json:"pageSize"`
}

// Options is the configuration surface of a list view.
type Options struct {
	SearchKey     string         // Enables search; no-op when empty
	FilterKey     string         // Enables the filter; no-op when empty
	FilterOptions []FilterOption // Values offered besides "all"
	PageSize      int            // Defaults to DefaultPageSize
	OnExport      ExportFunc     // Replaces the CSV exporter when set
}

// NewViewState returns the initial state for a view configured by opts.
func NewViewState(opts Options) ViewState {
	size := opts.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	return ViewState{
		SearchKey:     opts.SearchKey,
		FilterKey:     opts.FilterKey,
		FilterValue:   FilterAll,
		SortDirection: Ascending,
		Page:          1,
		PageSize:      size,
	}
}

// Filtering reports whether the state applies an equality filter.
func (s ViewState) Filtering() bool {
	return s.FilterKey != "" && s.FilterValue != FilterAll
}

// Searching reports whether the state applies a search.
func (s ViewState) Searching() bool {
	return s.SearchKey != "" && s.SearchTerm != ""
}
