package core

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/JonMunkholm/dashboard/internal/config"
	"github.com/JonMunkholm/dashboard/internal/table"
)

// RecordSource fetches the full record collection of a view.
type RecordSource func(ctx context.Context, s *Service) ([]table.Record, error)

// ListView pairs a set of column definitions with table engine options.
type ListView struct {
	Key         string // Unique identifier: "applicants"
	Label       string // Display name: "Applicants"
	Description string
	Columns     []table.Column
	Options     table.Options

	// SearchPlaceholder is shown in the empty search box.
	SearchPlaceholder string

	Records RecordSource

	// RowActions are offered on every rendered row. Optional.
	RowActions []RowAction

	// CreatePath and FormFields describe the "add" form. Optional.
	CreatePath string
	FormFields []FormField
}

// RowAction is a per-row HTTP action rendered as a button.
type RowAction struct {
	Label   string
	Method  string                    // PATCH, DELETE, POST
	Path    func(table.Record) string // Target URL for the row
	Values  map[string]string         // Sent as the request body
	Confirm string                    // Confirmation prompt, if any

	// Target is the selector the response is swapped into. Empty discards
	// the response and relies on the view-changed event instead.
	Target string
}

// DetailsTarget is the panel on every list page that detail actions fill.
const DetailsTarget = "#row-details"

// FormField is one input of a view's create form.
type FormField struct {
	Name        string // Request field name
	Label       string
	Type        string // text, email, tel, number, select
	Required    bool
	Placeholder string
	Options     []table.FilterOption // For select inputs
}

// InitialState returns the state a fresh visit to the view starts from.
func (v ListView) InitialState() table.ViewState {
	return table.NewViewState(v.Options)
}

// Sortable reports whether key names a sortable column of the view.
func (v ListView) Sortable(key string) bool {
	col, ok := table.FindColumn(v.Columns, key)
	return ok && col.Sortable
}

var (
	registry   = make(map[string]ListView)
	registryMu sync.RWMutex
)

// Register adds a list view to the registry.
// Panics if a view with the same key is already registered or if column
// keys repeat.
func Register(v ListView) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[v.Key]; exists {
		panic(fmt.Sprintf("view already registered: %s", v.Key))
	}

	seen := make(map[string]bool, len(v.Columns))
	for _, col := range v.Columns {
		if seen[col.Key] {
			panic(fmt.Sprintf("view %s: duplicate column key %q", v.Key, col.Key))
		}
		seen[col.Key] = true
	}

	if v.Options.PageSize < 1 {
		v.Options.PageSize = table.DefaultPageSize
	}

	registry[v.Key] = v
}

// Get returns a list view by key.
// Returns false if not found.
func Get(key string) (ListView, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	v, ok := registry[key]
	return v, ok
}

// All returns all registered views sorted by key.
func All() []ListView {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]ListView, 0, len(registry))
	for _, v := range registry {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// ViewCount returns the number of registered views.
func ViewCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered views.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]ListView)
}

// ApplyViewConfig sets the default page size on every view and then applies
// per-view overrides. Overrides naming unknown views are rejected.
func ApplyViewConfig(defaultPageSize int, overrides map[string]config.ViewOverride) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	for key := range overrides {
		if _, ok := registry[key]; !ok {
			return fmt.Errorf("view override: unknown view %q", key)
		}
	}

	for key, v := range registry {
		if defaultPageSize > 0 {
			v.Options.PageSize = defaultPageSize
		}

		if o, ok := overrides[key]; ok {
			if o.PageSize > 0 {
				v.Options.PageSize = o.PageSize
			}
			if o.SearchKey != "" {
				v.Options.SearchKey = o.SearchKey
			}
			if len(o.FilterOptions) > 0 {
				opts := make([]table.FilterOption, len(o.FilterOptions))
				for i, fo := range o.FilterOptions {
					opts[i] = table.FilterOption{Value: fo.Value, Label: fo.Label}
				}
				v.Options.FilterOptions = opts
			}
		}

		registry[key] = v
	}
	return nil
}
