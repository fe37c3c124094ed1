// Package table is the tabular data engine behind every list view.
//
// It takes an in-memory collection of records and a set of column definitions
// and derives a searched, filtered, sorted and paginated subset. The same
// derived sequence can be serialized to CSV.
//
// # Pipeline
//
//	records -> Derive (search -> filter -> sort) -> Paginate -> page items
//	                                             \-> Export (full sequence)
//
// All functions in this package are pure: they hold no state between calls
// and never mutate the records they are given. The only mutable state is the
// caller-owned [ViewState], which changes through [Reduce].
//
// # Column rendering
//
// A [Column] may carry a [Renderer]. Renderers are presentation-only; the
// engine never calls them. CSV export always uses raw values.
package table
