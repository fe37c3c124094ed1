package table

import (
	"slices"
	"strings"
)

// Derive applies search, filter and sort to records and returns the derived
// sequence. The input slice and its records are never modified; the result
// shares record references with the input.
//
// Missing fields, unknown keys and empty input degrade to no-op stages.
func Derive(records []Record, columns []Column, state ViewState) []Record {
	result := make([]Record, 0, len(records))

	var term string
	if state.Searching() {
		term = strings.ToLower(state.SearchTerm)
	}

	for _, r := range records {
		if r == nil {
			continue
		}
		if state.Searching() && !matchesSearch(r, state.SearchKey, term) {
			continue
		}
		if state.Filtering() && !matchesFilter(r, state.FilterKey, state.FilterValue) {
			continue
		}
		result = append(result, r)
	}

	if state.SortKey != "" {
		sortRecords(result, columns, state.SortKey, state.SortDirection)
	}

	return result
}

// matchesSearch is a case-insensitive substring match on one field.
// A record without the field never matches.
func matchesSearch(r Record, key, lowerTerm string) bool {
	v, ok := lookup(r, key)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(Coerce(v)), lowerTerm)
}

// matchesFilter is a case-sensitive equality match on one field.
// A record without the field never matches, as in search.
func matchesFilter(r Record, key, value string) bool {
	v, ok := lookup(r, key)
	if !ok {
		return false
	}
	return Coerce(v) == value
}

// sortRecords stable-sorts records in place by key.
func sortRecords(records []Record, columns []Column, key string, dir SortDirection) {
	cmp := columnComparator(columns, key)
	slices.SortStableFunc(records, func(a, b Record) int {
		c := cmp(a, b)
		if dir == Descending {
			return -c
		}
		return c
	})
}

// columnComparator returns the column's comparator, or the string comparator
// when the column has none or is not part of the column set.
func columnComparator(columns []Column, key string) Comparator {
	for _, col := range columns {
		if col.Key == key && col.Compare != nil {
			return col.Compare
		}
	}
	return func(a, b Record) int {
		return strings.Compare(Coerce(a[key]), Coerce(b[key]))
	}
}

// FindColumn returns the column with the given key.
func FindColumn(columns []Column, key string) (Column, bool) {
	for _, col := range columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column{}, false
}
