package table

// Result is everything a list view needs to render one page.
type Result struct {
	State   ViewState
	Derived []Record // Full pre-pagination sequence
	Page    Page
}

// Build runs the whole pipeline for state. The returned state has its page
// clamped to the available pages, so a stale page number after a filter or
// page-size change lands on the last non-empty page.
func Build(records []Record, columns []Column, state ViewState) Result {
	derived := Derive(records, columns, state)

	size := state.PageSize
	if size < 1 {
		size = DefaultPageSize
		state.PageSize = size
	}
	state = Clamp(state, TotalPages(len(derived), size))

	return Result{
		State:   state,
		Derived: derived,
		Page:    Paginate(derived, state.Page, state.PageSize),
	}
}
