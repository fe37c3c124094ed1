package table

// Action is a discrete user action that replaces one field of a ViewState.
type Action interface {
	apply(ViewState) ViewState
}

// SetSearch replaces the search term and returns to the first page.
type SetSearch struct{ Term string }

// SetFilter replaces the filter value and returns to the first page.
// An empty value selects FilterAll.
type SetFilter struct{ Value string }

// ToggleSort sorts by Key ascending, or flips the direction when Key is
// already the sort key.
type ToggleSort struct{ Key string }

// SetPage moves to Page. Pages below 1 are ignored; the upper bound is the
// caller's responsibility (see Clamp and NextPage).
type SetPage struct{ Page int }

// SetPageSize replaces the page size and returns to the first page.
// Sizes below 1 are ignored.
type SetPageSize struct{ Size int }

// Reduce returns the state that results from applying action to state.
// Unknown or nil actions return state unchanged.
func Reduce(state ViewState, action Action) ViewState {
	if action == nil {
		return state
	}
	return action.apply(state)
}

// ReduceAll applies actions in order.
func ReduceAll(state ViewState, actions ...Action) ViewState {
	for _, a := range actions {
		state = Reduce(state, a)
	}
	return state
}

func (a SetSearch) apply(s ViewState) ViewState {
	s.SearchTerm = a.Term
	s.Page = 1
	return s
}

func (a SetFilter) apply(s ViewState) ViewState {
	s.FilterValue = a.Value
	if s.FilterValue == "" {
		s.FilterValue = FilterAll
	}
	s.Page = 1
	return s
}

func (a ToggleSort) apply(s ViewState) ViewState {
	if a.Key == "" {
		return s
	}
	if s.SortKey == a.Key {
		s.SortDirection = s.SortDirection.Flip()
		return s
	}
	s.SortKey = a.Key
	s.SortDirection = Ascending
	return s
}

func (a SetPage) apply(s ViewState) ViewState {
	if a.Page < 1 {
		return s
	}
	s.Page = a.Page
	return s
}

func (a SetPageSize) apply(s ViewState) ViewState {
	if a.Size < 1 {
		return s
	}
	s.PageSize = a.Size
	s.Page = 1
	return s
}

// Clamp pulls state.Page back into [1, max(totalPages, 1)].
// Call it after the derived sequence or the page size changed.
func Clamp(state ViewState, totalPages int) ViewState {
	if totalPages < 1 {
		totalPages = 1
	}
	if state.Page > totalPages {
		state.Page = totalPages
	}
	if state.Page < 1 {
		state.Page = 1
	}
	return state
}

// NextPage advances one page. It reports false and leaves the state alone
// when the current page is already the last.
func NextPage(state ViewState, totalPages int) (ViewState, bool) {
	if state.Page >= totalPages {
		return state, false
	}
	return Reduce(state, SetPage{Page: state.Page + 1}), true
}

// PrevPage goes back one page. It reports false on the first page.
func PrevPage(state ViewState) (ViewState, bool) {
	if state.Page <= 1 {
		return state, false
	}
	return Reduce(state, SetPage{Page: state.Page - 1}), true
}
