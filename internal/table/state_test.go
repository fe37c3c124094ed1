package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewViewState(t *testing.T) {
	s := NewViewState(Options{SearchKey: "name", FilterKey: "status"})

	assert.Equal(t, "name", s.SearchKey)
	assert.Equal(t, "status", s.FilterKey)
	assert.Equal(t, FilterAll, s.FilterValue)
	assert.Equal(t, Ascending, s.SortDirection)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, DefaultPageSize, s.PageSize)

	assert.Equal(t, 25, NewViewState(Options{PageSize: 25}).PageSize)
}

func TestReduce_ResetsPage(t *testing.T) {
	base := NewViewState(Options{SearchKey: "name", FilterKey: "status"})
	base.Page = 4

	tests := []struct {
		name   string
		action Action
	}{
		{"search", SetSearch{Term: "a"}},
		{"filter", SetFilter{Value: "pending"}},
		{"page size", SetPageSize{Size: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1, Reduce(base, tt.action).Page)
		})
	}
}

func TestReduce_SortKeepsPage(t *testing.T) {
	s := NewViewState(Options{})
	s.Page = 3
	assert.Equal(t, 3, Reduce(s, ToggleSort{Key: "name"}).Page)
}

func TestReduce_ToggleSort(t *testing.T) {
	s := NewViewState(Options{})

	s = Reduce(s, ToggleSort{Key: "name"})
	assert.Equal(t, "name", s.SortKey)
	assert.Equal(t, Ascending, s.SortDirection)

	s = Reduce(s, ToggleSort{Key: "name"})
	assert.Equal(t, Descending, s.SortDirection)

	// A different key starts ascending again.
	s = Reduce(s, ToggleSort{Key: "status"})
	assert.Equal(t, "status", s.SortKey)
	assert.Equal(t, Ascending, s.SortDirection)

	// An empty key is ignored.
	assert.Equal(t, s, Reduce(s, ToggleSort{}))
}

func TestReduce_IgnoresInvalidValues(t *testing.T) {
	s := NewViewState(Options{})
	s.Page = 2

	assert.Equal(t, s, Reduce(s, SetPage{Page: 0}))
	assert.Equal(t, s, Reduce(s, SetPage{Page: -3}))
	assert.Equal(t, s, Reduce(s, SetPageSize{Size: 0}))
	assert.Equal(t, s, Reduce(s, nil))
}

func TestReduce_SetPageDoesNotClamp(t *testing.T) {
	s := Reduce(NewViewState(Options{}), SetPage{Page: 99})
	assert.Equal(t, 99, s.Page)
}

func TestReduce_EmptyFilterSelectsAll(t *testing.T) {
	s := Reduce(NewViewState(Options{FilterKey: "status"}), SetFilter{Value: "pending"})
	s = Reduce(s, SetFilter{Value: ""})
	assert.Equal(t, FilterAll, s.FilterValue)
	assert.False(t, s.Filtering())
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := NewViewState(Options{SearchKey: "name"})
	_ = Reduce(s, SetSearch{Term: "x"})
	assert.Equal(t, "", s.SearchTerm)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{1, 3, 1},
		{3, 3, 3},
		{7, 3, 3},
		{5, 0, 1},
		{0, 2, 1},
	}

	for _, tt := range tests {
		s := ViewState{Page: tt.page}
		if got := Clamp(s, tt.total).Page; got != tt.want {
			t.Errorf("Clamp(page=%d, total=%d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}

func TestNextPrevPage(t *testing.T) {
	s := NewViewState(Options{})

	_, ok := PrevPage(s)
	assert.False(t, ok, "prev on first page")

	s, ok = NextPage(s, 2)
	assert.True(t, ok)
	assert.Equal(t, 2, s.Page)

	_, ok = NextPage(s, 2)
	assert.False(t, ok, "next on last page")

	s, ok = PrevPage(s)
	assert.True(t, ok)
	assert.Equal(t, 1, s.Page)

	_, ok = NextPage(s, 0)
	assert.False(t, ok, "next with no pages")
}

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, Descending, ParseSortDirection("desc"))
	assert.Equal(t, Descending, ParseSortDirection(" DESC "))
	assert.Equal(t, Ascending, ParseSortDirection("asc"))
	assert.Equal(t, Ascending, ParseSortDirection(""))
	assert.Equal(t, Ascending, ParseSortDirection("sideways"))
}
