package table

// Page is one slice of a derived sequence plus navigation bookkeeping.
type Page struct {
	Items      []Record `json:"items"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalItems int      `json:"totalItems"`
	TotalPages int      `json:"totalPages"` // ceil(TotalItems/PageSize), 0 when empty
}

// Paginate slices derived into the half-open range
// [(page-1)*pageSize, page*pageSize). Out-of-range pages yield an empty
// slice. The page number is reported as given and is never clamped.
func Paginate(derived []Record, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	n := len(derived)

	p := Page{
		Items:      []Record{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: n,
		TotalPages: TotalPages(n, pageSize),
	}

	// Checked before multiplying so huge page numbers cannot overflow.
	if page < 1 || page-1 >= p.TotalPages {
		return p
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, n-start)
	p.Items = derived[start:end:end]
	return p
}

// TotalPages is ceil(n/pageSize) without overflow, 0 when n is 0.
// A pageSize below 1 counts as DefaultPageSize.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := n / pageSize
	if n%pageSize != 0 {
		total++
	}
	return total
}

// DisplayTotalPages is TotalPages with a floor of one, for "Page X of Y".
func (p Page) DisplayTotalPages() int {
	return max(p.TotalPages, 1)
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool {
	return p.Page < p.TotalPages
}

// From is the 1-based position of the first item on the page, or 0 when the
// page is empty.
func (p Page) From() int {
	if len(p.Items) == 0 {
		return 0
	}
	return (p.Page-1)*p.PageSize + 1
}

// To is the 1-based position of the last item on the page, or 0 when the
// page is empty.
func (p Page) To() int {
	if len(p.Items) == 0 {
		return 0
	}
	return p.From() + len(p.Items) - 1
}
