package view

// Pager is the navigation state for a paginated list. Page is always kept
// inside [1, TotalPages], so prev on the first page and next on the last
// page are no-ops.
type Pager struct {
	Page       int
	TotalPages int
}

func NewPager(page, totalPages int) Pager {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Pager{Page: page, TotalPages: totalPages}
}

func (p Pager) Prev() int {
	if p.Page > 1 {
		return p.Page - 1
	}
	return p.Page
}

func (p Pager) Next() int {
	if p.Page < p.TotalPages {
		return p.Page + 1
	}
	return p.Page
}

func (p Pager) HasPrev() bool { return p.Page > 1 }
func (p Pager) HasNext() bool { return p.Page < p.TotalPages }
