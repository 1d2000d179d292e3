package domain

// Pagination translates a page size, a server-reported total and a requested
// page into a valid current page and a page count.
//
// TotalPage is ceil(total / pageSize). A zero page size has no usable page
// count, so TotalPage is normalized to 0 in that case and the current page
// is pinned to 1. After construction and after every setter,
// 1 <= CurrentPage() <= max(TotalPage(), 1).
type Pagination struct {
	pageSize    int
	total       int
	currentPage int
}

// NewPagination builds a Pagination and clamps currentPage into range.
// Negative sizes and totals are treated as 0.
func NewPagination(pageSize, total, currentPage int) Pagination {
	p := Pagination{
		pageSize: max(pageSize, 0),
		total:    max(total, 0),
	}
	p.SetCurrentPage(currentPage)
	return p
}

// PageSize returns the number of items per page.
func (p *Pagination) PageSize() int { return p.pageSize }

// Total returns the total number of items.
func (p *Pagination) Total() int { return p.total }

// CurrentPage returns the 1-based current page.
func (p *Pagination) CurrentPage() int { return p.currentPage }

// TotalPage returns the number of pages, or 0 when the page size is 0.
func (p *Pagination) TotalPage() int {
	if p.pageSize == 0 {
		return 0
	}
	pages := p.total / p.pageSize
	if p.total%p.pageSize != 0 {
		pages++
	}
	return pages
}

// SetCurrentPage clamps page into [1, max(TotalPage, 1)].
func (p *Pagination) SetCurrentPage(page int) {
	last := max(p.TotalPage(), 1)
	p.currentPage = min(max(page, 1), last)
}

// SetTotal updates the total item count and re-clamps the current page.
func (p *Pagination) SetTotal(total int) {
	p.total = max(total, 0)
	p.SetCurrentPage(p.currentPage)
}

// SetPageSize updates the page size and re-clamps the current page.
func (p *Pagination) SetPageSize(pageSize int) {
	p.pageSize = max(pageSize, 0)
	p.SetCurrentPage(p.currentPage)
}

// Offset returns the index of the first item on the current page.
func (p *Pagination) Offset() int {
	return (p.currentPage - 1) * p.pageSize
}

// Limit returns the number of items on the current page.
func (p *Pagination) Limit() int {
	if p.pageSize == 0 {
		return 0
	}
	return max(min(p.pageSize, p.total-p.Offset()), 0)
}

// HasNext reports whether a page follows the current one.
func (p *Pagination) HasNext() bool { return p.currentPage < p.TotalPage() }

// HasPrev reports whether a page precedes the current one.
func (p *Pagination) HasPrev() bool { return p.currentPage > 1 }
