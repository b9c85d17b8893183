package views

// Paginator tracks a cursor over a list and the page window around it
type Paginator struct {
	pageSize int
	offset   int
	cursor   int
	total    int
}

// NewPaginator creates a paginator showing pageSize rows at a time
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetPageSize changes the rows per page, keeping the cursor visible
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.pageSize = size
	p.follow()
}

// SetTotal sets the list length and clamps the cursor into it
func (p *Paginator) SetTotal(total int) {
	p.total = max(0, total)
	p.cursor = min(p.cursor, max(0, p.total-1))
	p.follow()
}

// Total returns the list length
func (p *Paginator) Total() int {
	return p.total
}

// Cursor returns the absolute cursor index
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor, clamped to the list
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(0, min(pos, p.total-1))
	p.follow()
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.follow()
	return true
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	p.follow()
	return true
}

// NextPage jumps to the first row of the next page
func (p *Paginator) NextPage() bool {
	if p.offset+p.pageSize >= p.total {
		return false
	}
	p.offset += p.pageSize
	p.cursor = p.offset
	return true
}

// PrevPage jumps to the first row of the previous page
func (p *Paginator) PrevPage() bool {
	if p.offset == 0 {
		return false
	}
	p.offset = max(0, p.offset-p.pageSize)
	p.cursor = p.offset
	return true
}

// VisibleRange returns the [start, end) indices of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.offset, min(p.offset+p.pageSize, p.total)
}

// TotalPages returns the number of pages, at least 1
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the 1-based page number
func (p *Paginator) CurrentPage() int {
	return p.offset/p.pageSize + 1
}

// follow moves the page window so it contains the cursor
func (p *Paginator) follow() {
	if p.cursor < p.offset || p.cursor >= p.offset+p.pageSize {
		p.offset = (p.cursor / p.pageSize) * p.pageSize
	}
}
