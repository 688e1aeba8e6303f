package views

// Paginator tracks the cursor over a filtered list and the window of
// rows currently on screen. The window scrolls just enough to keep the
// cursor visible; NextPage/PrevPage jump by a full window.
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
	cycle      bool
}

// NewPaginator creates a new paginator showing pageSize rows
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{
		pageSize: pageSize,
	}
}

// SetCycle makes the cursor wrap around at both ends
func (p *Paginator) SetCycle(cycle bool) {
	p.cycle = cycle
}

// SetPageSize changes the number of visible rows
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		size = 1
	}
	p.pageSize = size
	p.follow()
}

// SetTotal sets the number of rows, clamping the cursor
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	if p.cursor >= total {
		p.cursor = total - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.follow()
}

// Total returns the number of rows
func (p *Paginator) Total() int {
	return p.totalItems
}

// Cursor returns the current cursor position (absolute index)
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	switch {
	case p.cursor > 0:
		p.cursor--
	case p.cycle && p.totalItems > 1:
		p.cursor = p.totalItems - 1
	default:
		return false
	}
	p.follow()
	return true
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	switch {
	case p.cursor < p.totalItems-1:
		p.cursor++
	case p.cycle && p.totalItems > 1:
		p.cursor = 0
	default:
		return false
	}
	p.follow()
	return true
}

// VisibleRange returns the start and end indices of the rows on screen
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.pageOffset
	end = min(p.pageOffset+p.pageSize, p.totalItems)
	return
}

// NextPage moves the cursor one window down
func (p *Paginator) NextPage() bool {
	if p.cursor >= p.totalItems-1 {
		return false
	}
	p.cursor = min(p.cursor+p.pageSize, p.totalItems-1)
	p.follow()
	return true
}

// PrevPage moves the cursor one window up
func (p *Paginator) PrevPage() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor = max(p.cursor-p.pageSize, 0)
	p.follow()
	return true
}

// Reset puts the cursor back on the first row
func (p *Paginator) Reset() {
	p.cursor = 0
	p.pageOffset = 0
}

// follow scrolls the window so the cursor is inside it
func (p *Paginator) follow() {
	if p.cursor < p.pageOffset {
		p.pageOffset = p.cursor
	} else if p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = p.cursor - p.pageSize + 1
	}
	if maxOffset := max(p.totalItems-p.pageSize, 0); p.pageOffset > maxOffset {
		p.pageOffset = maxOffset
	}
}
