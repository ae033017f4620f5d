package catalog

import "github.com/Modeva-Ecommerce/modeva-storefront/models"

// Page is one pagination slice of a filtered product sequence.
type Page struct {
	Items      []models.Product
	Number     int
	Size       int
	TotalCount int
	TotalPages int
}

// TotalPages returns ceil(count/size); 0 when count is 0.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count-1)/size + 1
}

// Paginate returns the slice [(page-1)*size, page*size) clamped to the sequence bounds.
// An out-of-range page yields an empty slice; callers clamp with ClampPage first.
func Paginate(items []models.Product, page, size int) Page {
	if size <= 0 {
		size = models.DefaultPageSize
	}
	result := Page{
		Items:      []models.Product{},
		Number:     page,
		Size:       size,
		TotalCount: len(items),
		TotalPages: TotalPages(len(items), size),
	}
	// page <= TotalPages <= len(items) keeps the offset arithmetic in range
	if page < 1 || page > result.TotalPages {
		return result
	}
	start := (page - 1) * size
	end := len(items)
	if size < end-start {
		end = start + size
	}
	result.Items = items[start:end]
	return result
}

// ClampPage clamps page into [1, totalPages]; 1 when there are no pages.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// WindowRadius is how many page numbers are shown on each side of the current page.
const WindowRadius = 2

// Window describes the pagination controls for the current page.
type Window struct {
	Current     int
	Total       int
	Pages       []int
	ShowFirst   bool
	LeadingGap  bool
	ShowLast    bool
	TrailingGap bool
	HasPrev     bool
	HasNext     bool
	Prev        int
	Next        int
}

// Visible reports whether any controls should be rendered.
func (w Window) Visible() bool {
	return w.Total > 1
}

// NewWindow builds the sliding window current±WindowRadius, with jump-to-first/last
// controls and ellipses when the window does not reach the boundaries.
func NewWindow(current, total int) Window {
	w := Window{Current: current, Total: total, Prev: current - 1, Next: current + 1}
	if total <= 0 {
		return w
	}
	start := current - WindowRadius
	if start < 1 {
		start = 1
	}
	end := current + WindowRadius
	if end > total {
		end = total
	}
	for i := start; i <= end; i++ {
		w.Pages = append(w.Pages, i)
	}
	w.ShowFirst = start > 1
	w.LeadingGap = start > 2
	w.ShowLast = end < total
	w.TrailingGap = end < total-1
	w.HasPrev = current > 1
	w.HasNext = current < total
	return w
}
