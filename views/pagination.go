package views

import (
	"strconv"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// PageLink is one entry of the pagination bar. Ellipsis entries carry no page.
type PageLink struct {
	Label    string
	Page     int
	Href     string
	Active   bool
	Disabled bool
	Ellipsis bool
}

// Pagination is the rendered pagination bar; it is hidden when there is at most one page.
type Pagination struct {
	Visible bool
	Links   []PageLink
}

// NewPagination lays out Previous, the page window with its first/last jumps, and Next.
func NewPagination(w catalog.Window, state models.FilterState) Pagination {
	if !w.Visible() {
		return Pagination{}
	}
	link := func(label string, page int) PageLink {
		return PageLink{Label: label, Page: page, Href: href(state, page)}
	}
	gap := PageLink{Label: "...", Disabled: true, Ellipsis: true}

	links := make([]PageLink, 0, len(w.Pages)+6)

	prev := link("Previous", w.Prev)
	prev.Disabled = !w.HasPrev
	links = append(links, prev)

	if w.ShowFirst {
		links = append(links, link("1", 1))
		if w.LeadingGap {
			links = append(links, gap)
		}
	}
	for _, p := range w.Pages {
		l := link(strconv.Itoa(p), p)
		l.Active = p == w.Current
		links = append(links, l)
	}
	if w.ShowLast {
		if w.TrailingGap {
			links = append(links, gap)
		}
		links = append(links, link(strconv.Itoa(w.Total), w.Total))
	}

	next := link("Next", w.Next)
	next.Disabled = !w.HasNext
	links = append(links, next)

	return Pagination{Visible: true, Links: links}
}

func href(state models.FilterState, page int) string {
	q := state.Query(page)
	if q == "" {
		return "/"
	}
	return "/?" + q
}
