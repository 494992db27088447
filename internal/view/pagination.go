package view

// PageLink is one entry of the pagination bar. Ellipsis entries have Page 0.
type PageLink struct {
	Page     int
	Current  bool
	Ellipsis bool
}

// Pagination lays out the page links for current out of total pages: all pages
// when there are at most seven, otherwise the ends plus the current
// neighbourhood with ellipses in between.
func Pagination(current, total int) []PageLink {
	var pages []int

	switch {
	case total <= 7:
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
	case current <= 3:
		pages = []int{1, 2, 3, 0, total - 1, total}
	case current >= total-2:
		pages = []int{1, 2, 0, total - 2, total - 1, total}
	default:
		pages = []int{1, 0, current - 1, current, current + 1, 0, total}
	}

	links := make([]PageLink, len(pages))
	for i, p := range pages {
		links[i] = PageLink{Page: p, Current: p == current, Ellipsis: p == 0}
	}

	return links
}
