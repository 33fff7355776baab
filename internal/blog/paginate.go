package blog

import "folio/internal/domain/content"

type Page struct {
	Items   []content.Entry
	Number  int
	Last    int
	Size    int
	Total   int
	HasPrev bool
	HasNext bool
	IsFirst bool
	IsLast  bool
}

// Paginate slices entries into 1-based pages of size. Out of range page
// numbers are clamped; an empty list still has one (empty) page.
func Paginate(entries []content.Entry, page, size int) Page {
	if size <= 0 {
		size = PaginationSize
	}
	last := (len(entries) + size - 1) / size
	if last < 1 {
		last = 1
	}
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}

	start := (page - 1) * size
	end := min(start+size, len(entries))
	var items []content.Entry
	if start < end {
		items = entries[start:end]
	}

	return Page{
		Items:   items,
		Number:  page,
		Last:    last,
		Size:    size,
		Total:   len(entries),
		HasPrev: page > 1,
		HasNext: page < last,
		IsFirst: page == 1,
		IsLast:  page == last,
	}
}
