package query

// Page slices items to the requested page. A pageSize of 0 is the explicit
// "show all" sentinel and returns the input unchanged for any page index.
// A page index past the end yields an empty slice, not an error.
func Page[T any](items []T, pageIndex, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	start := pageIndex * pageSize
	if pageIndex < 0 || start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount returns how many pages a collection spans. An empty collection
// still has one (empty) page, and the show-all sentinel is a single page.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
