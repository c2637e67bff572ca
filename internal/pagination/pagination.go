// Package pagination implements fixed-size, 1-based page windowing over
// ordered result sets.
package pagination

// PageSize is the fixed number of items per feed page.
const PageSize = 10

// Window describes the resolved slice of an ordered sequence for one page
// request. Out-of-range page numbers clamp to the closest valid page rather
// than failing.
type Window struct {
	Page       int
	PageSize   int
	Offset     int
	TotalItems int64
	TotalPages int
}

// Resolve computes the window for the requested page over totalItems items.
// Pages below 1 resolve to the first page; pages beyond the end resolve to
// the last page. With zero items the window is page 1 with no offset.
func Resolve(page int, totalItems int64) Window {
	totalPages := int((totalItems + PageSize - 1) / PageSize)

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		page = 1
	}

	return Window{
		Page:       page,
		PageSize:   PageSize,
		Offset:     (page - 1) * PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
