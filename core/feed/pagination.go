// ABOUTME: Pagination utilities for feed articles
// ABOUTME: Converts page/per_page query values into repository limit and offset

package feed

const (
	// DefaultPerPage is used when per_page is missing or invalid
	DefaultPerPage = 10

	// MaxPerPage caps a single page
	MaxPerPage = 100
)

// PageWindow returns the limit and offset for a 1-based page
func PageWindow(page, perPage int) (limit, offset int) {
	page, perPage = NormalizePage(page, perPage)
	return perPage, (page - 1) * perPage
}

// NormalizePage clamps page and perPage to valid values
func NormalizePage(page, perPage int) (int, int) {
	// Handle invalid page
	if page < 1 {
		page = 1
	}

	// Handle invalid perPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return page, perPage
}

// HasMore reports whether items exist beyond the given page
func HasMore(total, page, perPage int) bool {
	page, perPage = NormalizePage(page, perPage)
	return page*perPage < total
}
