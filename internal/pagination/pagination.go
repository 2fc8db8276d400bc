// Package pagination owns the list-windowing rules shared by every
// collection endpoint.
package pagination

import "strconv"

// PageSize is the fixed number of items per page for all paginated lists.
const PageSize = 20

// ParsePage converts a raw query value into a 1-indexed page number.
// Missing, malformed, or non-positive values fall back to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// Window converts a 1-indexed page into SQL limit/offset values.
func Window(page int) (limit, offset int) {
	if page < 1 {
		page = 1
	}

	return PageSize, (page - 1) * PageSize
}

// Result is the envelope returned by every paginated list operation.
// TotalCount reflects the full owner-scoped filter, not the page.
type Result[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
}
