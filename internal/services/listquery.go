package services

import "strconv"

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListQuery is the normalized filter/sort/page state for a list request.
type ListQuery struct {
	Search string
	Status string
	Type   string
	Sort   string
	Page   int
	Limit  int
}

// ParseListQuery normalizes raw query-string values. Page and limit coerce to
// their defaults on anything non-numeric, zero, or negative; filters pass
// through ("" and "All" both mean unfiltered).
func ParseListQuery(search, status, typ, sort, page, limit string) ListQuery {
	return ListQuery{
		Search: search,
		Status: status,
		Type:   typ,
		Sort:   sort,
		Page:   parsePositive(page, defaultPage),
		Limit:  parsePositive(limit, defaultLimit),
	}
}

func parsePositive(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
