package domain

import "strings"

// SortMode controls the ordering of job search results
type SortMode string

const (
	SortNewest       SortMode = "newest"
	SortOldest       SortMode = "oldest"
	SortApplications SortMode = "applications"
)

// ParseSortMode maps a raw query value to a SortMode.
// Unknown or empty values fall back to SortNewest.
func ParseSortMode(raw string) SortMode {
	switch SortMode(strings.TrimSpace(raw)) {
	case SortOldest:
		return SortOldest
	case SortApplications:
		return SortApplications
	default:
		return SortNewest
	}
}

// Criteria holds the optional filters of a job search.
// Empty fields place no constraint on their dimension.
type Criteria struct {
	Search         string
	Category       string
	Location       string
	EmploymentType string
	Sort           SortMode
}

// Normalize trims every filter and resolves the sort mode.
func (c Criteria) Normalize() Criteria {
	return Criteria{
		Search:         strings.TrimSpace(c.Search),
		Category:       strings.TrimSpace(c.Category),
		Location:       strings.TrimSpace(c.Location),
		EmploymentType: strings.TrimSpace(c.EmploymentType),
		Sort:           ParseSortMode(string(c.Sort)),
	}
}
