// File: services/catalog/filter.go
package catalog

import (
	"sort"
	"strings"

	"hometeam/models"
)

// PageSize is the fixed number of practitioners per browse page.
const PageSize = 9

// FilterCriteria describes the browse panel's state. Sets combine with AND
// across categories and OR within a category. A non-positive PriceMax means
// no price limit.
type FilterCriteria struct {
	Query        string
	PriceMax     float64
	Specialties  []string
	Approaches   []string
	Sports       []string
	SessionTypes []string
	SortBy       string // featured | price-low | price-high | name | rating
}

// ApplyFilters returns the filtered, sorted view of a practitioner
// collection. It has no side effects; rendering and pagination belong to the
// caller.
func ApplyFilters(practitioners []models.Practitioner, c FilterCriteria) []models.Practitioner {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	filtered := make([]models.Practitioner, 0, len(practitioners))
	for _, p := range practitioners {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if c.PriceMax > 0 && p.StartingPrice > c.PriceMax {
			continue
		}
		if len(c.Specialties) > 0 && !anyOverlap(c.Specialties, p.Specialties) {
			continue
		}
		if len(c.Approaches) > 0 && !anyOverlap(c.Approaches, p.Approaches) {
			continue
		}
		if len(c.Sports) > 0 && !anyOverlap(c.Sports, p.Sports) {
			continue
		}
		if len(c.SessionTypes) > 0 && !anyOverlap(c.SessionTypes, p.SessionTypes) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortPractitioners(filtered, c.SortBy)
	return filtered
}

// Paginate returns the 1-indexed page of a filtered list plus the total
// page count. An out-of-range page yields an empty slice.
func Paginate(list []models.Practitioner, page int) ([]models.Practitioner, int) {
	totalPages := (len(list) + PageSize - 1) / PageSize
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(list) {
		return []models.Practitioner{}, totalPages
	}
	end := start + PageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end], totalPages
}

func matchesQuery(p models.Practitioner, query string) bool {
	fields := make([]string, 0, 4+len(p.Specialties)+len(p.Approaches)+len(p.Sports))
	fields = append(fields, p.Name, p.Title, p.Location, p.Bio)
	fields = append(fields, p.Specialties...)
	fields = append(fields, p.Approaches...)
	fields = append(fields, p.Sports...)
	return strings.Contains(strings.ToLower(strings.Join(fields, " ")), query)
}

func anyOverlap(wanted, have []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}

// sortPractitioners orders in place. Every mode ends with name then id so
// the ordering is total and deterministic.
func sortPractitioners(list []models.Practitioner, sortBy string) {
	less := func(a, b models.Practitioner) bool {
		return byNameThenID(a, b)
	}

	switch sortBy {
	case "price-low":
		less = func(a, b models.Practitioner) bool {
			if a.StartingPrice != b.StartingPrice {
				return a.StartingPrice < b.StartingPrice
			}
			return byNameThenID(a, b)
		}
	case "price-high":
		less = func(a, b models.Practitioner) bool {
			if a.StartingPrice != b.StartingPrice {
				return a.StartingPrice > b.StartingPrice
			}
			return byNameThenID(a, b)
		}
	case "name":
		// default comparator
	case "rating":
		less = func(a, b models.Practitioner) bool {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return byNameThenID(a, b)
		}
	case "featured":
		fallthrough
	default:
		less = func(a, b models.Practitioner) bool {
			if a.Featured != b.Featured {
				return a.Featured
			}
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return byNameThenID(a, b)
		}
	}

	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
}

func byNameThenID(a, b models.Practitioner) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}
