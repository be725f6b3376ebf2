package scholarship

import (
	"strings"

	"scholartrack/internal/models"
)

// SearchFilters narrows Search results. Filters compose with logical
// AND; a zero filter matches everything.
type SearchFilters struct {
	Category string
}

// Search returns the open scholarships matching query and filters.
// The query is a case-insensitive substring match over title,
// organization, and description; the category filter is an exact match.
func (s *Service) Search(query string, filters SearchFilters) []models.Scholarship {
	results := make([]models.Scholarship, 0)
	q := strings.ToLower(query)

	for _, sch := range s.states.State().Scholarships {
		if sch.Status != models.ScholarshipOpen {
			continue
		}
		if q != "" && !matchesQuery(sch, q) {
			continue
		}
		if filters.Category != "" && sch.Category != filters.Category {
			continue
		}
		results = append(results, sch)
	}
	return results
}

func matchesQuery(sch models.Scholarship, q string) bool {
	return strings.Contains(strings.ToLower(sch.Title), q) ||
		strings.Contains(strings.ToLower(sch.Organization), q) ||
		strings.Contains(strings.ToLower(sch.Description), q)
}
