package scholarship

import "scholartrack/internal/models"

// ReviewFilter is the admin review view's numeric-range filter. Each
// bound is optional; a nil bound is unconstrained. All supplied bounds
// must hold simultaneously, and every bound is inclusive.
type ReviewFilter struct {
	MinGPA *float64
	MaxGPA *float64

	MinPercentage *float64
	MaxPercentage *float64

	MinTenthMarks *float64
	MaxTenthMarks *float64

	MinInterMarks *float64
	MaxInterMarks *float64

	MinGateScore *float64
	MaxGateScore *float64
}

// Match reports whether app satisfies every supplied bound.
func (f ReviewFilter) Match(app models.Application) bool {
	return inRange(app.GPA, f.MinGPA, f.MaxGPA) &&
		inRange(app.Percentage, f.MinPercentage, f.MaxPercentage) &&
		inRange(app.TenthMarks, f.MinTenthMarks, f.MaxTenthMarks) &&
		inRange(app.InterMarks, f.MinInterMarks, f.MaxInterMarks) &&
		inRange(app.GateScore, f.MinGateScore, f.MaxGateScore)
}

func inRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// FilterApplications returns the applications matching f, preserving
// order.
func FilterApplications(apps []models.Application, f ReviewFilter) []models.Application {
	out := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if f.Match(app) {
			out = append(out, app)
		}
	}
	return out
}
