package scholarship

import "scholartrack/internal/models"

// StudentStats are the dashboard aggregates for one student.
type StudentStats struct {
	Total        int
	Pending      int
	UnderReview  int
	Approved     int
	Rejected     int
	TotalAwarded float64
}

// Stats aggregates the applications belonging to studentID. Approved
// applications contribute their amount to TotalAwarded.
func Stats(apps []models.Application, studentID string) StudentStats {
	var st StudentStats
	for _, app := range apps {
		if app.StudentID != studentID {
			continue
		}
		st.Total++
		switch app.Status {
		case models.ApplicationPending:
			st.Pending++
		case models.ApplicationUnderReview:
			st.UnderReview++
		case models.ApplicationApproved:
			st.Approved++
			st.TotalAwarded += app.Amount
		case models.ApplicationRejected:
			st.Rejected++
		}
	}
	return st
}

// CompetitionLevel buckets an applicant count into low/medium/high using
// the configured thresholds. The thresholds are presentation heuristics
// with no business rule behind them, so they arrive from config rather
// than being fixed here.
func CompetitionLevel(applicants, low, high int) string {
	switch {
	case applicants < low:
		return "low"
	case applicants < high:
		return "medium"
	default:
		return "high"
	}
}

// ApplicantCount counts the applications submitted against
// scholarshipID.
func ApplicantCount(apps []models.Application, scholarshipID string) int {
	count := 0
	for _, app := range apps {
		if app.ScholarshipID == scholarshipID {
			count++
		}
	}
	return count
}
