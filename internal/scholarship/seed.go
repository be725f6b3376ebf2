package scholarship

import (
	"time"

	"scholartrack/internal/models"
)

// seedScholarships is the demo catalog installed on first run, before
// any admin has posted listings.
func seedScholarships() []models.Scholarship {
	return []models.Scholarship{
		{
			ID:           "seed-merit",
			Title:        "Merit-Based Excellence Scholarship",
			Organization: "University Excellence Program",
			Description:  "Awarded to students demonstrating outstanding academic achievement and leadership potential.",
			Amount:       5000,
			Deadline:     models.MustDate("2025-12-31"),
			Eligibility:  "3.5+ GPA, Full-time student, Leadership experience",
			Requirements: []string{"Essay", "Transcript", "2 Letters of Recommendation"},
			Category:     "Academic",
			Status:       models.ScholarshipOpen,
		},
		{
			ID:           "seed-stem",
			Title:        "STEM Innovation Grant",
			Organization: "Institute of Engineers",
			Description:  "Supporting students pursuing degrees in Science, Technology, Engineering, and Mathematics.",
			Amount:       3000,
			Deadline:     models.MustDate("2025-11-30"),
			Eligibility:  "STEM major, 3.2+ GPA",
			Requirements: []string{"Technical Essay", "Transcript"},
			Category:     "STEM",
			Status:       models.ScholarshipOpen,
		},
		{
			ID:           "seed-arts",
			Title:        "Arts & Culture Scholarship",
			Organization: "Creative Foundation",
			Description:  "Supporting students pursuing degrees in arts, music, theater, and cultural studies.",
			Amount:       5000,
			Deadline:     models.MustDate("2025-10-20"),
			Eligibility:  "Arts major, Portfolio submission, 3.0+ GPA",
			Requirements: []string{"Portfolio", "Personal Statement", "Transcript"},
			Category:     "Arts",
			Status:       models.ScholarshipOpen,
		},
	}
}

// seedApplications is the demo review queue installed on first run so an
// admin sees the workflow before any real student has applied.
func seedApplications() []models.Application {
	return []models.Application{
		{
			ID:               "seed-app-1",
			StudentName:      "John Smith",
			Email:            "john.smith@university.edu",
			ScholarshipID:    "seed-merit",
			ScholarshipTitle: "Merit-Based Excellence Scholarship",
			SubmittedDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Amount:           5000,
			Status:           models.ApplicationPending,
			Progress:         defaultProgress,
			GPA:              3.9,
			Percentage:       92,
			TenthMarks:       95,
			InterMarks:       91,
			GateScore:        710,
		},
		{
			ID:               "seed-app-2",
			StudentName:      "Sarah Johnson",
			Email:            "sarah.j@university.edu",
			ScholarshipID:    "seed-stem",
			ScholarshipTitle: "STEM Innovation Grant",
			SubmittedDate:    time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC),
			Amount:           3000,
			Status:           models.ApplicationUnderReview,
			Progress:         defaultProgress,
			GPA:              3.8,
			Percentage:       88,
			TenthMarks:       90,
			InterMarks:       87,
			GateScore:        680,
		},
	}
}
