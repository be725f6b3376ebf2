package models

import "time"

// ApplicationStatus tracks the review lifecycle of a submission.
// Transitions out of pending/under review happen only through admin
// review actions.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationUnderReview ApplicationStatus = "under review"
	ApplicationApproved    ApplicationStatus = "approved"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// Application is a student's submission against an open scholarship.
// Title, organization and amount are copied from the scholarship at
// submission time so later catalog edits do not rewrite history.
type Application struct {
	ID               string            `json:"id"`
	StudentID        string            `json:"studentId"`
	StudentName      string            `json:"studentName"`
	Email            string            `json:"email,omitempty"`
	ScholarshipID    string            `json:"scholarshipId"`
	ScholarshipTitle string            `json:"scholarshipTitle"`
	Organization     string            `json:"organization,omitempty"`
	SubmittedDate    time.Time         `json:"submittedDate"`
	Amount           float64           `json:"amount"`
	Status           ApplicationStatus `json:"status"`
	Progress         int               `json:"progress"`
	Essay            string            `json:"essay,omitempty"`

	// Academic metrics supplied by the applicant.
	GPA        float64 `json:"gpa"`
	Percentage float64 `json:"percentage"`
	TenthMarks float64 `json:"tenthMarks"`
	InterMarks float64 `json:"interMarks"`
	GateScore  float64 `json:"gateScore"`
}
