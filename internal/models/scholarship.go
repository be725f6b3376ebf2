package models

// ScholarshipStatus tells whether a listing accepts applications.
type ScholarshipStatus string

const (
	ScholarshipOpen   ScholarshipStatus = "open"
	ScholarshipClosed ScholarshipStatus = "closed"
)

// Scholarship is a catalog listing. Amount is in whole currency units.
type Scholarship struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Organization string            `json:"organization,omitempty"`
	Description  string            `json:"description"`
	Amount       float64           `json:"amount"`
	Deadline     Date              `json:"deadline"`
	Eligibility  string            `json:"eligibility,omitempty"`
	Requirements []string          `json:"requirements,omitempty"`
	Category     string            `json:"category"`
	Status       ScholarshipStatus `json:"status"`
}
