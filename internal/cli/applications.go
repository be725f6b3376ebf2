package cli

import (
	"context"
	"fmt"

	"scholartrack/internal/scholarship"
)

// MyApplications lists the active student's applications followed by the
// dashboard aggregates.
func (a *App) MyApplications(ctx context.Context) error {
	session := a.Session()
	apps := a.catalog.StudentApplications(session.ID)

	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications yet")
		return nil
	}

	for _, app := range apps {
		fmt.Fprintf(a.out, "[%s] %s | $%.0f | submitted %s | %s\n",
			app.ID, app.ScholarshipTitle, app.Amount,
			app.SubmittedDate.Format("2006-01-02"), app.Status)
	}

	stats := scholarship.Stats(a.states.State().Applications, session.ID)
	fmt.Fprintf(a.out, "Total: %d  Pending: %d  Approved: %d  Total Awarded: $%.0f\n",
		stats.Total, stats.Pending, stats.Approved, stats.TotalAwarded)
	return nil
}
