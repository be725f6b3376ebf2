package cli

import (
	"context"
	"fmt"
	"time"

	"scholartrack/internal/models"
	"scholartrack/internal/scholarship"
	"scholartrack/internal/state"
)

// ListScholarships prints every open listing with deadline countdown and
// competition level.
func (a *App) ListScholarships(ctx context.Context) error {
	a.printScholarships(a.catalog.Search("", scholarship.SearchFilters{}))
	return nil
}

// SearchScholarships prompts for a query and category and prints the
// matching open listings.
func (a *App) SearchScholarships(ctx context.Context) error {
	query, err := GetSimpleText(a.reader, "Search query", a.out)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (empty = any)", a.out)
	if err != nil {
		return err
	}
	a.printScholarships(a.catalog.Search(query, scholarship.SearchFilters{Category: category}))
	return nil
}

func (a *App) printScholarships(items []models.Scholarship) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No scholarships found")
		return
	}
	apps := a.states.State().Applications
	now := time.Now()
	for _, sch := range items {
		days := sch.Deadline.DaysUntil(now)
		level := scholarship.CompetitionLevel(
			scholarship.ApplicantCount(apps, sch.ID),
			a.cfg.CompetitionLow, a.cfg.CompetitionHigh,
		)
		fmt.Fprintf(a.out, "[%s] %s | $%.0f | %s | deadline %s (%d days) | competition: %s\n",
			sch.ID, sch.Title, sch.Amount, sch.Category, sch.Deadline, days, level)
	}
}

// Apply submits an application for the active student: prompts for the
// scholarship id, an essay, and the academic metrics, then runs the
// submission through the workflow service.
func (a *App) Apply(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Scholarship id", a.out)
	if err != nil {
		return err
	}
	essay, err := GetSimpleText(a.reader, "Essay", a.out)
	if err != nil {
		return err
	}
	gpa, err := GetFloat(a.reader, "GPA", a.out)
	if err != nil {
		return err
	}
	percentage, err := GetFloat(a.reader, "Percentage", a.out)
	if err != nil {
		return err
	}
	tenth, err := GetFloat(a.reader, "10th marks (%)", a.out)
	if err != nil {
		return err
	}
	inter, err := GetFloat(a.reader, "Intermediate marks (%)", a.out)
	if err != nil {
		return err
	}
	gate, err := GetFloat(a.reader, "GATE score", a.out)
	if err != nil {
		return err
	}

	draft := scholarship.ApplicationDraft{
		Essay:      essay,
		GPA:        gpa,
		Percentage: percentage,
		TenthMarks: tenth,
		InterMarks: inter,
		GateScore:  gate,
	}

	a.states.Dispatch(state.SetLoading{Loading: true})
	application, err := a.catalog.Apply(ctx, a.Session(), id, draft)
	a.states.Dispatch(state.SetLoading{Loading: false})

	if err != nil {
		a.states.Dispatch(state.SetError{Message: err.Error()})
		fmt.Fprintf(a.out, "Application failed: %s\n", err.Error())
		return err
	}

	a.states.Dispatch(state.SetError{})
	fmt.Fprintf(a.out, "Applied to %s (status: %s)\n", application.ScholarshipTitle, application.Status)
	return nil
}
