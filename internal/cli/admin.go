package cli

import (
	"context"
	"fmt"
	"strconv"

	"scholartrack/internal/models"
	"scholartrack/internal/scholarship"
	"scholartrack/internal/state"
)

// AddScholarship posts a new listing to the catalog.
func (a *App) AddScholarship(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	organization, err := GetSimpleText(a.reader, "Organization", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	amount, err := GetFloat(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	deadlineText, err := GetSimpleText(a.reader, "Deadline (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	deadline, err := models.ParseDate(deadlineText)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid deadline: %s\n", err.Error())
		return nil
	}
	category, err := GetSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}

	sch, err := a.catalog.AddScholarship(ctx, models.Scholarship{
		Title:        title,
		Organization: organization,
		Description:  description,
		Amount:       amount,
		Deadline:     deadline,
		Category:     category,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Could not add scholarship: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Added %s [%s]\n", sch.Title, sch.ID)
	return nil
}

// EditScholarship updates the listing with a given id. Empty answers
// keep the current value.
func (a *App) EditScholarship(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Scholarship id", a.out)
	if err != nil {
		return err
	}

	var current *models.Scholarship
	for _, sch := range a.states.State().Scholarships {
		if sch.ID == id {
			current = &sch
			break
		}
	}
	if current == nil {
		fmt.Fprintln(a.out, "No such scholarship")
		return nil
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Title [%s]", current.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		current.Title = title
	}

	amountText, err := GetSimpleText(a.reader, fmt.Sprintf("Amount [%.0f]", current.Amount), a.out)
	if err != nil {
		return err
	}
	if amountText != "" {
		amount, err := strconv.ParseFloat(amountText, 64)
		if err != nil {
			fmt.Fprintf(a.out, "not a number: %q\n", amountText)
			return nil
		}
		current.Amount = amount
	}

	statusText, err := GetSimpleText(a.reader, fmt.Sprintf("Status (open/closed) [%s]", current.Status), a.out)
	if err != nil {
		return err
	}
	if statusText != "" {
		current.Status = models.ScholarshipStatus(statusText)
	}

	if err := a.catalog.UpdateScholarship(ctx, *current); err != nil {
		fmt.Fprintf(a.out, "Update failed: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Updated")
	return nil
}

// DeleteScholarship removes a listing from the catalog.
func (a *App) DeleteScholarship(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Scholarship id", a.out)
	if err != nil {
		return err
	}
	if err := a.catalog.DeleteScholarship(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

// Review lists applications, optionally narrowed by the numeric-range
// filter over the academic metrics. Every bound is optional and
// inclusive; supplied bounds must all hold.
func (a *App) Review(ctx context.Context) error {
	var filter scholarship.ReviewFilter
	var err error

	if filter.MinGPA, err = GetOptionalFloat(a.reader, "Min GPA", a.out); err != nil {
		return err
	}
	if filter.MaxGPA, err = GetOptionalFloat(a.reader, "Max GPA", a.out); err != nil {
		return err
	}
	if filter.MinPercentage, err = GetOptionalFloat(a.reader, "Min percentage", a.out); err != nil {
		return err
	}
	if filter.MaxPercentage, err = GetOptionalFloat(a.reader, "Max percentage", a.out); err != nil {
		return err
	}
	if filter.MinTenthMarks, err = GetOptionalFloat(a.reader, "Min 10th marks", a.out); err != nil {
		return err
	}
	if filter.MaxTenthMarks, err = GetOptionalFloat(a.reader, "Max 10th marks", a.out); err != nil {
		return err
	}
	if filter.MinInterMarks, err = GetOptionalFloat(a.reader, "Min intermediate marks", a.out); err != nil {
		return err
	}
	if filter.MaxInterMarks, err = GetOptionalFloat(a.reader, "Max intermediate marks", a.out); err != nil {
		return err
	}
	if filter.MinGateScore, err = GetOptionalFloat(a.reader, "Min GATE score", a.out); err != nil {
		return err
	}
	if filter.MaxGateScore, err = GetOptionalFloat(a.reader, "Max GATE score", a.out); err != nil {
		return err
	}

	apps := scholarship.FilterApplications(a.states.State().Applications, filter)
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications match")
		return nil
	}
	for _, app := range apps {
		fmt.Fprintf(a.out, "[%s] %s | %s | GPA %.2f | %.0f%% | GATE %.0f | %s\n",
			app.ID, app.StudentName, app.ScholarshipTitle, app.GPA, app.Percentage, app.GateScore, app.Status)
	}
	return nil
}

// Approve marks an application approved.
func (a *App) Approve(ctx context.Context) error {
	return a.decide(ctx, models.ApplicationApproved)
}

// Reject marks an application rejected.
func (a *App) Reject(ctx context.Context) error {
	return a.decide(ctx, models.ApplicationRejected)
}

func (a *App) decide(ctx context.Context, status models.ApplicationStatus) error {
	id, err := GetSimpleText(a.reader, "Application id", a.out)
	if err != nil {
		return err
	}
	if err := a.catalog.UpdateApplicationStatus(ctx, id, status); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Application %s: %s\n", id, status)
	return nil
}

// Users lists every account except the acting admin's own.
func (a *App) Users(ctx context.Context) error {
	users, err := a.auth.ListUsers(ctx, a.Session())
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "[%s] %s <%s> %s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return nil
}

// CreateAdmin adds an administrator account stamped with the acting
// admin's id.
func (a *App) CreateAdmin(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}

	a.states.Dispatch(state.SetLoading{Loading: true})
	admin, err := a.auth.CreateAdmin(ctx, a.Session(), email, password, name)
	a.states.Dispatch(state.SetLoading{Loading: false})

	if err != nil {
		a.states.Dispatch(state.SetError{Message: err.Error()})
		fmt.Fprintf(a.out, "Could not create admin: %s\n", err.Error())
		return err
	}
	a.states.Dispatch(state.SetError{})
	fmt.Fprintf(a.out, "Admin %s created\n", admin.Email)
	return nil
}

// SetUserRole changes an account's role.
func (a *App) SetUserRole(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "User id", a.out)
	if err != nil {
		return err
	}
	roleText, err := GetSimpleText(a.reader, "New role (student/admin)", a.out)
	if err != nil {
		return err
	}
	role := models.Role(roleText)
	if !role.Valid() {
		fmt.Fprintln(a.out, "Unknown role")
		return nil
	}

	user, err := a.auth.UpdateUserRole(ctx, id, role)
	if err != nil {
		fmt.Fprintf(a.out, "Could not update role: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "%s is now %s\n", user.Email, user.Role)
	return nil
}

// DeleteUser removes an account. Deleting the acting admin's own
// account is rejected.
func (a *App) DeleteUser(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "User id", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.DeleteUser(ctx, a.Session(), id); err != nil {
		fmt.Fprintf(a.out, "Could not delete user: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "User deleted")
	return nil
}
