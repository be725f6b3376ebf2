// Package scholarship implements the catalog and application workflow:
// admin catalog maintenance, search, application submission, and review
// status transitions. All state flows through the state store; durable
// snapshots mirror the catalog and application collections into the
// local store after every mutation.
package scholarship

import (
	"context"
	"time"

	"github.com/google/uuid"

	"scholartrack/internal/common"
	"scholartrack/internal/localstore"
	"scholartrack/internal/logging"
	"scholartrack/internal/models"
	"scholartrack/internal/notify"
	"scholartrack/internal/state"
	"scholartrack/internal/timex"
)

// defaultProgress is the profile-completion percentage a fresh
// application starts at, a presentation heuristic carried over from the
// original dashboards.
const defaultProgress = 65

// Service owns the scholarship catalog and the application collection.
type Service struct {
	states  *state.Store
	store   localstore.Store
	latency time.Duration
	log     logging.Logger
}

// New returns a Service dispatching into states and mirroring snapshots
// into store. latency applies to Apply, matching the emulated submit
// round-trip.
func New(states *state.Store, store localstore.Store, latency time.Duration, log logging.Logger) *Service {
	return &Service{states: states, store: store, latency: latency, log: log}
}

// ApplicationDraft carries the caller-supplied part of a submission.
type ApplicationDraft struct {
	Essay      string
	GPA        float64
	Percentage float64
	TenthMarks float64
	InterMarks float64
	GateScore  float64
}

// AddScholarship validates and appends a listing to the catalog. The id
// and open status are assigned here; amount must be non-negative and the
// deadline must be a real calendar date. A new-scholarship notification
// is published.
func (s *Service) AddScholarship(ctx context.Context, draft models.Scholarship) (models.Scholarship, error) {
	if draft.Title == "" || draft.Amount < 0 || draft.Deadline.IsZero() {
		return models.Scholarship{}, common.ErrValidation
	}

	draft.ID = uuid.NewString()
	draft.Status = models.ScholarshipOpen

	s.states.Dispatch(state.AddScholarship{Scholarship: draft})
	notify.Publish(s.states, notify.ScholarshipAdded(draft))

	if err := s.persistScholarships(ctx); err != nil {
		return models.Scholarship{}, err
	}
	s.log.Info(ctx, "scholarship added", "id", draft.ID, "title", draft.Title)
	return draft, nil
}

// UpdateScholarship replaces the listing with sch.ID. An id not present
// in the catalog leaves it unchanged.
func (s *Service) UpdateScholarship(ctx context.Context, sch models.Scholarship) error {
	if sch.Amount < 0 {
		return common.ErrValidation
	}
	s.states.Dispatch(state.UpdateScholarship{Scholarship: sch})
	return s.persistScholarships(ctx)
}

// DeleteScholarship removes the listing with id from the catalog.
func (s *Service) DeleteScholarship(ctx context.Context, id string) error {
	s.states.Dispatch(state.DeleteScholarship{ID: id})
	return s.persistScholarships(ctx)
}

// Apply submits an application by student against the scholarship with
// scholarshipID. An unresolvable id fails with common.ErrNotFound; a
// second application by the same student against the same scholarship
// fails with common.ErrDuplicateApplication. Title, organization and
// amount are copied from the listing; status starts pending.
func (s *Service) Apply(ctx context.Context, student *models.Session, scholarshipID string, draft ApplicationDraft) (*models.Application, error) {
	if err := timex.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	snapshot := s.states.State()

	var target *models.Scholarship
	for i := range snapshot.Scholarships {
		if snapshot.Scholarships[i].ID == scholarshipID {
			target = &snapshot.Scholarships[i]
			break
		}
	}
	if target == nil {
		return nil, common.ErrNotFound
	}

	for _, app := range snapshot.Applications {
		if app.ScholarshipID == scholarshipID && app.StudentID == student.ID {
			return nil, common.ErrDuplicateApplication
		}
	}

	application := models.Application{
		ID:               uuid.NewString(),
		StudentID:        student.ID,
		StudentName:      student.Name,
		Email:            student.Email,
		ScholarshipID:    target.ID,
		ScholarshipTitle: target.Title,
		Organization:     target.Organization,
		SubmittedDate:    time.Now(),
		Amount:           target.Amount,
		Status:           models.ApplicationPending,
		Progress:         defaultProgress,
		Essay:            draft.Essay,
		GPA:              draft.GPA,
		Percentage:       draft.Percentage,
		TenthMarks:       draft.TenthMarks,
		InterMarks:       draft.InterMarks,
		GateScore:        draft.GateScore,
	}

	next := make([]models.Application, 0, len(snapshot.Applications)+1)
	next = append(next, snapshot.Applications...)
	s.states.Dispatch(state.SetApplications{Applications: append(next, application)})

	if err := s.persistApplications(ctx); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "application submitted", "scholarship", target.ID, "student", student.ID)
	return &application, nil
}

// UpdateApplicationStatus sets the review status of the application with
// appID and publishes a status-change notification. A missing id is a
// no-op.
func (s *Service) UpdateApplicationStatus(ctx context.Context, appID string, status models.ApplicationStatus) error {
	snapshot := s.states.State()

	for _, app := range snapshot.Applications {
		if app.ID == appID {
			app.Status = status
			s.states.Dispatch(state.UpdateApplication{Application: app})
			notify.Publish(s.states, notify.StatusChanged(app))
			s.log.Info(ctx, "application status updated", "id", appID, "status", string(status))
			return s.persistApplications(ctx)
		}
	}
	return nil
}

// PublishDeadlineAlerts publishes a deadline-approaching notification
// for every open listing whose deadline falls within windowDays of now.
// Already-passed deadlines and closed listings are skipped.
func (s *Service) PublishDeadlineAlerts(now time.Time, windowDays int) {
	for _, sch := range s.states.State().Scholarships {
		if sch.Status != models.ScholarshipOpen {
			continue
		}
		days := sch.Deadline.DaysUntil(now)
		if days >= 0 && days <= windowDays {
			notify.Publish(s.states, notify.DeadlineApproaching(sch, days))
		}
	}
}

// StudentApplications returns the applications submitted by studentID.
func (s *Service) StudentApplications(studentID string) []models.Application {
	var out []models.Application
	for _, app := range s.states.State().Applications {
		if app.StudentID == studentID {
			out = append(out, app)
		}
	}
	return out
}
