package scholarship

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholartrack/internal/common"
	"scholartrack/internal/localstore"
	"scholartrack/internal/logging"
	"scholartrack/internal/models"
	"scholartrack/internal/state"
)

// newService returns a zero-latency Service over a fresh state store and
// in-memory local store.
func newService(t *testing.T) (*Service, *state.Store, *localstore.MemoryStore) {
	t.Helper()
	states := state.NewStore()
	store := localstore.NewMemoryStore()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(states, store, 0, log), states, store
}

func openCatalog() []models.Scholarship {
	return []models.Scholarship{
		{
			ID:           "1",
			Title:        "STEM Innovation Grant",
			Organization: "Institute of Engineers",
			Description:  "Supporting students pursuing STEM degrees.",
			Amount:       3000,
			Deadline:     models.MustDate("2030-11-30"),
			Category:     "STEM",
			Status:       models.ScholarshipOpen,
		},
		{
			ID:          "2",
			Title:       "Merit-Based Excellence Scholarship",
			Description: "For outstanding academic achievement.",
			Amount:      5000,
			Deadline:    models.MustDate("2030-12-31"),
			Category:    "Academic",
			Status:      models.ScholarshipOpen,
		},
		{
			ID:          "3",
			Title:       "Closed Legacy Fund",
			Description: "An old stem cell research stipend.",
			Amount:      1000,
			Deadline:    models.MustDate("2020-01-01"),
			Category:    "STEM",
			Status:      models.ScholarshipClosed,
		},
	}
}

func student() *models.Session {
	return &models.Session{ID: "stu-1", Email: "ada@example.com", Name: "Ada", Role: models.RoleStudent}
}

func TestSearch_CaseInsensitiveSubstring_OpenOnly(t *testing.T) {
	svc, states, _ := newService(t)
	states.Dispatch(state.SetScholarships{Scholarships: openCatalog()})

	got := svc.Search("stem", SearchFilters{})

	// The closed listing also mentions "stem" but must not appear.
	require.Len(t, got, 1)
	assert.Equal(t, "STEM Innovation Grant", got[0].Title)
}

func TestSearch_EmptyQuery_ReturnsAllOpen(t *testing.T) {
	svc, states, _ := newService(t)
	states.Dispatch(state.SetScholarships{Scholarships: openCatalog()})

	got := svc.Search("", SearchFilters{})
	require.Len(t, got, 2)
}

func TestSearch_CategoryFilterComposesWithAND(t *testing.T) {
	svc, states, _ := newService(t)
	states.Dispatch(state.SetScholarships{Scholarships: openCatalog()})

	got := svc.Search("scholarship", SearchFilters{Category: "STEM"})
	require.Empty(t, got)

	got = svc.Search("grant", SearchFilters{Category: "STEM"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestApply_CopiesScholarshipFieldsAndDefaults(t *testing.T) {
	svc, states, _ := newService(t)
	states.Dispatch(state.SetScholarships{Scholarships: openCatalog()})

	app, err := svc.Apply(context.Background(), student(), "1", ApplicationDraft{Essay: "why me", GPA: 3.7})
	require.NoError(t, err)

	assert.Equal(t, "STEM Innovation Grant", app.ScholarshipTitle)
	assert.Equal(t, float64(3000), app.Amount)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Equal(t, defaultProgress, app.Progress)
	assert.Equal(t, "why me", app.Essay)
	assert.Equal(t, 3.7, app.GPA)

	require.Len(t, states.State().Applications, 1)
}

func TestApply_UnknownScholarship_NotFound(t *testing.T) {
	svc, states, _ := newService(t)
	states.Dispatch(state.SetScholarships{Scholarships: openCatalog()})

	_, err := svc.Apply(context.Background(), student(), "missing", ApplicationDraft{})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestApply_SecondApplicationToSameScholarship_Blocked(t *testing.T) {
	svc, states, _ := newService(t)
	states.Dispatch(state.SetScholarships{Scholarships: openCatalog()})
	ctx := context.Background()

	_, err := svc.Apply(ctx, student(), "1", ApplicationDraft{})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, student(), "1", ApplicationDraft{})
	require.ErrorIs(t, err, common.ErrDuplicateApplication)
	require.Len(t, states.State().Applications, 1)

	// A different scholarship is fine.
	_, err = svc.Apply(ctx, student(), "2", ApplicationDraft{})
	require.NoError(t, err)
}

func TestApply_PersistsSnapshot(t *testing.T) {
	svc, states, store := newService(t)
	states.Dispatch(state.SetScholarships{Scholarships: openCatalog()})

	_, err := svc.Apply(context.Background(), student(), "1", ApplicationDraft{})
	require.NoError(t, err)

	blob, err := store.Get(context.Background(), localstore.KeyApplications)
	require.NoError(t, err)
	assert.Contains(t, blob, "STEM Innovation Grant")
}

func TestUpdateApplicationStatus_MissingID_IsNoOp(t *testing.T) {
	svc, states, _ := newService(t)
	states.Dispatch(state.SetApplications{Applications: []models.Application{
		{ID: "a", Status: models.ApplicationPending},
	}})

	require.NoError(t, svc.UpdateApplicationStatus(context.Background(), "missing", models.ApplicationApproved))
	assert.Equal(t, models.ApplicationPending, states.State().Applications[0].Status)
}

func TestUpdateApplicationStatus_SetsStatusAndNotifies(t *testing.T) {
	svc, states, _ := newService(t)
	states.Dispatch(state.SetApplications{Applications: []models.Application{
		{ID: "a", ScholarshipTitle: "STEM Innovation Grant", Status: models.ApplicationPending},
	}})

	require.NoError(t, svc.UpdateApplicationStatus(context.Background(), "a", models.ApplicationUnderReview))

	snapshot := states.State()
	assert.Equal(t, models.ApplicationUnderReview, snapshot.Applications[0].Status)
	require.Len(t, snapshot.Notifications, 1)
	assert.Contains(t, snapshot.Notifications[0].Message, "under review")
}

func TestAddScholarship_ValidatesAndNotifies(t *testing.T) {
	svc, states, _ := newService(t)

	_, err := svc.AddScholarship(context.Background(), models.Scholarship{Title: "X", Amount: -1, Deadline: models.MustDate("2030-01-01")})
	require.ErrorIs(t, err, common.ErrValidation)

	sch, err := svc.AddScholarship(context.Background(), models.Scholarship{
		Title: "New Grant", Amount: 2000, Deadline: models.MustDate("2030-01-01"), Category: "Academic",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sch.ID)
	assert.Equal(t, models.ScholarshipOpen, sch.Status)

	snapshot := states.State()
	require.Len(t, snapshot.Scholarships, 1)
	require.Len(t, snapshot.Notifications, 1)
	assert.Contains(t, snapshot.Notifications[0].Message, "New Grant")
}

func TestReviewFilter_ConjunctiveInclusiveBounds(t *testing.T) {
	apps := []models.Application{
		{ID: "a", GPA: 3.2},
		{ID: "b", GPA: 3.5},
		{ID: "c", GPA: 3.9},
	}

	min := 3.5
	got := FilterApplications(apps, ReviewFilter{MinGPA: &min})

	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestReviewFilter_AllBoundsMustHold(t *testing.T) {
	apps := []models.Application{
		{ID: "a", GPA: 3.9, GateScore: 500},
		{ID: "b", GPA: 3.9, GateScore: 700},
	}

	minGPA, minGate := 3.5, 650.0
	got := FilterApplications(apps, ReviewFilter{MinGPA: &minGPA, MinGateScore: &minGate})

	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestReviewFilter_NoBounds_MatchesEverything(t *testing.T) {
	apps := []models.Application{{ID: "a"}, {ID: "b"}}
	require.Len(t, FilterApplications(apps, ReviewFilter{}), 2)
}

func TestStats_TotalAwardedCountsApprovedOnly(t *testing.T) {
	apps := []models.Application{
		{StudentID: "s", Status: models.ApplicationApproved, Amount: 3000},
		{StudentID: "s", Status: models.ApplicationPending, Amount: 5000},
		{StudentID: "other", Status: models.ApplicationApproved, Amount: 9000},
	}

	st := Stats(apps, "s")
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 1, st.Approved)
	assert.Equal(t, 1, st.Pending)
	assert.Equal(t, float64(3000), st.TotalAwarded)
}

func TestCompetitionLevel_Buckets(t *testing.T) {
	assert.Equal(t, "low", CompetitionLevel(0, 30, 60))
	assert.Equal(t, "low", CompetitionLevel(29, 30, 60))
	assert.Equal(t, "medium", CompetitionLevel(30, 30, 60))
	assert.Equal(t, "medium", CompetitionLevel(59, 30, 60))
	assert.Equal(t, "high", CompetitionLevel(60, 30, 60))
}

func TestLoad_FirstRunSeedsAndPersists(t *testing.T) {
	svc, states, store := newService(t)

	require.NoError(t, svc.Load(context.Background()))

	snapshot := states.State()
	require.NotEmpty(t, snapshot.Scholarships)
	require.NotEmpty(t, snapshot.Applications)

	_, err := store.Get(context.Background(), localstore.KeyScholarships)
	require.NoError(t, err)
}

func TestLoad_HonorsPersistedSnapshot(t *testing.T) {
	svc, states, store := newService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, localstore.KeyScholarships, `[{"id":"only","title":"Only One","amount":1,"deadline":"2030-01-01","category":"X","status":"open"}]`))
	require.NoError(t, store.Set(ctx, localstore.KeyApplications, `[]`))

	require.NoError(t, svc.Load(ctx))

	snapshot := states.State()
	require.Len(t, snapshot.Scholarships, 1)
	assert.Equal(t, "only", snapshot.Scholarships[0].ID)
	assert.Empty(t, snapshot.Applications)
}

func TestPublishDeadlineAlerts_OpenListingsInsideWindowOnly(t *testing.T) {
	svc, states, _ := newService(t)
	now := time.Date(2030, 11, 27, 0, 0, 0, 0, time.UTC)

	states.Dispatch(state.SetScholarships{Scholarships: []models.Scholarship{
		{ID: "near", Title: "STEM Innovation Grant", Deadline: models.MustDate("2030-11-30"), Status: models.ScholarshipOpen},
		{ID: "far", Title: "Merit Award", Deadline: models.MustDate("2030-12-31"), Status: models.ScholarshipOpen},
		{ID: "closed-near", Title: "Closed Fund", Deadline: models.MustDate("2030-11-28"), Status: models.ScholarshipClosed},
		{ID: "past", Title: "Expired Grant", Deadline: models.MustDate("2030-11-01"), Status: models.ScholarshipOpen},
	}})

	svc.PublishDeadlineAlerts(now, 7)

	got := states.State().Notifications
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "STEM Innovation Grant")
	assert.Contains(t, got[0].Message, "3 days")
}

func TestPublishDeadlineAlerts_DeadlineTodayStillAlerts(t *testing.T) {
	svc, states, _ := newService(t)
	now := time.Date(2030, 11, 30, 0, 0, 0, 0, time.UTC)

	states.Dispatch(state.SetScholarships{Scholarships: []models.Scholarship{
		{ID: "today", Title: "Last Call Grant", Deadline: models.MustDate("2030-11-30"), Status: models.ScholarshipOpen},
	}})

	svc.PublishDeadlineAlerts(now, 7)

	require.Len(t, states.State().Notifications, 1)
	assert.Contains(t, states.State().Notifications[0].Message, "0 days")
}

func TestPersist_EmitsDebugTrail(t *testing.T) {
	states := state.NewStore()
	store := localstore.NewMemoryStore()

	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	svc := New(states, store, 0, log)

	_, err := svc.AddScholarship(context.Background(), models.Scholarship{
		Title: "X", Amount: 1, Deadline: models.MustDate("2030-01-01"),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "persisting catalog snapshot")
}

// End-to-end workflow: a student applies to a seeded scholarship, an
// admin approves it, and the student's Total Awarded grows by the
// scholarship amount.
func TestWorkflow_ApplyApproveAward(t *testing.T) {
	svc, states, _ := newService(t)
	ctx := context.Background()

	states.Dispatch(state.SetScholarships{Scholarships: []models.Scholarship{{
		ID: "1", Title: "STEM Innovation Grant", Amount: 3000,
		Deadline: models.MustDate("2030-11-30"), Status: models.ScholarshipOpen,
	}}})

	before := Stats(states.State().Applications, "stu-1").TotalAwarded

	app, err := svc.Apply(ctx, student(), "1", ApplicationDraft{GPA: 3.8})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Equal(t, float64(3000), app.Amount)

	require.NoError(t, svc.UpdateApplicationStatus(ctx, app.ID, models.ApplicationApproved))

	after := Stats(states.State().Applications, "stu-1").TotalAwarded
	assert.Equal(t, before+3000, after)
}
