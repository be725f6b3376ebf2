package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scholartrack/internal/models"
)

func TestResolve_RedirectTable(t *testing.T) {
	studentSession := &models.Session{ID: "s", Role: models.RoleStudent}
	adminSession := &models.Session{ID: "a", Role: models.RoleAdmin}

	tests := []struct {
		name      string
		session   *models.Session
		requested Route
		want      Route
	}{
		{"landing is public", nil, RouteLanding, RouteLanding},
		{"landing with session", studentSession, RouteLanding, RouteLanding},

		{"login without session", nil, RouteLogin, RouteLogin},
		{"login redirects student to student dashboard", studentSession, RouteLogin, RouteStudent},
		{"login redirects admin to admin dashboard", adminSession, RouteLogin, RouteAdmin},
		{"signup without session", nil, RouteSignup, RouteSignup},
		{"signup redirects admin", adminSession, RouteSignup, RouteAdmin},

		{"student dashboard requires session", nil, RouteStudent, RouteLogin},
		{"student dashboard requires student role", adminSession, RouteStudent, RouteLogin},
		{"student dashboard with student", studentSession, RouteStudent, RouteStudent},

		{"admin dashboard requires session", nil, RouteAdmin, RouteLogin},
		{"admin dashboard requires admin role", studentSession, RouteAdmin, RouteLogin},
		{"admin dashboard with admin", adminSession, RouteAdmin, RouteAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.session, tt.requested))
		})
	}
}

func TestParseRoute_UnmatchedPathsGoToLanding(t *testing.T) {
	assert.Equal(t, RouteLanding, ParseRoute("nonsense"))
	assert.Equal(t, RouteLanding, ParseRoute(""))
	assert.Equal(t, RouteAdmin, ParseRoute("admin"))
	assert.Equal(t, RouteStudent, ParseRoute("student"))
}
