package cli

import "scholartrack/internal/models"

// Route names a navigable view. The REPL has no URL bar, but the
// role-gating contract of the original navigation is kept intact:
// which roles may reach which views, and where everyone else lands.
type Route string

const (
	RouteLanding Route = "landing"
	RouteLogin   Route = "login"
	RouteSignup  Route = "signup"
	RouteStudent Route = "student"
	RouteAdmin   Route = "admin"
)

// ParseRoute maps a path name to a Route. Unmatched paths go to the
// landing view.
func ParseRoute(s string) Route {
	switch Route(s) {
	case RouteLogin, RouteSignup, RouteStudent, RouteAdmin, RouteLanding:
		return Route(s)
	default:
		return RouteLanding
	}
}

// DashboardFor returns the dashboard route for a session's role.
func DashboardFor(session *models.Session) Route {
	if session != nil && session.Role == models.RoleAdmin {
		return RouteAdmin
	}
	return RouteStudent
}

// Resolve applies the navigation guard: login and signup redirect an
// authenticated session to its role dashboard; the dashboards require a
// session with the matching role and otherwise redirect to login; the
// landing view is public.
func Resolve(session *models.Session, requested Route) Route {
	switch requested {
	case RouteLogin, RouteSignup:
		if session != nil {
			return DashboardFor(session)
		}
		return requested
	case RouteStudent:
		if session != nil && session.Role == models.RoleStudent {
			return RouteStudent
		}
		return RouteLogin
	case RouteAdmin:
		if session != nil && session.Role == models.RoleAdmin {
			return RouteAdmin
		}
		return RouteLogin
	default:
		return RouteLanding
	}
}
