// ABOUTME: Route guard deciding render vs redirect from session state and allowed roles
// ABOUTME: Pure decision layer; navigation itself is the caller's concern

package guard

import "rentadesk/internal/session"

// Status is the session state a guard decision is made against.
// Loading means session restore has not finished yet; a nil User with
// Loading false means unauthenticated.
type Status struct {
	Loading bool
	User    *session.UserProfile
}

// Outcome is the guard's decision for a view.
type Outcome int

const (
	// Allow renders the requested view.
	Allow Outcome = iota
	// ShowLoading renders a neutral loading indicator; no navigation yet.
	ShowLoading
	// RedirectLogin replaces the current view with the login view.
	RedirectLogin
	// RedirectUnauthorized replaces the current view with the access-denied view.
	RedirectUnauthorized
	// RedirectAdminHome sends the user to the platform admin dashboard.
	RedirectAdminHome
	// RedirectAgencyHome sends the user to the agency dashboard.
	RedirectAgencyHome
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case ShowLoading:
		return "loading"
	case RedirectLogin:
		return "redirect-login"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	case RedirectAdminHome:
		return "redirect-admin-home"
	case RedirectAgencyHome:
		return "redirect-agency-home"
	default:
		return "unknown"
	}
}

// Protected decides access to a view restricted to the given roles.
// Wrong role lands on the unauthorized view, not the login view.
func Protected(s Status, allowed ...session.Role) Outcome {
	if s.Loading {
		return ShowLoading
	}
	if s.User == nil {
		return RedirectLogin
	}
	for _, role := range allowed {
		if s.User.Role == role {
			return Allow
		}
	}
	return RedirectUnauthorized
}

// PublicOnly decides access to a view meant for logged-out users, such as
// the login form. Authenticated users are redirected to their home by role.
// Unknown roles fall through to the agency home rather than being rejected:
// navigation fails open, data access is gated by the backend.
func PublicOnly(s Status) Outcome {
	if s.Loading {
		return ShowLoading
	}
	if s.User == nil {
		return Allow
	}
	return Home(s.User.Role)
}

// Home returns the dashboard redirect for a role.
func Home(role session.Role) Outcome {
	switch role {
	case session.RoleSuperAdmin:
		return RedirectAdminHome
	case session.RoleAgencyAdmin, session.RoleStaff:
		return RedirectAgencyHome
	default:
		return RedirectAgencyHome
	}
}
