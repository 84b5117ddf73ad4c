// ABOUTME: Tests for route guard decisions
// ABOUTME: Covers the protected-view table and public-only redirects by role

package guard

import (
	"testing"

	"rentadesk/internal/session"
)

func authed(role session.Role) Status {
	return Status{User: &session.UserProfile{ID: "u-1", Role: role}}
}

func TestProtected_DecisionTable(t *testing.T) {
	adminOnly := []session.Role{session.RoleSuperAdmin}
	agencyRoles := []session.Role{session.RoleAgencyAdmin, session.RoleStaff}

	tests := []struct {
		name    string
		status  Status
		allowed []session.Role
		want    Outcome
	}{
		{"loading never redirects", Status{Loading: true}, adminOnly, ShowLoading},
		{"unauthenticated goes to login", Status{}, adminOnly, RedirectLogin},
		{"staff on admin route is unauthorized not login", authed(session.RoleStaff), adminOnly, RedirectUnauthorized},
		{"agency admin on admin route is unauthorized", authed(session.RoleAgencyAdmin), adminOnly, RedirectUnauthorized},
		{"super admin on admin route is allowed", authed(session.RoleSuperAdmin), adminOnly, Allow},
		{"staff on agency route is allowed", authed(session.RoleStaff), agencyRoles, Allow},
		{"agency admin on agency route is allowed", authed(session.RoleAgencyAdmin), agencyRoles, Allow},
		{"super admin on agency route is unauthorized", authed(session.RoleSuperAdmin), agencyRoles, RedirectUnauthorized},
		{"unknown role on protected route is unauthorized", authed("intern"), agencyRoles, RedirectUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Protected(tt.status, tt.allowed...); got != tt.want {
				t.Errorf("Protected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPublicOnly_RedirectByRole(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   Outcome
	}{
		{"loading stays put", Status{Loading: true}, ShowLoading},
		{"logged out may view login", Status{}, Allow},
		{"super admin redirected to admin home", authed(session.RoleSuperAdmin), RedirectAdminHome},
		{"agency admin redirected to agency home", authed(session.RoleAgencyAdmin), RedirectAgencyHome},
		{"staff redirected to agency home", authed(session.RoleStaff), RedirectAgencyHome},
		{"unknown role falls through to agency home", authed("mystery"), RedirectAgencyHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PublicOnly(tt.status); got != tt.want {
				t.Errorf("PublicOnly() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	if RedirectUnauthorized.String() != "redirect-unauthorized" {
		t.Errorf("unexpected string %q", RedirectUnauthorized.String())
	}
}
