// ABOUTME: Shared test helpers for the cmd package
// ABOUTME: Seeds sessions and points commands at throwaway state dirs

package cmd

import (
	"testing"

	"rentadesk/internal/session"
)

// useTempState points the session store at a fresh directory for one test
func useTempState(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("RENTADESK_STATE_DIR", dir)
	return dir
}

// seedSession persists a logged-in staff session into the state dir
func seedSession(t *testing.T, dir string, user *session.UserProfile) {
	t.Helper()
	store := session.NewStore(dir)
	if err := store.Set("test-token", user); err != nil {
		t.Fatalf("seeding session: %v", err)
	}
}

func staffProfile() *session.UserProfile {
	return &session.UserProfile{
		ID:        "user-1",
		Email:     "staff@coastal.example",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      session.RoleStaff,
		AgencyID:  "agency-1",
	}
}
