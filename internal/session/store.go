// ABOUTME: Persistent session store for the rentadesk client
// ABOUTME: Keeps the bearer token and user profile in lock-step on disk

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role identifies what a user is allowed to see.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleAgencyAdmin Role = "agency_admin"
	RoleStaff       Role = "staff"
)

// UserProfile is the identity record returned by the auth endpoints.
// It is replaced wholesale on login and treated as immutable afterwards.
type UserProfile struct {
	ID        string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
	AgencyID  string `json:"agency_id,omitempty"`
}

// FullName returns the display name for the profile.
func (u *UserProfile) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// Store persists an opaque bearer token and the matching user profile.
// Token and profile exist together or not at all: Load erases any
// half-written or corrupt state instead of surfacing it.
type Store struct {
	stateDir string
	token    string
	user     *UserProfile
}

// NewStore creates a store rooted at the given state directory.
func NewStore(stateDir string) *Store {
	return &Store{stateDir: stateDir}
}

// DefaultStateDir returns the state directory under the user config dir.
func DefaultStateDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rentadesk")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rentadesk")
}

func (s *Store) tokenPath() string { return filepath.Join(s.stateDir, tokenFile) }
func (s *Store) userPath() string  { return filepath.Join(s.stateDir, userFile) }

// Load restores the session from disk. A missing token, a missing profile,
// or a profile that fails to parse all resolve to the logged-out state, and
// whatever partial state was on disk is removed.
func (s *Store) Load() error {
	tok, tokErr := os.ReadFile(s.tokenPath())
	userData, userErr := os.ReadFile(s.userPath())

	if tokErr != nil || userErr != nil || len(tok) == 0 {
		return s.Clear()
	}

	var user UserProfile
	if err := json.Unmarshal(userData, &user); err != nil {
		return s.Clear()
	}

	s.token = strings.TrimSpace(string(tok))
	s.user = &user
	return nil
}

// Set persists and adopts a new authenticated state, replacing any prior one.
func (s *Store) Set(token string, user *UserProfile) error {
	if err := os.MkdirAll(s.stateDir, 0700); err != nil {
		return err
	}

	userData, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}

	if err := writeFileAtomic(s.tokenPath(), []byte(token), 0600); err != nil {
		return err
	}
	if err := writeFileAtomic(s.userPath(), userData, 0600); err != nil {
		// Keep the lock-step invariant: a token without a profile is corrupt.
		os.Remove(s.tokenPath())
		return err
	}

	s.token = token
	s.user = user
	return nil
}

// Clear removes persisted state and returns to the logged-out state.
// Both files are always removed together, never independently.
func (s *Store) Clear() error {
	s.token = ""
	s.user = nil

	tokErr := os.Remove(s.tokenPath())
	userErr := os.Remove(s.userPath())
	if tokErr != nil && !os.IsNotExist(tokErr) {
		return tokErr
	}
	if userErr != nil && !os.IsNotExist(userErr) {
		return userErr
	}
	return nil
}

// Current returns the active token and profile, and whether a session exists.
func (s *Store) Current() (string, *UserProfile, bool) {
	if s.token == "" || s.user == nil {
		return "", nil, false
	}
	return s.token, s.user, true
}

// User returns the active profile, or nil when logged out.
func (s *Store) User() *UserProfile {
	_, user, ok := s.Current()
	if !ok {
		return nil
	}
	return user
}

// Token implements the client credential source. The second return value
// reports whether a credential is available.
func (s *Store) Token() (string, bool) {
	tok, _, ok := s.Current()
	return tok, ok
}

// TokenExpiry peeks at the unverified exp claim of the stored token.
// This is advisory display data only; the token itself stays opaque and
// the backend remains the sole authority on its validity.
func (s *Store) TokenExpiry() (time.Time, bool) {
	tok, _, ok := s.Current()
	if !ok {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
