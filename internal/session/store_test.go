// ABOUTME: Tests for the persistent session store
// ABOUTME: Validates round-trips, lock-step clearing, and corrupt-state recovery

package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testUser() *UserProfile {
	return &UserProfile{
		ID:        "u-1",
		Email:     "ana@agency.example",
		FirstName: "Ana",
		LastName:  "Moreau",
		Role:      RoleAgencyAdmin,
		AgencyID:  "ag-1",
	}
}

func TestSetThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.Set("tok-abc", testUser()); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	// Simulated reload: a fresh store over the same directory.
	reloaded := NewStore(dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tok, user, ok := reloaded.Current()
	if !ok {
		t.Fatal("expected authenticated state after reload")
	}
	if tok != "tok-abc" {
		t.Errorf("expected token tok-abc, got %q", tok)
	}
	if user.Email != "ana@agency.example" {
		t.Errorf("expected email ana@agency.example, got %q", user.Email)
	}
	if user.Role != RoleAgencyAdmin {
		t.Errorf("expected role agency_admin, got %q", user.Role)
	}
	if user.AgencyID != "ag-1" {
		t.Errorf("expected agency ag-1, got %q", user.AgencyID)
	}
}

func TestClearThenLoadIsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.Set("tok-abc", testUser()); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	reloaded := NewStore(dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, _, ok := reloaded.Current(); ok {
		t.Error("expected logged-out state after Clear")
	}
}

func TestLoadEmptyDirIsLoggedOut(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, _, ok := store.Current(); ok {
		t.Error("expected logged-out state for empty state dir")
	}
	if _, ok := store.Token(); ok {
		t.Error("expected no credential for empty state dir")
	}
}

func TestLoadCorruptUserClearsBothFiles(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, tokenFile), []byte("tok-abc"), 0600)
	os.WriteFile(filepath.Join(dir, userFile), []byte("{not json"), 0600)

	store := NewStore(dir)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, _, ok := store.Current(); ok {
		t.Error("expected logged-out state for corrupt profile")
	}

	// Both keys must be gone: a second load must see nothing.
	if _, err := os.Stat(filepath.Join(dir, tokenFile)); !os.IsNotExist(err) {
		t.Error("expected token file to be removed")
	}
	if _, err := os.Stat(filepath.Join(dir, userFile)); !os.IsNotExist(err) {
		t.Error("expected user file to be removed")
	}

	again := NewStore(dir)
	again.Load()
	if _, ok := again.Token(); ok {
		t.Error("expected no residual credential after corrupt-state recovery")
	}
}

func TestLoadTokenWithoutUserClearsToken(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, tokenFile), []byte("tok-abc"), 0600)

	store := NewStore(dir)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, _, ok := store.Current(); ok {
		t.Error("expected logged-out state for token without profile")
	}
	if _, err := os.Stat(filepath.Join(dir, tokenFile)); !os.IsNotExist(err) {
		t.Error("expected orphan token file to be removed")
	}
}

func TestLoadUserWithoutTokenClearsUser(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, userFile), []byte(`{"user_id":"u-1"}`), 0600)

	store := NewStore(dir)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, _, ok := store.Current(); ok {
		t.Error("expected logged-out state for profile without token")
	}
	if _, err := os.Stat(filepath.Join(dir, userFile)); !os.IsNotExist(err) {
		t.Error("expected orphan user file to be removed")
	}
}

func TestSetOverwritesPriorSession(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	store.Set("tok-1", testUser())
	second := &UserProfile{ID: "u-2", Email: "root@platform.example", Role: RoleSuperAdmin}
	if err := store.Set("tok-2", second); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	tok, user, ok := store.Current()
	if !ok || tok != "tok-2" || user.ID != "u-2" {
		t.Errorf("expected second session to replace first, got token=%q user=%+v", tok, user)
	}
}

func TestTokenExpiry(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	store.Set(signed, testUser())

	got, ok := store.TokenExpiry()
	if !ok {
		t.Fatal("expected expiry from JWT-shaped token")
	}
	if !got.Equal(exp) {
		t.Errorf("expected expiry %v, got %v", exp, got)
	}
}

func TestTokenExpiryOpaqueToken(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Set("not-a-jwt", testUser())

	if _, ok := store.TokenExpiry(); ok {
		t.Error("expected no expiry for an opaque token")
	}
}

func TestDefaultStateDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	dir := DefaultStateDir()
	if dir != filepath.Join("/tmp/xdg-test", "rentadesk") {
		t.Errorf("unexpected state dir %q", dir)
	}
}

func TestFullName(t *testing.T) {
	u := testUser()
	if u.FullName() != "Ana Moreau" {
		t.Errorf("expected Ana Moreau, got %q", u.FullName())
	}
	empty := &UserProfile{}
	if empty.FullName() != "" {
		t.Errorf("expected empty name, got %q", empty.FullName())
	}
}
