// ABOUTME: Tests for the auth gateway
// ABOUTME: Verifies session adoption, detail extraction, and generic fallbacks

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentadesk/internal/client"
	"rentadesk/internal/session"
)

func newGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	store := session.NewStore(t.TempDir())
	return New(client.New(server.URL, store), store), store
}

func TestLogin_SuccessAdoptsSession(t *testing.T) {
	gw, store := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.AuthResponse{
			Token: "tok-1",
			User:  session.UserProfile{ID: "u-1", Email: "ana@agency.example", Role: session.RoleAgencyAdmin, AgencyID: "ag-1"},
		})
	})

	res := gw.Login(context.Background(), "ana@agency.example", "secret")
	if !res.OK {
		t.Fatalf("expected success, got message %q", res.Message)
	}

	tok, user, ok := store.Current()
	if !ok || tok != "tok-1" {
		t.Errorf("expected session token tok-1, got %q (ok=%v)", tok, ok)
	}
	if user.Role != session.RoleAgencyAdmin {
		t.Errorf("expected agency_admin role, got %s", user.Role)
	}
}

func TestLogin_RejectedSurfacesDetail(t *testing.T) {
	gw, store := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	})

	res := gw.Login(context.Background(), "ana@agency.example", "wrong")
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Message != "Invalid credentials" {
		t.Errorf("expected server detail, got %q", res.Message)
	}
	if _, _, ok := store.Current(); ok {
		t.Error("expected no session after rejected login")
	}
}

func TestLogin_TransportFailureGenericMessage(t *testing.T) {
	store := session.NewStore(t.TempDir())
	gw := New(client.New("http://127.0.0.1:1", store), store)

	res := gw.Login(context.Background(), "ana@agency.example", "secret")
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Message != "Login failed" {
		t.Errorf("expected generic message, got %q", res.Message)
	}
}

func TestRegister_SuccessAdoptsSession(t *testing.T) {
	gw, store := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/register" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req client.RegisterRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(client.AuthResponse{
			Token: "tok-new",
			User:  session.UserProfile{ID: "u-2", Email: req.Email, Role: session.Role(req.Role)},
		})
	})

	res := gw.Register(context.Background(), client.RegisterRequest{
		Email: "kim@agency.example", Password: "secret", FirstName: "Kim", LastName: "Osei", Role: "staff",
	})
	if !res.OK {
		t.Fatalf("expected success, got %q", res.Message)
	}
	if user := store.User(); user == nil || user.Email != "kim@agency.example" {
		t.Errorf("expected registered user in session, got %+v", user)
	}
}

func TestRegister_DuplicateEmailDetail(t *testing.T) {
	gw, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
	})

	res := gw.Register(context.Background(), client.RegisterRequest{Email: "dup@agency.example"})
	if res.OK || res.Message != "Email already registered" {
		t.Errorf("expected duplicate-email detail, got %+v", res)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	gw, store := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.AuthResponse{Token: "tok-1", User: session.UserProfile{ID: "u-1"}})
	})

	gw.Login(context.Background(), "ana@agency.example", "secret")
	gw.Logout()

	if _, _, ok := store.Current(); ok {
		t.Error("expected logged-out state after Logout")
	}
}
