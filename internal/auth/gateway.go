// ABOUTME: Auth gateway wrapping login and registration against the remote API
// ABOUTME: Hands successful credentials to the session store, never raises errors

package auth

import (
	"context"
	"errors"
	"log/slog"

	"rentadesk/internal/client"
	"rentadesk/internal/session"
)

// Result is the discriminated outcome of an auth operation.
// Callers receive this instead of an error.
type Result struct {
	OK      bool
	Message string
}

// Gateway wraps the auth endpoints and keeps the session store in sync.
type Gateway struct {
	api   *client.Client
	store *session.Store
}

// New creates a gateway over the given API client and session store.
func New(api *client.Client, store *session.Store) *Gateway {
	return &Gateway{api: api, store: store}
}

// Login authenticates with the backend. On success the session store adopts
// the returned token and profile. On any failure the result carries the
// backend's detail message when one was provided, else a generic one.
func (g *Gateway) Login(ctx context.Context, email, password string) Result {
	resp, err := g.api.Login(ctx, email, password)
	if err != nil {
		return failure(err, "Login failed")
	}
	if err := g.store.Set(resp.Token, &resp.User); err != nil {
		slog.Error("persisting session failed", "error", err)
		return Result{Message: "Login failed"}
	}
	return Result{OK: true}
}

// Register creates an account. Same contract shape as Login.
func (g *Gateway) Register(ctx context.Context, input client.RegisterRequest) Result {
	resp, err := g.api.Register(ctx, input)
	if err != nil {
		return failure(err, "Registration failed")
	}
	if err := g.store.Set(resp.Token, &resp.User); err != nil {
		slog.Error("persisting session failed", "error", err)
		return Result{Message: "Registration failed"}
	}
	return Result{OK: true}
}

// Logout clears the session. Always succeeds; a failed file removal still
// leaves the in-memory state logged out.
func (g *Gateway) Logout() {
	if err := g.store.Clear(); err != nil {
		slog.Warn("clearing persisted session failed", "error", err)
	}
}

// failure maps an API client error to a user-facing result. Application
// rejections surface the server's detail; transport failures get the
// generic per-operation message.
func failure(err error, generic string) Result {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return Result{Message: apiErr.Detail}
	}
	slog.Debug("auth request failed", "error", err)
	return Result{Message: generic}
}
