// ABOUTME: HTTP client for the car-rental SaaS API
// ABOUTME: Wraps API calls with credential injection and error mapping for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// CredentialSource supplies the current bearer token, if any.
// The session store implements this; passing it in here keeps the
// credential lifecycle in one place instead of a process-wide header.
type CredentialSource interface {
	Token() (string, bool)
}

// Client is the API client for the car-rental backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialSource
}

// New creates a new API client. creds may be nil for public-only use.
func New(baseURL string, creds CredentialSource) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		creds: creds,
	}
}

// APIError is an application-level rejection from the backend.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

type apiErrorBody struct {
	Detail string `json:"detail"`
}

// Login calls POST /api/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/api/auth/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register calls POST /api/auth/register.
func (c *Client) Register(ctx context.Context, input RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/api/auth/register", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PublicAgencyCars calls GET /api/public/agencies/{id}/cars.
// The returned catalog has a nil Agency when the id is unknown.
func (c *Client) PublicAgencyCars(ctx context.Context, agencyID string) (*AgencyCatalog, error) {
	var catalog AgencyCatalog
	path := "/api/public/agencies/" + url.PathEscape(agencyID) + "/cars"
	if err := c.get(ctx, path, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// CreateBooking calls POST /api/public/bookings.
func (c *Client) CreateBooking(ctx context.Context, input BookingRequest) (*BookingConfirmation, error) {
	var conf BookingConfirmation
	if err := c.post(ctx, "/api/public/bookings", input, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// AgencyCars calls GET /api/agency/{id}/cars.
func (c *Client) AgencyCars(ctx context.Context, agencyID string) ([]Car, error) {
	var resp carsResponse
	path := "/api/agency/" + url.PathEscape(agencyID) + "/cars"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Cars, nil
}

// AgencyBookings calls GET /api/agency/{id}/bookings.
func (c *Client) AgencyBookings(ctx context.Context, agencyID string) ([]Booking, error) {
	var resp bookingsResponse
	path := "/api/agency/" + url.PathEscape(agencyID) + "/bookings"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

// CreateCar calls POST /api/agency/cars.
func (c *Client) CreateCar(ctx context.Context, input CarInput) (*Car, error) {
	var resp carCreatedResponse
	if err := c.post(ctx, "/api/agency/cars", input, &resp); err != nil {
		return nil, err
	}
	return &resp.Car, nil
}

// Agencies calls GET /api/admin/agencies.
func (c *Client) Agencies(ctx context.Context) ([]Agency, error) {
	var resp agenciesResponse
	if err := c.get(ctx, "/api/admin/agencies", &resp); err != nil {
		return nil, err
	}
	return resp.Agencies, nil
}

// CreateAgency calls POST /api/admin/agencies.
func (c *Client) CreateAgency(ctx context.Context, input AgencyInput) (*Agency, error) {
	var resp agencyCreatedResponse
	if err := c.post(ctx, "/api/admin/agencies", input, &resp); err != nil {
		return nil, err
	}
	return &resp.Agency, nil
}

// Analytics calls GET /api/admin/analytics.
func (c *Client) Analytics(ctx context.Context) (*Analytics, error) {
	var resp Analytics
	if err := c.get(ctx, "/api/admin/analytics", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health calls GET /api/health.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.get(ctx, "/api/health", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if c.creds != nil {
		if token, ok := c.creds.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("request failed", "method", req.Method, "path", req.URL.Path, "request_id", requestID, "error", err)
		return c.handleRequestError(req.Context(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.handleErrorResponse(resp)
		slog.Debug("request rejected", "method", req.Method, "path", req.URL.Path, "request_id", requestID, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts transport and context errors to user-facing messages.
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse extracts the backend's detail message when present.
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var body apiErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: body.Detail}
}
