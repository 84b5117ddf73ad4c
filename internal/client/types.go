// ABOUTME: Wire types for the car-rental SaaS API
// ABOUTME: Mirrors the backend's auth, agency, fleet, and booking payloads

package client

import "rentadesk/internal/session"

// LoginRequest carries credentials for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries a new account profile for POST /api/auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`
	AgencyID  string `json:"agency_id,omitempty"`
}

// AuthResponse is the shared login/register success payload.
type AuthResponse struct {
	Message string              `json:"message"`
	Token   string              `json:"token"`
	User    session.UserProfile `json:"user"`
}

// Agency is a tenant operating a fleet of cars.
type Agency struct {
	AgencyID    string `json:"agency_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Car is a single vehicle in an agency's fleet.
type Car struct {
	CarID       string   `json:"car_id"`
	Title       string   `json:"title"`
	Model       string   `json:"model"`
	Brand       string   `json:"brand"`
	Year        int      `json:"year"`
	PlateNumber string   `json:"plate_number"`
	Color       string   `json:"color"`
	PricePerDay float64  `json:"price_per_day"`
	Features    []string `json:"features,omitempty"`
	AgencyID    string   `json:"agency_id"`
	Status      string   `json:"status"`
}

// Booking is a reservation of one car for a date range.
type Booking struct {
	BookingID      string  `json:"booking_id"`
	CarID          string  `json:"car_id"`
	AgencyID       string  `json:"agency_id"`
	ClientName     string  `json:"client_name"`
	ClientEmail    string  `json:"client_email"`
	ClientPhone    string  `json:"client_phone"`
	PickupDate     string  `json:"pickup_date"`
	ReturnDate     string  `json:"return_date"`
	PickupLocation string  `json:"pickup_location"`
	ReturnLocation string  `json:"return_location"`
	Message        string  `json:"message,omitempty"`
	Status         string  `json:"status"`
	TotalAmount    float64 `json:"total_amount"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// BookingRequest is the public booking-creation payload.
// Dates are ISO-8601 strings.
type BookingRequest struct {
	CarID          string `json:"car_id"`
	ClientName     string `json:"client_name"`
	ClientEmail    string `json:"client_email"`
	ClientPhone    string `json:"client_phone"`
	PickupDate     string `json:"pickup_date"`
	ReturnDate     string `json:"return_date"`
	PickupLocation string `json:"pickup_location"`
	ReturnLocation string `json:"return_location"`
	Message        string `json:"message,omitempty"`
}

// BookingConfirmation is the booking-creation success payload.
type BookingConfirmation struct {
	Message string  `json:"message"`
	Booking Booking `json:"booking"`
}

// AgencyCatalog is the public per-agency storefront: the agency record plus
// its available cars. Agency is nil when the id is unknown to the backend.
type AgencyCatalog struct {
	Agency *Agency `json:"agency"`
	Cars   []Car   `json:"cars"`
}

// AgencyInput carries a new tenant for POST /api/admin/agencies.
type AgencyInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
}

// CarInput carries a new vehicle for POST /api/agency/cars.
type CarInput struct {
	Title       string   `json:"title"`
	Model       string   `json:"model"`
	Brand       string   `json:"brand"`
	Year        int      `json:"year"`
	PlateNumber string   `json:"plate_number"`
	Color       string   `json:"color"`
	PricePerDay float64  `json:"price_per_day"`
	Features    []string `json:"features"`
	AgencyID    string   `json:"agency_id"`
}

// Analytics is the platform-wide roll-up for the super-admin dashboard.
type Analytics struct {
	TotalAgencies  int `json:"total_agencies"`
	ActiveAgencies int `json:"active_agencies"`
	TotalCars      int `json:"total_cars"`
	TotalBookings  int `json:"total_bookings"`
}

// HealthResponse is the /api/health payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type carsResponse struct {
	Cars []Car `json:"cars"`
}

type bookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

type agenciesResponse struct {
	Agencies []Agency `json:"agencies"`
}

type agencyCreatedResponse struct {
	Message string `json:"message"`
	Agency  Agency `json:"agency"`
}

type carCreatedResponse struct {
	Message string `json:"message"`
	Car     Car    `json:"car"`
}
