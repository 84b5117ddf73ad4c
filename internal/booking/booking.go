// ABOUTME: Booking form engine: date-range duration and total-price derivation
// ABOUTME: Holds the in-progress draft and packages it for the public booking endpoint

package booking

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"strings"
	"time"

	"rentadesk/internal/client"
)

// DateFormat is the calendar-date layout used by the form fields.
const DateFormat = "2006-01-02"

// DurationDays computes the chargeable rental length: the absolute
// difference between the two dates in whole days, rounding any partial
// day up, never less than one. Identical dates are a one-day rental.
// Inverted ranges are tolerated via the absolute value; rejecting them
// is the date picker's concern, not the math layer's.
func DurationDays(pickup, ret time.Time) int {
	hours := math.Abs(ret.Sub(pickup).Hours())
	days := int(math.Ceil(hours / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Total is the rental price: duration times the car's daily rate.
// No currency rounding beyond the source precision.
func Total(days int, pricePerDay float64) float64 {
	return float64(days) * pricePerDay
}

// Draft is the in-progress, unsubmitted booking form state.
type Draft struct {
	Car            *client.Car
	PickupDate     time.Time
	ReturnDate     time.Time
	PickupLocation string
	ReturnLocation string
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	Message        string
}

// Summary is the derived pricing view of a draft. It is recomputed on
// every call and never stored, so it can't go stale.
type Summary struct {
	CarTitle    string
	PricePerDay float64
	Days        int
	Total       float64
}

// Summary derives duration and total from the current draft state.
func (d *Draft) Summary() Summary {
	s := Summary{Days: DurationDays(d.PickupDate, d.ReturnDate)}
	if d.Car != nil {
		s.CarTitle = d.Car.Title
		s.PricePerDay = d.Car.PricePerDay
		s.Total = Total(s.Days, d.Car.PricePerDay)
	}
	return s
}

// Validate checks the draft is submittable. It returns the first problem
// found, phrased for direct display.
func (d *Draft) Validate() error {
	if d.Car == nil {
		return fmt.Errorf("no car selected")
	}
	if strings.TrimSpace(d.ClientName) == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(d.ClientEmail); err != nil {
		return fmt.Errorf("a valid email address is required")
	}
	if strings.TrimSpace(d.ClientPhone) == "" {
		return fmt.Errorf("phone number is required")
	}
	if strings.TrimSpace(d.PickupLocation) == "" {
		return fmt.Errorf("pickup location is required")
	}
	if strings.TrimSpace(d.ReturnLocation) == "" {
		return fmt.Errorf("return location is required")
	}
	if d.PickupDate.IsZero() || d.ReturnDate.IsZero() {
		return fmt.Errorf("pickup and return dates are required")
	}
	return nil
}

// Request packages the draft for the public booking endpoint.
// Dates go over the wire as ISO-8601 timestamps.
func (d *Draft) Request() client.BookingRequest {
	return client.BookingRequest{
		CarID:          d.Car.CarID,
		ClientName:     d.ClientName,
		ClientEmail:    d.ClientEmail,
		ClientPhone:    d.ClientPhone,
		PickupDate:     d.PickupDate.UTC().Format(time.RFC3339),
		ReturnDate:     d.ReturnDate.UTC().Format(time.RFC3339),
		PickupLocation: d.PickupLocation,
		ReturnLocation: d.ReturnLocation,
		Message:        d.Message,
	}
}

// Submit validates the draft and posts it. The draft itself is left
// untouched on failure so the user can resubmit without re-entry.
func (d *Draft) Submit(ctx context.Context, api *client.Client) (*client.BookingConfirmation, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return api.CreateBooking(ctx, d.Request())
}

// ParseDate parses a calendar date entered in a form field.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("use YYYY-MM-DD")
	}
	return t, nil
}
