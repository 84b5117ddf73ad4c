// ABOUTME: Tests for the booking engine's duration and price math
// ABOUTME: Covers the minimum-one-day rule, ceiling, inversion, and submission

package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentadesk/internal/client"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		name   string
		pickup time.Time
		ret    time.Time
		want   int
	}{
		{"identical dates charge one day", date("2024-06-01"), date("2024-06-01"), 1},
		{"two midnights apart", date("2024-06-01"), date("2024-06-03"), 2},
		{"one day", date("2024-06-01"), date("2024-06-02"), 1},
		{"week", date("2024-06-01"), date("2024-06-08"), 7},
		{"inverted range uses absolute value", date("2024-06-05"), date("2024-06-01"), 4},
		{"partial day rounds up", date("2024-06-01"), date("2024-06-02").Add(6 * time.Hour), 2},
		{"under a day rounds up to one", date("2024-06-01"), date("2024-06-01").Add(90 * time.Minute), 1},
		{"inverted partial day rounds up", date("2024-06-03").Add(6 * time.Hour), date("2024-06-01"), 3},
		{"month boundary", date("2024-06-28"), date("2024-07-02"), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationDays(tt.pickup, tt.ret); got != tt.want {
				t.Errorf("DurationDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDurationAlwaysAtLeastOne(t *testing.T) {
	base := date("2024-06-01")
	for hours := 0; hours <= 72; hours += 7 {
		d := DurationDays(base, base.Add(time.Duration(hours)*time.Hour))
		if d < 1 {
			t.Fatalf("duration %d for %dh range; must never drop below 1", d, hours)
		}
	}
}

func TestTotal(t *testing.T) {
	if got := Total(2, 45.0); got != 90.0 {
		t.Errorf("Total(2, 45) = %v, want 90", got)
	}
	if got := Total(1, 45.0); got != 45.0 {
		t.Errorf("Total(1, 45) = %v, want 45", got)
	}
	if got := Total(3, 19.99); got != 3*19.99 {
		t.Errorf("Total(3, 19.99) = %v, want %v", got, 3*19.99)
	}
}

// End-to-end pricing scenarios from the product contract.
func TestSummaryScenarios(t *testing.T) {
	car := &client.Car{CarID: "car-1", Title: "City Hatch", PricePerDay: 45.00}

	sameDay := Draft{Car: car, PickupDate: date("2024-06-01"), ReturnDate: date("2024-06-01")}
	if s := sameDay.Summary(); s.Days != 1 || s.Total != 45.00 {
		t.Errorf("same-day summary = %+v, want 1 day / 45.00", s)
	}

	twoDays := Draft{Car: car, PickupDate: date("2024-06-01"), ReturnDate: date("2024-06-03")}
	if s := twoDays.Summary(); s.Days != 2 || s.Total != 90.00 {
		t.Errorf("two-day summary = %+v, want 2 days / 90.00", s)
	}
}

func TestSummaryRecomputesOnChange(t *testing.T) {
	d := Draft{
		Car:        &client.Car{Title: "City Hatch", PricePerDay: 45},
		PickupDate: date("2024-06-01"),
		ReturnDate: date("2024-06-02"),
	}
	if s := d.Summary(); s.Total != 45 {
		t.Fatalf("expected 45, got %v", s.Total)
	}

	d.ReturnDate = date("2024-06-05")
	if s := d.Summary(); s.Days != 4 || s.Total != 180 {
		t.Errorf("after date change summary = %+v, want 4 days / 180", s)
	}

	d.Car = &client.Car{Title: "Estate", PricePerDay: 60}
	if s := d.Summary(); s.Total != 240 {
		t.Errorf("after car change total = %v, want 240", s.Total)
	}
}

func TestSummaryWithoutCar(t *testing.T) {
	d := Draft{PickupDate: date("2024-06-01"), ReturnDate: date("2024-06-03")}
	s := d.Summary()
	if s.Days != 2 || s.Total != 0 {
		t.Errorf("carless summary = %+v, want 2 days / 0 total", s)
	}
}

func validDraft() Draft {
	return Draft{
		Car:            &client.Car{CarID: "car-1", Title: "City Hatch", PricePerDay: 45},
		PickupDate:     date("2024-06-01"),
		ReturnDate:     date("2024-06-03"),
		PickupLocation: "Airport",
		ReturnLocation: "Downtown",
		ClientName:     "Ana Moreau",
		ClientEmail:    "ana@example.com",
		ClientPhone:    "+33 6 00 00 00 00",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		want   string
	}{
		{"valid draft", func(d *Draft) {}, ""},
		{"missing car", func(d *Draft) { d.Car = nil }, "no car selected"},
		{"missing name", func(d *Draft) { d.ClientName = "  " }, "name is required"},
		{"bad email", func(d *Draft) { d.ClientEmail = "not-an-email" }, "a valid email address is required"},
		{"missing phone", func(d *Draft) { d.ClientPhone = "" }, "phone number is required"},
		{"missing pickup location", func(d *Draft) { d.PickupLocation = "" }, "pickup location is required"},
		{"missing return location", func(d *Draft) { d.ReturnLocation = "" }, "return location is required"},
		{"missing dates", func(d *Draft) { d.PickupDate = time.Time{} }, "pickup and return dates are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := d.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("expected valid draft, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.want {
				t.Errorf("Validate() = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestRequestUsesISODates(t *testing.T) {
	d := validDraft()
	req := d.Request()
	if req.PickupDate != "2024-06-01T00:00:00Z" {
		t.Errorf("unexpected pickup date %q", req.PickupDate)
	}
	if req.ReturnDate != "2024-06-03T00:00:00Z" {
		t.Errorf("unexpected return date %q", req.ReturnDate)
	}
	if req.CarID != "car-1" {
		t.Errorf("unexpected car id %q", req.CarID)
	}
}

func TestSubmit_SuccessAndDraftPreservedOnFailure(t *testing.T) {
	fail := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Car not found"})
			return
		}
		json.NewEncoder(w).Encode(client.BookingConfirmation{
			Message: "Booking created successfully",
			Booking: client.Booking{BookingID: "b-1", TotalAmount: 90},
		})
	}))
	defer server.Close()

	api := client.New(server.URL, nil)
	d := validDraft()

	_, err := d.Submit(context.Background(), api)
	if err == nil {
		t.Fatal("expected first submit to fail")
	}
	// Entered data survives the failure for resubmission.
	if d.ClientName != "Ana Moreau" || d.Car == nil {
		t.Errorf("draft mutated on failure: %+v", d)
	}

	fail = false
	conf, err := d.Submit(context.Background(), api)
	if err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	if conf.Booking.BookingID != "b-1" {
		t.Errorf("unexpected confirmation %+v", conf)
	}
}

func TestSubmit_InvalidDraftDoesNotCallBackend(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	d := validDraft()
	d.ClientEmail = "nope"
	if _, err := d.Submit(context.Background(), client.New(server.URL, nil)); err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Error("backend must not be called for an invalid draft")
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-06-01"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseDate(" 2024-06-01 "); err != nil {
		t.Errorf("expected surrounding whitespace to be tolerated, got %v", err)
	}
	if _, err := ParseDate("01/06/2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
}
