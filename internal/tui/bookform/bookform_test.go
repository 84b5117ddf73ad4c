// ABOUTME: Tests for the booking wizard
// ABOUTME: Validates step advancement, draft collection, and error recovery

package bookform

import (
	"strings"
	"testing"

	"rentadesk/internal/booking"
	"rentadesk/internal/client"
)

func testCar() *client.Car {
	return &client.Car{
		CarID:       "car-1",
		Title:       "Toyota Corolla 2023",
		PricePerDay: 45.0,
		AgencyID:    "agency-1",
	}
}

func TestNewStartsAtDates(t *testing.T) {
	w := New(testCar())

	if w.step != 1 {
		t.Errorf("expected step 1, got %d", w.step)
	}
	if w.draft.Car.CarID != "car-1" {
		t.Errorf("expected car bound to draft, got %q", w.draft.Car.CarID)
	}
}

func TestAdvanceCollectsDates(t *testing.T) {
	w := New(testCar())
	w.pickupDate = "2026-09-15"
	w.returnDate = "2026-09-18"

	w.advanceStep()

	if w.step != 2 {
		t.Errorf("expected step 2 after dates, got %d", w.step)
	}
	if got := w.draft.PickupDate.Format(booking.DateFormat); got != "2026-09-15" {
		t.Errorf("expected pickup date parsed, got %q", got)
	}
	if got := w.draft.ReturnDate.Format(booking.DateFormat); got != "2026-09-18" {
		t.Errorf("expected return date parsed, got %q", got)
	}
}

func TestAdvanceCollectsLocationsAndContact(t *testing.T) {
	w := New(testCar())
	w.pickupDate = "2026-09-15"
	w.returnDate = "2026-09-18"
	w.advanceStep()

	w.pickupLoc = "Airport terminal"
	w.dropoffLoc = "Downtown office"
	w.advanceStep()

	if w.draft.PickupLocation != "Airport terminal" {
		t.Errorf("expected pickup location, got %q", w.draft.PickupLocation)
	}
	if w.draft.ReturnLocation != "Downtown office" {
		t.Errorf("expected return location, got %q", w.draft.ReturnLocation)
	}

	w.name = "  Ada Lovelace "
	w.email = "ada@example.com"
	w.phone = "+1 555 0100"
	w.advanceStep()

	if w.step != 4 {
		t.Errorf("expected step 4 after contact, got %d", w.step)
	}
	if w.draft.ClientName != "Ada Lovelace" {
		t.Errorf("expected trimmed client name, got %q", w.draft.ClientName)
	}

	if err := w.draft.Validate(); err != nil {
		t.Errorf("expected collected draft to validate, got %v", err)
	}
}

func TestSetErrorReturnsToReviewWithDraftIntact(t *testing.T) {
	w := New(testCar())
	w.pickupDate = "2026-09-15"
	w.returnDate = "2026-09-18"
	w.advanceStep()
	w.advanceStep()
	w.name = "Ada Lovelace"
	w.email = "ada@example.com"
	w.phone = "+1 555 0100"
	w.advanceStep()

	w.SetError("This car is not available for the selected dates")

	if w.step != 4 {
		t.Errorf("expected review step after error, got %d", w.step)
	}
	if w.draft.ClientName != "Ada Lovelace" {
		t.Error("expected draft preserved after submission failure")
	}
	if !strings.Contains(w.View(), "not available") {
		t.Error("expected view to show the failure message")
	}
}

func TestSummaryShowsDurationAndTotal(t *testing.T) {
	w := New(testCar())
	w.pickupDate = "2026-09-15"
	w.returnDate = "2026-09-18"
	w.advanceStep()

	view := w.View()
	if !strings.Contains(view, "3 day(s)") {
		t.Errorf("expected 3-day duration in summary, got:\n%s", view)
	}
	if !strings.Contains(view, "135.00") {
		t.Errorf("expected $135.00 total in summary, got:\n%s", view)
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2026-09-15", false},
		{" 2026-09-15 ", false},
		{"15/09/2026", true},
		{"not-a-date", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
