package models

import (
	"testing"
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
)

const oneHour = time.Hour

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestBookingStateTransitions(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		action     string
		wantStatus string
		wantErr    error
	}{
		{"confirm pending", constants.BookingStatusPending, "confirm", constants.BookingStatusConfirmed, nil},
		{"cancel pending", constants.BookingStatusPending, "cancel", constants.BookingStatusCancelled, nil},
		{"complete pending", constants.BookingStatusPending, "complete", "", ErrCompletePending},
		{"confirm confirmed", constants.BookingStatusConfirmed, "confirm", "", ErrAlreadyConfirmed},
		{"cancel confirmed", constants.BookingStatusConfirmed, "cancel", constants.BookingStatusCancelled, nil},
		{"complete confirmed", constants.BookingStatusConfirmed, "complete", constants.BookingStatusCompleted, nil},
		{"confirm cancelled", constants.BookingStatusCancelled, "confirm", "", ErrTerminalBooking},
		{"cancel cancelled", constants.BookingStatusCancelled, "cancel", "", ErrTerminalBooking},
		{"complete cancelled", constants.BookingStatusCancelled, "complete", "", ErrTerminalBooking},
		{"confirm completed", constants.BookingStatusCompleted, "confirm", "", ErrTerminalBooking},
		{"cancel completed", constants.BookingStatusCompleted, "cancel", "", ErrTerminalBooking},
		{"complete completed", constants.BookingStatusCompleted, "complete", "", ErrTerminalBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			state := GetBookingState(tt.from)

			var err error
			switch tt.action {
			case "confirm":
				err = state.Confirm(b)
			case "cancel":
				err = state.Cancel(b)
			case "complete":
				err = state.Complete(b)
			}

			if err != tt.wantErr {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && b.Status != tt.wantStatus {
				t.Errorf("got status %q, want %q", b.Status, tt.wantStatus)
			}
			if tt.wantErr != nil && b.Status != tt.from {
				t.Errorf("status changed to %q on rejected transition", b.Status)
			}
		})
	}
}

func TestBookingOverlaps(t *testing.T) {
	base := mustParse(t, "2026-09-01T10:00:00Z")
	booking := &Booking{
		StartTime: base,
		EndTime:   base.Add(oneHour),
	}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"identical interval", "2026-09-01T10:00:00Z", "2026-09-01T11:00:00Z", true},
		{"contained", "2026-09-01T10:15:00Z", "2026-09-01T10:45:00Z", true},
		{"overlaps start", "2026-09-01T09:30:00Z", "2026-09-01T10:30:00Z", true},
		{"overlaps end", "2026-09-01T10:30:00Z", "2026-09-01T11:30:00Z", true},
		{"adjacent before", "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z", false},
		{"adjacent after", "2026-09-01T11:00:00Z", "2026-09-01T12:00:00Z", false},
		{"disjoint", "2026-09-01T12:00:00Z", "2026-09-01T13:00:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.Overlaps(mustParse(t, tt.start), mustParse(t, tt.end))
			if got != tt.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestBookingActiveAndTerminal(t *testing.T) {
	active := map[string]bool{
		constants.BookingStatusPending:   true,
		constants.BookingStatusConfirmed: true,
		constants.BookingStatusCancelled: false,
		constants.BookingStatusCompleted: false,
	}
	for status, want := range active {
		b := &Booking{Status: status}
		if b.Active() != want {
			t.Errorf("Active() for %q = %v, want %v", status, b.Active(), want)
		}
		if b.Terminal() == want {
			t.Errorf("Terminal() for %q = %v, want %v", status, b.Terminal(), !want)
		}
	}
}
