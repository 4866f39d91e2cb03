package constants

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Room status
const (
	RoomStatusAvailable   = "available"
	RoomStatusBooked      = "booked"
	RoomStatusMaintenance = "maintenance"
)

// Transaction and category types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
	TypeGeneral = "general"
)

// User settings defaults
const (
	DefaultTheme    = "light"
	DefaultLanguage = "en"
)

var (
	Themes    = []string{"light", "dark"}
	Languages = []string{"en", "id", "es"}
)

// ActiveBookingStatuses returns the statuses that count toward conflict
// detection and room-status reconciliation.
func ActiveBookingStatuses() []string {
	return []string{BookingStatusPending, BookingStatusConfirmed}
}

// IsTerminalBookingStatus reports whether a booking in this status is frozen.
func IsTerminalBookingStatus(status string) bool {
	return status == BookingStatusCancelled || status == BookingStatusCompleted
}

// IsBookingStatus reports whether the value is a known booking status.
func IsBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}
