package models

import (
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
)

// Booking intervals are half-open: [StartTime, EndTime). Two bookings that
// touch at an endpoint do not overlap.
type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoomID    uint      `json:"roomId" gorm:"index"`
	Room      Room      `json:"room" gorm:"foreignKey:RoomID"`
	StartTime time.Time `json:"startTime" gorm:"index"`
	EndTime   time.Time `json:"endTime" gorm:"index"`
	Purpose   string    `json:"purpose" gorm:"size:200"`
	Status    string    `json:"status" gorm:"size:20;default:pending;index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Active reports whether the booking counts toward conflicts and room
// status.
func (b *Booking) Active() bool {
	return b.Status == constants.BookingStatusPending || b.Status == constants.BookingStatusConfirmed
}

// Terminal reports whether the booking is frozen.
func (b *Booking) Terminal() bool {
	return constants.IsTerminalBookingStatus(b.Status)
}

// Overlaps reports whether [start, end) intersects the booking's interval.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}
