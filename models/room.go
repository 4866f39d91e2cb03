package models

import (
	"fmt"
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
)

// Room.status is derived from the set of active bookings, except for
// "maintenance" which is set administratively and never overwritten by
// reconciliation.
type Room struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"uniqueIndex;size:100"`
	Description string     `json:"description" gorm:"size:500"`
	Capacity    int        `json:"capacity"`
	Location    string     `json:"location" gorm:"size:200"`
	Status      string     `json:"status" gorm:"size:20;default:available"`
	Facilities  []Facility `json:"facilities" gorm:"many2many:room_facilities;"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusAvailable, constants.RoomStatusBooked, constants.RoomStatusMaintenance:
		return nil
	}
	return fmt.Errorf("invalid room status: %q", r.Status)
}
