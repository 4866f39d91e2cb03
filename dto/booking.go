package dto

type BookingCreateRequest struct {
	RoomID    uint   `json:"roomId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Purpose   string `json:"purpose"`
}

// BookingUpdateRequest uses pointers so "field absent" and "field set to
// zero value" stay distinguishable.
type BookingUpdateRequest struct {
	Status    *string `json:"status"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Purpose   *string `json:"purpose"`
}

type BookingResponse struct {
	ID        uint          `json:"id"`
	UserID    uint          `json:"userId"`
	RoomID    uint          `json:"roomId"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Purpose   string        `json:"purpose"`
	Status    string        `json:"status"`
	Room      *RoomResponse `json:"room,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

type BookingFilters struct {
	Status    string
	RoomID    uint
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}
