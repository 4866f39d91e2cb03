package dto

type RoomRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location"`
	FacilityIDs []uint `json:"facilityIds"`
}

type RoomStatusRequest struct {
	Status string `json:"status"`
}

type RoomResponse struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Capacity    int                `json:"capacity"`
	Location    string             `json:"location,omitempty"`
	Status      string             `json:"status"`
	Facilities  []FacilityResponse `json:"facilities"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
}

type RoomFilters struct {
	Status      string
	MinCapacity int
	FacilityIDs []uint
	Search      string
	Page        int
	Limit       int
}
