package controllers

import (
	"strconv"
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/dto"
	"github.com/ahmadnzr/fintrack-by-ai/models"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parsePage(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toUserResponse(u *models.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

func toCategoryResponse(c models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Type:     c.Type,
		IsCustom: c.IsCustom,
		Icon:     c.Icon,
	}
}

func toTagResponses(tags []models.Tag) []dto.TagResponse {
	out := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.TagResponse{ID: t.ID, Name: t.Name})
	}
	return out
}

func toTransactionResponse(t models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            t.ID,
		Date:          formatTime(t.Date),
		Description:   t.Description,
		Amount:        t.Amount,
		Category:      toCategoryResponse(t.Category),
		Type:          t.Type,
		AttachmentURL: t.AttachmentURL,
		Tags:          toTagResponses(t.Tags),
	}
}

func toFacilityResponse(f models.Facility) dto.FacilityResponse {
	return dto.FacilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Icon:        f.Icon,
		CreatedAt:   formatTime(f.CreatedAt),
	}
}

func toFacilityResponses(facilities []models.Facility) []dto.FacilityResponse {
	out := make([]dto.FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, toFacilityResponse(f))
	}
	return out
}

func toRoomResponse(r models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Location:    r.Location,
		Status:      r.Status,
		Facilities:  toFacilityResponses(r.Facilities),
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func toBookingResponse(b models.Booking) dto.BookingResponse {
	room := toRoomResponse(b.Room)
	return dto.BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		StartTime: formatTime(b.StartTime),
		EndTime:   formatTime(b.EndTime),
		Purpose:   b.Purpose,
		Status:    b.Status,
		Room:      &room,
		User:      toUserResponse(b.User),
		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
	}
}

func toBookingResponses(bookings []models.Booking) []dto.BookingResponse {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}
