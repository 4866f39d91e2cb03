package controllers

import (
	"strconv"
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/config"
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	"github.com/ahmadnzr/fintrack-by-ai/middleware"
	"github.com/ahmadnzr/fintrack-by-ai/response"
	"github.com/ahmadnzr/fintrack-by-ai/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type cachedBookingList struct {
	Data  []dto.BookingResponse `json:"data"`
	Total int64                 `json:"total"`
}

type BookingController struct {
	bookings *services.BookingService
	rdb      *redis.Client
}

func NewBookingController(bookings *services.BookingService, rdb *redis.Client) *BookingController {
	return &BookingController{bookings: bookings, rdb: rdb}
}

func bookingFiltersFromQuery(c *gin.Context) dto.BookingFilters {
	f := dto.BookingFilters{
		Status:    c.Query("status"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	f.Page, f.Limit = parsePage(c)

	if raw := c.Query("roomId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			f.RoomID = uint(id)
		}
	}
	return f
}

// List godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param roomId query int false "Filter by room"
// @Param startDate query string false "Bookings starting on or after this date"
// @Param endDate query string false "Bookings starting on or before this date"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /bookings [get]
func (ctl *BookingController) List(c *gin.Context) {
	userID := middleware.UserID(c)
	filters := bookingFiltersFromQuery(c)

	useCache := filters.Status == "" && filters.RoomID == 0 &&
		filters.StartDate == "" && filters.EndDate == "" && filters.Page == 1
	if useCache {
		var cached cachedBookingList
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, services.BookingListCacheKey(userID), &cached); err == nil && cached.Data != nil {
			response.Paginated(c, cached.Data, cached.Total, filters.Page, filters.Limit)
			return
		}
	}

	bookings, total, err := ctl.bookings.List(userID, filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := toBookingResponses(bookings)
	if useCache {
		_ = services.SetToRedis(config.Ctx, ctl.rdb, services.BookingListCacheKey(userID),
			cachedBookingList{Data: data, Total: total}, 2*time.Minute)
	}

	response.Paginated(c, data, total, filters.Page, filters.Limit)
}

// Get godoc
// @Summary Get one booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /bookings/{id} [get]
func (ctl *BookingController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Booking not found")
		return
	}

	booking, err := ctl.bookings.Get(middleware.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookingResponse(*booking))
}

// Create godoc
// @Summary Create a booking
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookingCreateRequest true "Booking data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation or conflict error"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Router /bookings [post]
func (ctl *BookingController) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	booking, err := ctl.bookings.Create(userID, &req, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toBookingResponse(*booking))
}

// Update godoc
// @Summary Update a booking's status, time or purpose
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.BookingUpdateRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation, conflict or state error"
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /bookings/{id} [put]
func (ctl *BookingController) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Booking not found")
		return
	}

	var req dto.BookingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	booking, err := ctl.bookings.Update(userID, id, &req, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookingResponse(*booking))
}

// Delete godoc
// @Summary Delete a pending or cancelled booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "State error"
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /bookings/{id} [delete]
func (ctl *BookingController) Delete(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Booking not found")
		return
	}

	if err := ctl.bookings.Delete(userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
