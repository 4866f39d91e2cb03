package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/config"
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	"github.com/ahmadnzr/fintrack-by-ai/response"
	"github.com/ahmadnzr/fintrack-by-ai/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type cachedRoomList struct {
	Data  []dto.RoomResponse `json:"data"`
	Total int64              `json:"total"`
}

type RoomController struct {
	rooms *services.RoomService
	rdb   *redis.Client
}

func NewRoomController(rooms *services.RoomService, rdb *redis.Client) *RoomController {
	return &RoomController{rooms: rooms, rdb: rdb}
}

func roomFiltersFromQuery(c *gin.Context) dto.RoomFilters {
	f := dto.RoomFilters{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	f.Page, f.Limit = parsePage(c)

	if raw := c.Query("minCapacity"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			f.MinCapacity = v
		}
	}
	if raw := c.Query("facilities"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32); err == nil && id > 0 {
				f.FacilityIDs = append(f.FacilityIDs, uint(id))
			}
		}
	}
	return f
}

func roomListCacheable(filters dto.RoomFilters) bool {
	return filters.Status == "" && filters.Search == "" && filters.MinCapacity == 0 &&
		len(filters.FacilityIDs) == 0 && filters.Page == 1
}

// List godoc
// @Summary List rooms
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param minCapacity query int false "Minimum capacity"
// @Param facilities query string false "Comma-separated facility IDs"
// @Param search query string false "Fuzzy name search"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /rooms [get]
func (ctl *RoomController) List(c *gin.Context) {
	filters := roomFiltersFromQuery(c)

	useCache := roomListCacheable(filters)
	if useCache {
		var cached cachedRoomList
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, services.RoomListCacheKey, &cached); err == nil && cached.Data != nil {
			response.Paginated(c, cached.Data, cached.Total, filters.Page, filters.Limit)
			return
		}
	}

	rooms, total, suggestion, err := ctl.rooms.List(filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		data = append(data, toRoomResponse(r))
	}

	if suggestion != "" {
		c.JSON(http.StatusOK, gin.H{
			"data": data,
			"pagination": response.Pagination{
				Total:       total,
				Pages:       0,
				CurrentPage: filters.Page,
				Limit:       filters.Limit,
			},
			"suggestion": suggestion,
		})
		return
	}

	if useCache {
		_ = services.SetToRedis(config.Ctx, ctl.rdb, services.RoomListCacheKey,
			cachedRoomList{Data: data, Total: total}, 5*time.Minute)
	}

	response.Paginated(c, data, total, filters.Page, filters.Limit)
}

// Get godoc
// @Summary Get one room
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{id} [get]
func (ctl *RoomController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Room not found")
		return
	}

	room, err := ctl.rooms.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toRoomResponse(*room))
}

// Create godoc
// @Summary Create a room
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RoomRequest true "Room data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation or conflict error"
// @Router /rooms [post]
func (ctl *RoomController) Create(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	room, err := ctl.rooms.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctl.invalidate()
	response.Created(c, toRoomResponse(*room))
}

// Update godoc
// @Summary Update a room
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.RoomRequest true "Room data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{id} [put]
func (ctl *RoomController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Room not found")
		return
	}

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	room, err := ctl.rooms.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctl.invalidate()
	response.Success(c, toRoomResponse(*room))
}

// Delete godoc
// @Summary Delete a room without active bookings
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Conflict error"
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{id} [delete]
func (ctl *RoomController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Room not found")
		return
	}

	if err := ctl.rooms.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	ctl.invalidate()
	response.Success(c, gin.H{"deleted": true})
}

// SetStatus toggles a room in and out of maintenance.
// @Summary Toggle a room in or out of maintenance
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.RoomStatusRequest true "Requested status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{id}/status [put]
func (ctl *RoomController) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Room not found")
		return
	}

	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	room, err := ctl.rooms.SetStatus(id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctl.invalidate()
	response.Success(c, toRoomResponse(*room))
}

func (ctl *RoomController) invalidate() {
	_ = services.DeleteFromRedis(config.Ctx, ctl.rdb, services.RoomListCacheKey)
}
