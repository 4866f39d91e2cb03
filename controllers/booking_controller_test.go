package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
	"github.com/ahmadnzr/fintrack-by-ai/middleware"
	"github.com/ahmadnzr/fintrack-by-ai/models"
	"github.com/ahmadnzr/fintrack-by-ai/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type bookingTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
	user   *models.User
	room   *models.Room
	token  string
}

func setupBookingAPI(t *testing.T) *bookingTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Facility{}, &models.Room{}, &models.Booking{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := &models.User{Email: "alice@example.com", Name: "Alice"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	room := &models.Room{Name: "Orion", Capacity: 8, Status: constants.RoomStatusAvailable}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}

	token, err := services.GenerateToken(user.ID, user.Email)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := services.NewBookingService(db, nil, nil, nil)
	ctl := NewBookingController(svc, nil)

	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(middleware.AuthMiddleware())
	group.GET("/bookings", ctl.List)
	group.GET("/bookings/:id", ctl.Get)
	group.POST("/bookings", ctl.Create)
	group.PUT("/bookings/:id", ctl.Update)
	group.DELETE("/bookings/:id", ctl.Delete)

	return &bookingTestEnv{db: db, router: router, user: user, room: room, token: token}
}

func (env *bookingTestEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func futureSlot(hours int) (string, string) {
	start := time.Now().Add(time.Duration(hours) * time.Hour).UTC().Truncate(time.Minute)
	return start.Format(time.RFC3339), start.Add(time.Hour).Format(time.RFC3339)
}

func TestBookingAPIRequiresAuth(t *testing.T) {
	env := setupBookingAPI(t)

	w := env.request(t, http.MethodGet, "/api/v1/bookings", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	w = env.request(t, http.MethodGet, "/api/v1/bookings", nil, "not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestBookingAPICreate(t *testing.T) {
	env := setupBookingAPI(t)
	start, end := futureSlot(24)

	w := env.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"roomId": env.room.ID, "startTime": start, "endTime": end, "purpose": "Planning",
	}, env.token)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
			Room   struct {
				Status string `json:"status"`
			} `json:"room"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Data.Status != constants.BookingStatusPending {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if resp.Data.Room.Status != constants.RoomStatusBooked {
		t.Errorf("room status in response = %q, want booked", resp.Data.Room.Status)
	}
}

func TestBookingAPIConflictEnvelope(t *testing.T) {
	env := setupBookingAPI(t)
	start, end := futureSlot(24)

	other := &models.User{Email: "bob@example.com"}
	if err := env.db.Create(other).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	startT, _ := time.Parse(time.RFC3339, start)
	endT, _ := time.Parse(time.RFC3339, end)
	blocker := &models.Booking{
		UserID: other.ID, RoomID: env.room.ID,
		StartTime: startT, EndTime: endT,
		Purpose: "Blocker", Status: constants.BookingStatusConfirmed,
	}
	if err := env.db.Create(blocker).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	w := env.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"roomId": env.room.ID, "startTime": start, "endTime": end, "purpose": "Clash",
	}, env.token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Error struct {
			Form []string `json:"_form"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Error.Form) != 1 ||
		resp.Error.Form[0] != "The room is already booked for the selected time period" {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}

func TestBookingAPIOwnership(t *testing.T) {
	env := setupBookingAPI(t)

	other := &models.User{Email: "bob@example.com"}
	if err := env.db.Create(other).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	foreign := &models.Booking{
		UserID: other.ID, RoomID: env.room.ID,
		StartTime: time.Now().Add(2 * time.Hour), EndTime: time.Now().Add(3 * time.Hour),
		Purpose: "Private", Status: constants.BookingStatusPending,
	}
	if err := env.db.Create(foreign).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	w := env.request(t, http.MethodGet, "/api/v1/bookings/1", nil, env.token)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403: %s", w.Code, w.Body.String())
	}

	w = env.request(t, http.MethodGet, "/api/v1/bookings/999", nil, env.token)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", w.Code, w.Body.String())
	}

	w = env.request(t, http.MethodGet, "/api/v1/bookings/not-a-number", nil, env.token)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for malformed id: %s", w.Code, w.Body.String())
	}
}

func TestBookingAPIUpdateAndDelete(t *testing.T) {
	env := setupBookingAPI(t)
	start, end := futureSlot(24)

	w := env.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"roomId": env.room.ID, "startTime": start, "endTime": end, "purpose": "Planning",
	}, env.token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}

	w = env.request(t, http.MethodPut, "/api/v1/bookings/1", gin.H{"status": "confirmed"}, env.token)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm: %d %s", w.Code, w.Body.String())
	}

	// Confirmed bookings cannot be deleted outright.
	w = env.request(t, http.MethodDelete, "/api/v1/bookings/1", nil, env.token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("delete confirmed: %d, want 400", w.Code)
	}

	w = env.request(t, http.MethodPut, "/api/v1/bookings/1", gin.H{"status": "cancelled"}, env.token)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: %d %s", w.Code, w.Body.String())
	}

	w = env.request(t, http.MethodDelete, "/api/v1/bookings/1", nil, env.token)
	if w.Code != http.StatusOK {
		t.Errorf("delete cancelled: %d, want 200: %s", w.Code, w.Body.String())
	}

	var room models.Room
	if err := env.db.First(&room, env.room.ID).Error; err != nil {
		t.Fatalf("reload room: %v", err)
	}
	if room.Status != constants.RoomStatusAvailable {
		t.Errorf("room status = %q, want available", room.Status)
	}
}
