package controllers

import (
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	"github.com/ahmadnzr/fintrack-by-ai/middleware"
	"github.com/ahmadnzr/fintrack-by-ai/response"
	"github.com/ahmadnzr/fintrack-by-ai/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetSettings godoc
// @Summary Get the caller's settings
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /user/settings [get]
func (ctl *UserController) GetSettings(c *gin.Context) {
	settings, err := ctl.users.GetSettings(middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.SettingsResponse{
		UserID:   settings.UserID,
		Theme:    settings.Theme,
		Language: settings.Language,
	})
}

// UpdateSettings godoc
// @Summary Update theme or language
// @Tags user
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /user/settings [put]
func (ctl *UserController) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	settings, err := ctl.users.UpdateSettings(middleware.UserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.SettingsResponse{
		UserID:   settings.UserID,
		Theme:    settings.Theme,
		Language: settings.Language,
	})
}
