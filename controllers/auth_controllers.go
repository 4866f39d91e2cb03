package controllers

import (
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	"github.com/ahmadnzr/fintrack-by-ai/response"
	"github.com/ahmadnzr/fintrack-by-ai/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /auth/register [post]
func (ctl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	user, token, err := ctl.users.Register(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.AuthResponse{
		User:  *toUserResponse(user),
		Token: token,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	user, token, err := ctl.users.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.AuthResponse{
		User:  *toUserResponse(user),
		Token: token,
	})
}
