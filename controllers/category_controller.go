package controllers

import (
	"strconv"

	"github.com/ahmadnzr/fintrack-by-ai/dto"
	"github.com/ahmadnzr/fintrack-by-ai/middleware"
	"github.com/ahmadnzr/fintrack-by-ai/response"
	"github.com/ahmadnzr/fintrack-by-ai/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// List godoc
// @Summary List the caller's categories
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param type query string false "income or expense"
// @Param isCustom query bool false "Only custom or only default categories"
// @Param search query string false "Name search"
// @Success 200 {object} map[string]interface{}
// @Router /categories [get]
func (ctl *CategoryController) List(c *gin.Context) {
	filters := services.CategoryFilters{
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}
	if raw := c.Query("isCustom"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filters.IsCustom = &v
		}
	}

	categories, err := ctl.categories.List(middleware.UserID(c), filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		data = append(data, toCategoryResponse(cat))
	}
	response.Success(c, data)
}

// Get godoc
// @Summary Get one category
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /categories/{id} [get]
func (ctl *CategoryController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Category not found")
		return
	}

	category, err := ctl.categories.Get(middleware.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toCategoryResponse(*category))
}

// Create godoc
// @Summary Create a custom category
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Category data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation or conflict error"
// @Router /categories [post]
func (ctl *CategoryController) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	category, err := ctl.categories.Create(middleware.UserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCategoryResponse(*category))
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.CategoryRequest true "Category data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /categories/{id} [put]
func (ctl *CategoryController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Category not found")
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	category, err := ctl.categories.Update(middleware.UserID(c), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toCategoryResponse(*category))
}

// Delete godoc
// @Summary Delete an unused custom category
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Conflict error"
// @Failure 404 {object} map[string]interface{}
// @Router /categories/{id} [delete]
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Category not found")
		return
	}

	if err := ctl.categories.Delete(middleware.UserID(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
