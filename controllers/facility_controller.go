package controllers

import (
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	"github.com/ahmadnzr/fintrack-by-ai/response"
	"github.com/ahmadnzr/fintrack-by-ai/services"

	"github.com/gin-gonic/gin"
)

type FacilityController struct {
	facilities *services.FacilityService
}

func NewFacilityController(facilities *services.FacilityService) *FacilityController {
	return &FacilityController{facilities: facilities}
}

// List godoc
// @Summary List facilities
// @Tags facilities
// @Security BearerAuth
// @Produce json
// @Param search query string false "Name search"
// @Success 200 {object} map[string]interface{}
// @Router /facilities [get]
func (ctl *FacilityController) List(c *gin.Context) {
	facilities, err := ctl.facilities.List(c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toFacilityResponses(facilities))
}

// Get godoc
// @Summary Get one facility
// @Tags facilities
// @Security BearerAuth
// @Produce json
// @Param id path int true "Facility ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /facilities/{id} [get]
func (ctl *FacilityController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Facility not found")
		return
	}

	facility, err := ctl.facilities.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toFacilityResponse(*facility))
}

// Create godoc
// @Summary Create a facility
// @Tags facilities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.FacilityRequest true "Facility data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /facilities [post]
func (ctl *FacilityController) Create(c *gin.Context) {
	var req dto.FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	facility, err := ctl.facilities.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toFacilityResponse(*facility))
}

// Update godoc
// @Summary Update a facility
// @Tags facilities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Facility ID"
// @Param request body dto.FacilityRequest true "Facility data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /facilities/{id} [put]
func (ctl *FacilityController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Facility not found")
		return
	}

	var req dto.FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	facility, err := ctl.facilities.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toFacilityResponse(*facility))
}

// Delete godoc
// @Summary Delete an unassigned facility
// @Tags facilities
// @Security BearerAuth
// @Produce json
// @Param id path int true "Facility ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Conflict error"
// @Failure 404 {object} map[string]interface{}
// @Router /facilities/{id} [delete]
func (ctl *FacilityController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Facility not found")
		return
	}

	if err := ctl.facilities.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
