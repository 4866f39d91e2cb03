package controllers

import (
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/middleware"
	"github.com/ahmadnzr/fintrack-by-ai/response"
	"github.com/ahmadnzr/fintrack-by-ai/services"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	insights *services.InsightService
}

func NewInsightController(insights *services.InsightService) *InsightController {
	return &InsightController{insights: insights}
}

// Financial godoc
// @Summary Generate a 30-day financial summary
// @Tags insights
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Not enough transaction data"
// @Router /insights/financial [post]
func (ctl *InsightController) Financial(c *gin.Context) {
	result, err := ctl.insights.Generate(middleware.UserID(c), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
