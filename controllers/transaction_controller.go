package controllers

import (
	"strconv"

	"github.com/ahmadnzr/fintrack-by-ai/dto"
	"github.com/ahmadnzr/fintrack-by-ai/middleware"
	"github.com/ahmadnzr/fintrack-by-ai/response"
	"github.com/ahmadnzr/fintrack-by-ai/services"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	transactions *services.TransactionService
}

func NewTransactionController(transactions *services.TransactionService) *TransactionController {
	return &TransactionController{transactions: transactions}
}

// List godoc
// @Summary List the caller's transactions
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Param type query string false "income or expense"
// @Param category query int false "Filter by category"
// @Param search query string false "Description search"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /transactions [get]
func (ctl *TransactionController) List(c *gin.Context) {
	filters := dto.TransactionFilters{
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}
	filters.Page, filters.Limit = parsePage(c)
	if raw := c.Query("category"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filters.Category = uint(id)
		}
	}

	transactions, total, err := ctl.transactions.List(middleware.UserID(c), filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, toTransactionResponse(t))
	}
	response.Paginated(c, data, total, filters.Page, filters.Limit)
}

// Get godoc
// @Summary Get one transaction
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /transactions/{id} [get]
func (ctl *TransactionController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Transaction not found")
		return
	}

	transaction, err := ctl.transactions.Get(middleware.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toTransactionResponse(*transaction))
}

// Create godoc
// @Summary Create a transaction
// @Tags transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /transactions [post]
func (ctl *TransactionController) Create(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	transaction, err := ctl.transactions.Create(middleware.UserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(*transaction))
}

// Update godoc
// @Summary Update a transaction
// @Tags transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body dto.TransactionRequest true "Transaction data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /transactions/{id} [put]
func (ctl *TransactionController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Transaction not found")
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, "Invalid request body")
		return
	}

	transaction, err := ctl.transactions.Update(middleware.UserID(c), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toTransactionResponse(*transaction))
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /transactions/{id} [delete]
func (ctl *TransactionController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Transaction not found")
		return
	}

	if err := ctl.transactions.Delete(middleware.UserID(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
