package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// BudgetHandler handles budget requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRequest is the payload of both create and update.
type BudgetRequest struct {
	SubcategoryID string `json:"subcategory_id" binding:"required"`
	Year          int    `json:"year" binding:"budget_year"`
	Month         int    `json:"month" binding:"budget_month"`
	BudgetCents   int64  `json:"budget_cents"`
}

// CreateBudget handles the creation of a budget.
// @Summary     Create a budget
// @Description Create a monthly budget in the caller's household
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BudgetRequest true "Budget details"
// @Success     201 {object} CreatedResponse "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subcategory not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.budgetService.CreateBudget(c.Request.Context(), services.CreateBudgetParams{
		AuditAPICallID: callID,
		SubcategoryID:  req.SubcategoryID,
		Year:           req.Year,
		Month:          req.Month,
		BudgetCents:    req.BudgetCents,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondCreated(c, "budget", id)
}

// ListBudgets handles listing the caller's budgets.
// @Summary     List budgets
// @Description Get a paginated list of the household's budgets
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[BudgetResponse] "Paginated budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	result, err := h.budgetService.ListBudgets(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, result, newBudgetResponse)
}

// GetBudget handles retrieving a single budget.
// @Summary     Get budget by ID
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} BudgetResponse "Budget details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), services.GetParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, newBudgetResponse(*budget))
}

// UpdateBudget handles replacing the fields of a budget.
// @Summary     Update a budget
// @Tags        budgets
// @Accept      json
// @Security    BearerAuth
// @Param       id      path string true "Budget ID"
// @Param       request body BudgetRequest true "Updated budget"
// @Success     204 "Budget updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     422 {object} ErrorResponse "Conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetRequest
	if !bindJSON(c, &req) {
		return
	}

	err = h.budgetService.UpdateBudget(c.Request.Context(), services.UpdateBudgetParams{
		AuditAPICallID: callID,
		ID:             c.Param("id"),
		SubcategoryID:  req.SubcategoryID,
		Year:           req.Year,
		Month:          req.Month,
		BudgetCents:    req.BudgetCents,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBudget handles deleting a budget.
// @Summary     Delete a budget
// @Tags        budgets
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     204 "Budget deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     422 {object} ErrorResponse "Budget still referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	err = h.budgetService.DeleteBudget(c.Request.Context(), services.DeleteParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
