package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// ExpenseHandler handles expense requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest is the payload of both create and update.
type ExpenseRequest struct {
	SubcategoryID     string  `json:"subcategory_id" binding:"required"`
	VendorID          string  `json:"vendor_id" binding:"required"`
	HouseholdMemberID string  `json:"household_member_id" binding:"required"`
	FundID            *string `json:"fund_id"`
	Date              string  `json:"date" binding:"required,iso_date"`
	AmountCents       int64   `json:"amount_cents"`
	ReimbursedCents   int64   `json:"reimbursed_cents"`
	Description       string  `json:"description" binding:"required,max=500"`
}

// CreateExpense handles the creation of an expense.
// @Summary     Create an expense
// @Description Create an expense in the caller's household
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} CreatedResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Referenced row not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.expenseService.CreateExpense(c.Request.Context(), services.CreateExpenseParams{
		AuditAPICallID:    callID,
		SubcategoryID:     req.SubcategoryID,
		VendorID:          req.VendorID,
		HouseholdMemberID: req.HouseholdMemberID,
		FundID:            req.FundID,
		Date:              req.Date,
		AmountCents:       req.AmountCents,
		ReimbursedCents:   req.ReimbursedCents,
		Description:       req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondCreated(c, "expense", id)
}

// ListExpenses handles listing the caller's expenses.
// @Summary     List expenses
// @Description Get a paginated list of the household's expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[ExpenseResponse] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, result, newExpenseResponse)
}

// GetExpense handles retrieving a single expense.
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} ExpenseResponse "Expense details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), services.GetParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, newExpenseResponse(*expense))
}

// UpdateExpense handles replacing the fields of an expense.
// @Summary     Update an expense
// @Tags        expenses
// @Accept      json
// @Security    BearerAuth
// @Param       id      path string true "Expense ID"
// @Param       request body ExpenseRequest true "Updated expense"
// @Success     204 "Expense updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     422 {object} ErrorResponse "Conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	err = h.expenseService.UpdateExpense(c.Request.Context(), services.UpdateExpenseParams{
		AuditAPICallID:    callID,
		ID:                c.Param("id"),
		SubcategoryID:     req.SubcategoryID,
		VendorID:          req.VendorID,
		HouseholdMemberID: req.HouseholdMemberID,
		FundID:            req.FundID,
		Date:              req.Date,
		AmountCents:       req.AmountCents,
		ReimbursedCents:   req.ReimbursedCents,
		Description:       req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteExpense handles deleting an expense.
// @Summary     Delete an expense
// @Tags        expenses
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     204 "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     422 {object} ErrorResponse "Expense still referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	err = h.expenseService.DeleteExpense(c.Request.Context(), services.DeleteParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
