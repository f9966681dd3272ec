package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// IncomeHandler handles income requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// IncomeRequest is the payload of both create and update.
type IncomeRequest struct {
	HouseholdMemberID string `json:"household_member_id" binding:"required"`
	Date              string `json:"date" binding:"required,iso_date"`
	AmountCents       int64  `json:"amount_cents"`
	Description       string `json:"description" binding:"required,max=500"`
}

// CreateIncome handles the creation of an income.
// @Summary     Create an income
// @Description Create an income entry in the caller's household
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body IncomeRequest true "Income details"
// @Success     201 {object} CreatedResponse "Income created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Household member not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req IncomeRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.incomeService.CreateIncome(c.Request.Context(), services.CreateIncomeParams{
		AuditAPICallID:    callID,
		HouseholdMemberID: req.HouseholdMemberID,
		Date:              req.Date,
		AmountCents:       req.AmountCents,
		Description:       req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondCreated(c, "income", id)
}

// ListIncome handles listing the caller's income entries.
// @Summary     List income entries
// @Description Get a paginated list of the household's income entries
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[IncomeResponse] "Paginated income entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [get]
func (h *IncomeHandler) ListIncome(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	result, err := h.incomeService.ListIncome(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, result, newIncomeResponse)
}

// GetIncome handles retrieving a single income.
// @Summary     Get income by ID
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     200 {object} IncomeResponse "Income details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.GetIncome(c.Request.Context(), services.GetParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, newIncomeResponse(*income))
}

// UpdateIncome handles replacing the fields of an income.
// @Summary     Update an income
// @Tags        income
// @Accept      json
// @Security    BearerAuth
// @Param       id      path string true "Income ID"
// @Param       request body IncomeRequest true "Updated income"
// @Success     204 "Income updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     422 {object} ErrorResponse "Conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req IncomeRequest
	if !bindJSON(c, &req) {
		return
	}

	err = h.incomeService.UpdateIncome(c.Request.Context(), services.UpdateIncomeParams{
		AuditAPICallID:    callID,
		ID:                c.Param("id"),
		HouseholdMemberID: req.HouseholdMemberID,
		Date:              req.Date,
		AmountCents:       req.AmountCents,
		Description:       req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteIncome handles deleting an income.
// @Summary     Delete an income
// @Tags        income
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     204 "Income deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     422 {object} ErrorResponse "Income still referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	err = h.incomeService.DeleteIncome(c.Request.Context(), services.DeleteParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
