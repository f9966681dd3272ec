package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// DepositHandler handles deposit requests.
type DepositHandler struct {
	depositService services.DepositServicer
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(depositService services.DepositServicer) *DepositHandler {
	return &DepositHandler{depositService: depositService}
}

// DepositRequest is the payload of both create and update.
type DepositRequest struct {
	FundID      string `json:"fund_id" binding:"required"`
	Date        string `json:"date" binding:"required,iso_date"`
	AmountCents int64  `json:"amount_cents"`
}

// CreateDeposit handles the creation of a deposit.
// @Summary     Create a deposit
// @Description Create a deposit into a fund in the caller's household
// @Tags        deposits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DepositRequest true "Deposit details"
// @Success     201 {object} CreatedResponse "Deposit created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deposits [post]
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DepositRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.depositService.CreateDeposit(c.Request.Context(), services.CreateDepositParams{
		AuditAPICallID: callID,
		FundID:         req.FundID,
		Date:           req.Date,
		AmountCents:    req.AmountCents,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondCreated(c, "deposit", id)
}

// ListDeposits handles listing the caller's deposits.
// @Summary     List deposits
// @Description Get a paginated list of the household's deposits
// @Tags        deposits
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[DepositResponse] "Paginated deposits"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deposits [get]
func (h *DepositHandler) ListDeposits(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	result, err := h.depositService.ListDeposits(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, result, newDepositResponse)
}

// GetDeposit handles retrieving a single deposit.
// @Summary     Get deposit by ID
// @Tags        deposits
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Deposit ID"
// @Success     200 {object} DepositResponse "Deposit details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deposits/{id} [get]
func (h *DepositHandler) GetDeposit(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	deposit, err := h.depositService.GetDeposit(c.Request.Context(), services.GetParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, newDepositResponse(*deposit))
}

// UpdateDeposit handles replacing the fields of a deposit.
// @Summary     Update a deposit
// @Tags        deposits
// @Accept      json
// @Security    BearerAuth
// @Param       id      path string true "Deposit ID"
// @Param       request body DepositRequest true "Updated deposit"
// @Success     204 "Deposit updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     422 {object} ErrorResponse "Conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deposits/{id} [put]
func (h *DepositHandler) UpdateDeposit(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DepositRequest
	if !bindJSON(c, &req) {
		return
	}

	err = h.depositService.UpdateDeposit(c.Request.Context(), services.UpdateDepositParams{
		AuditAPICallID: callID,
		ID:             c.Param("id"),
		FundID:         req.FundID,
		Date:           req.Date,
		AmountCents:    req.AmountCents,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteDeposit handles deleting a deposit.
// @Summary     Delete a deposit
// @Tags        deposits
// @Security    BearerAuth
// @Param       id path string true "Deposit ID"
// @Success     204 "Deposit deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     422 {object} ErrorResponse "Deposit still referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deposits/{id} [delete]
func (h *DepositHandler) DeleteDeposit(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	err = h.depositService.DeleteDeposit(c.Request.Context(), services.DeleteParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
