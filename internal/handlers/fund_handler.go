package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// FundHandler handles fund requests.
type FundHandler struct {
	fundService services.FundServicer
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService services.FundServicer) *FundHandler {
	return &FundHandler{fundService: fundService}
}

// FundRequest is the payload of both create and update.
type FundRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CreateFund handles the creation of a fund.
// @Summary     Create a fund
// @Description Create a fund in the caller's household
// @Tags        funds
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body FundRequest true "Fund details"
// @Success     201 {object} CreatedResponse "Fund created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds [post]
func (h *FundHandler) CreateFund(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req FundRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.fundService.CreateFund(c.Request.Context(), services.CreateFundParams{
		AuditAPICallID: callID,
		Name:           req.Name,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondCreated(c, "fund", id)
}

// ListFunds handles listing the caller's funds.
// @Summary     List funds
// @Description Get a paginated list of the household's funds
// @Tags        funds
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[FundResponse] "Paginated funds"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds [get]
func (h *FundHandler) ListFunds(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	result, err := h.fundService.ListFunds(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondPage(c, result, newFundResponse)
}

// GetFund handles retrieving a single fund.
// @Summary     Get fund by ID
// @Tags        funds
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Fund ID"
// @Success     200 {object} FundResponse "Fund details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id} [get]
func (h *FundHandler) GetFund(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fund, err := h.fundService.GetFund(c.Request.Context(), services.GetParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, newFundResponse(*fund))
}

// UpdateFund handles replacing the fields of a fund.
// @Summary     Update a fund
// @Tags        funds
// @Accept      json
// @Security    BearerAuth
// @Param       id      path string true "Fund ID"
// @Param       request body FundRequest true "Updated fund"
// @Success     204 "Fund updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     422 {object} ErrorResponse "Conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id} [put]
func (h *FundHandler) UpdateFund(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req FundRequest
	if !bindJSON(c, &req) {
		return
	}

	err = h.fundService.UpdateFund(c.Request.Context(), services.UpdateFundParams{
		AuditAPICallID: callID,
		ID:             c.Param("id"),
		Name:           req.Name,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteFund handles deleting a fund.
// @Summary     Delete a fund
// @Tags        funds
// @Security    BearerAuth
// @Param       id path string true "Fund ID"
// @Success     204 "Fund deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     422 {object} ErrorResponse "Fund still referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id} [delete]
func (h *FundHandler) DeleteFund(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	err = h.fundService.DeleteFund(c.Request.Context(), services.DeleteParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
