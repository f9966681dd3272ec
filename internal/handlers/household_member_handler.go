package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// HouseholdMemberHandler handles household member requests.
type HouseholdMemberHandler struct {
	memberService services.HouseholdMemberServicer
}

// NewHouseholdMemberHandler creates a new HouseholdMemberHandler.
func NewHouseholdMemberHandler(memberService services.HouseholdMemberServicer) *HouseholdMemberHandler {
	return &HouseholdMemberHandler{memberService: memberService}
}

// HouseholdMemberRequest is the payload of both create and update.
type HouseholdMemberRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CreateHouseholdMember handles the creation of a household member.
// @Summary     Create a household member
// @Description Create a household member in the caller's household
// @Tags        household-members
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body HouseholdMemberRequest true "HouseholdMember details"
// @Success     201 {object} CreatedResponse "HouseholdMember created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /household-members [post]
func (h *HouseholdMemberHandler) CreateHouseholdMember(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req HouseholdMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.memberService.CreateHouseholdMember(c.Request.Context(), services.CreateHouseholdMemberParams{
		AuditAPICallID: callID,
		Name:           req.Name,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondCreated(c, "household_member", id)
}

// ListHouseholdMembers handles listing the caller's household members.
// @Summary     List household members
// @Description Get a paginated list of the household's household members
// @Tags        household-members
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.HouseholdMember] "Paginated household members"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /household-members [get]
func (h *HouseholdMemberHandler) ListHouseholdMembers(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	result, err := h.memberService.ListHouseholdMembers(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHouseholdMember handles retrieving a single household member.
// @Summary     Get household member by ID
// @Tags        household-members
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "HouseholdMember ID"
// @Success     200 {object} models.HouseholdMember "HouseholdMember details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "HouseholdMember not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /household-members/{id} [get]
func (h *HouseholdMemberHandler) GetHouseholdMember(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	householdMember, err := h.memberService.GetHouseholdMember(c.Request.Context(), services.GetParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, householdMember)
}

// UpdateHouseholdMember handles replacing the fields of a household member.
// @Summary     Update a household member
// @Tags        household-members
// @Accept      json
// @Security    BearerAuth
// @Param       id      path string true "HouseholdMember ID"
// @Param       request body HouseholdMemberRequest true "Updated household member"
// @Success     204 "HouseholdMember updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "HouseholdMember not found"
// @Failure     422 {object} ErrorResponse "Conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /household-members/{id} [put]
func (h *HouseholdMemberHandler) UpdateHouseholdMember(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req HouseholdMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	err = h.memberService.UpdateHouseholdMember(c.Request.Context(), services.UpdateHouseholdMemberParams{
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

// DeleteHouseholdMember handles deleting a household member.
// @Summary     Delete a household member
// @Tags        household-members
// @Security    BearerAuth
// @Param       id path string true "HouseholdMember ID"
// @Success     204 "HouseholdMember deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "HouseholdMember not found"
// @Failure     422 {object} ErrorResponse "HouseholdMember still referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /household-members/{id} [delete]
func (h *HouseholdMemberHandler) DeleteHouseholdMember(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	err = h.memberService.DeleteHouseholdMember(c.Request.Context(), services.DeleteParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
