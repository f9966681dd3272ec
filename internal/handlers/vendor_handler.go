package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// VendorHandler handles vendor requests.
type VendorHandler struct {
	vendorService services.VendorServicer
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorService services.VendorServicer) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// VendorRequest is the payload of both create and update.
type VendorRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// CreateVendor handles the creation of a vendor.
// @Summary     Create a vendor
// @Description Create a vendor in the caller's household
// @Tags        vendors
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body VendorRequest true "Vendor details"
// @Success     201 {object} CreatedResponse "Vendor created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req VendorRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.vendorService.CreateVendor(c.Request.Context(), services.CreateVendorParams{
		AuditAPICallID: callID,
		Name:           req.Name,
		Description:    req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondCreated(c, "vendor", id)
}

// ListVendors handles listing the caller's vendors.
// @Summary     List vendors
// @Description Get a paginated list of the household's vendors
// @Tags        vendors
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Vendor] "Paginated vendors"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	result, err := h.vendorService.ListVendors(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetVendor handles retrieving a single vendor.
// @Summary     Get vendor by ID
// @Tags        vendors
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Vendor ID"
// @Success     200 {object} models.Vendor "Vendor details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Vendor not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), services.GetParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, vendor)
}

// UpdateVendor handles replacing the fields of a vendor.
// @Summary     Update a vendor
// @Tags        vendors
// @Accept      json
// @Security    BearerAuth
// @Param       id      path string true "Vendor ID"
// @Param       request body VendorRequest true "Updated vendor"
// @Success     204 "Vendor updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Vendor not found"
// @Failure     422 {object} ErrorResponse "Conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors/{id} [put]
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req VendorRequest
	if !bindJSON(c, &req) {
		return
	}

	err = h.vendorService.UpdateVendor(c.Request.Context(), services.UpdateVendorParams{
		AuditAPICallID: callID,
		ID:             c.Param("id"),
		Name:           req.Name,
		Description:    req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteVendor handles deleting a vendor.
// @Summary     Delete a vendor
// @Tags        vendors
// @Security    BearerAuth
// @Param       id path string true "Vendor ID"
// @Success     204 "Vendor deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Vendor not found"
// @Failure     422 {object} ErrorResponse "Vendor still referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors/{id} [delete]
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	err = h.vendorService.DeleteVendor(c.Request.Context(), services.DeleteParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
