package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// SubcategoryHandler handles subcategory requests.
type SubcategoryHandler struct {
	subcategoryService services.SubcategoryServicer
}

// NewSubcategoryHandler creates a new SubcategoryHandler.
func NewSubcategoryHandler(subcategoryService services.SubcategoryServicer) *SubcategoryHandler {
	return &SubcategoryHandler{subcategoryService: subcategoryService}
}

// SubcategoryRequest is the payload of both create and update.
type SubcategoryRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required,max=100"`
}

// CreateSubcategory handles the creation of a subcategory.
// @Summary     Create a subcategory
// @Description Create a subcategory in the caller's household
// @Tags        subcategories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SubcategoryRequest true "Subcategory details"
// @Success     201 {object} CreatedResponse "Subcategory created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcategories [post]
func (h *SubcategoryHandler) CreateSubcategory(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SubcategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.subcategoryService.CreateSubcategory(c.Request.Context(), services.CreateSubcategoryParams{
		AuditAPICallID: callID,
		CategoryID:     req.CategoryID,
		Name:           req.Name,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondCreated(c, "subcategory", id)
}

// ListSubcategories handles listing the caller's subcategories.
// @Summary     List subcategories
// @Description Get a paginated list of the household's subcategories
// @Tags        subcategories
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Subcategory] "Paginated subcategories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcategories [get]
func (h *SubcategoryHandler) ListSubcategories(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	result, err := h.subcategoryService.ListSubcategories(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSubcategory handles retrieving a single subcategory.
// @Summary     Get subcategory by ID
// @Tags        subcategories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Subcategory ID"
// @Success     200 {object} models.Subcategory "Subcategory details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subcategory not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcategories/{id} [get]
func (h *SubcategoryHandler) GetSubcategory(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	subcategory, err := h.subcategoryService.GetSubcategory(c.Request.Context(), services.GetParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, subcategory)
}

// UpdateSubcategory handles replacing the fields of a subcategory.
// @Summary     Update a subcategory
// @Tags        subcategories
// @Accept      json
// @Security    BearerAuth
// @Param       id      path string true "Subcategory ID"
// @Param       request body SubcategoryRequest true "Updated subcategory"
// @Success     204 "Subcategory updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subcategory not found"
// @Failure     422 {object} ErrorResponse "Conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcategories/{id} [put]
func (h *SubcategoryHandler) UpdateSubcategory(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SubcategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	err = h.subcategoryService.UpdateSubcategory(c.Request.Context(), services.UpdateSubcategoryParams{
		AuditAPICallID: callID,
		ID:             c.Param("id"),
		CategoryID:     req.CategoryID,
		Name:           req.Name,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteSubcategory handles deleting a subcategory.
// @Summary     Delete a subcategory
// @Tags        subcategories
// @Security    BearerAuth
// @Param       id path string true "Subcategory ID"
// @Success     204 "Subcategory deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subcategory not found"
// @Failure     422 {object} ErrorResponse "Subcategory still referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcategories/{id} [delete]
func (h *SubcategoryHandler) DeleteSubcategory(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	err = h.subcategoryService.DeleteSubcategory(c.Request.Context(), services.DeleteParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
