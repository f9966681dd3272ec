package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// CategoryHandler handles category requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest is the payload of both create and update.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CreateCategory handles the creation of a category.
// @Summary     Create a category
// @Description Create a category in the caller's household
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategoryRequest true "Category details"
// @Success     201 {object} CreatedResponse "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.categoryService.CreateCategory(c.Request.Context(), services.CreateCategoryParams{
		AuditAPICallID: callID,
		Name:           req.Name,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondCreated(c, "category", id)
}

// ListCategories handles listing the caller's categories.
// @Summary     List categories
// @Description Get a paginated list of the household's categories
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Category] "Paginated categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	params, ok := listParams(c)
	if !ok {
		return
	}

	result, err := h.categoryService.ListCategories(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCategory handles retrieving a single category.
// @Summary     Get category by ID
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} models.Category "Category details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), services.GetParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, category)
}

// UpdateCategory handles replacing the fields of a category.
// @Summary     Update a category
// @Tags        categories
// @Accept      json
// @Security    BearerAuth
// @Param       id      path string true "Category ID"
// @Param       request body CategoryRequest true "Updated category"
// @Success     204 "Category updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     422 {object} ErrorResponse "Conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	err = h.categoryService.UpdateCategory(c.Request.Context(), services.UpdateCategoryParams{
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

// DeleteCategory handles deleting a category.
// @Summary     Delete a category
// @Tags        categories
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     204 "Category deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     422 {object} ErrorResponse "Category still referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	err = h.categoryService.DeleteCategory(c.Request.Context(), services.DeleteParams{AuditAPICallID: callID, ID: c.Param("id")})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
