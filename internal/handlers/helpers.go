package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/pagination"
	"hearth/internal/services"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString("userID")
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// getAuditCallID returns the id of the AuditAPICall recorded for this request.
// Every mutation and read is performed on behalf of it.
func getAuditCallID(c *gin.Context) (string, error) {
	callID := c.GetString("auditAPICallID")
	if callID == "" {
		return "", apperrors.ErrMissingAuditCall
	}
	return callID, nil
}

// bindJSON decodes the request body into req and answers 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return false
	}
	return true
}

// listParams builds the ListParams of a paginated GET.
func listParams(c *gin.Context) (services.ListParams, bool) {
	callID, err := getAuditCallID(c)
	if err != nil {
		respondWithError(c, err)
		return services.ListParams{}, false
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return services.ListParams{}, false
	}
	return services.ListParams{AuditAPICallID: callID, Page: page}, true
}

// CreatedData is the body of a 201 response.
type CreatedData struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// CreatedResponse wraps the type and id of a newly created row.
type CreatedResponse struct {
	Data CreatedData `json:"data"`
}

func respondCreated(c *gin.Context, entityType, id string) {
	c.JSON(http.StatusCreated, CreatedResponse{Data: CreatedData{Type: entityType, ID: id}})
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// respondPage renders a page of rows through fn.
func respondPage[T, U any](c *gin.Context, page *pagination.PageResponse[T], fn func(T) U) {
	c.JSON(http.StatusOK, pagination.Map(*page, fn))
}

// respondWithError records err on the context. middleware.ErrorHandler turns it
// into the JSON error body once the handler returns.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
}

// ErrorDetail represents the inner error object in an error response. It
// documents the body middleware.ErrorHandler writes.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
