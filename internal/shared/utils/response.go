package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

// ErrorBody is the serialized form of every failure.
type ErrorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// PagedResponse is the envelope for paginated lists.
type PagedResponse struct {
	TotalCount   int64       `json:"total_count"`
	Page         int         `json:"page"`
	CountPerPage int         `json:"count_per_page"`
	Results      interface{} `json:"results"`
}

// Data writes {"data": v}. A nil pointer or nil interface renders as null.
func Data(c *gin.Context, v interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": v})
}

// List writes {"data": [...]}; items must be a slice and is never rendered as null.
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// Paged writes the paginated envelope.
func Paged[T any](c *gin.Context, items []T, total int64, page Pagination) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, PagedResponse{
		TotalCount:   total,
		Page:         page.Page,
		CountPerPage: page.CountPerPage,
		Results:      items,
	})
}

// Result writes {"result": v} for mutations. Creates echo the stored row or its id.
func Result(c *gin.Context, v interface{}) {
	c.JSON(http.StatusOK, gin.H{"result": v})
}

// ErrorResponseWithError serializes err. AppErrors keep their status and code; anything
// else becomes a 500 without leaking internals.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		logger.NewLogger().WithContext(c.Request.Context()).Errorw("unhandled error",
			"path", c.Request.URL.Path,
			"error", err)
		c.JSON(http.StatusInternalServerError, ErrorBody{Message: "Internal server error occurred"})
		return
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.NewLogger().WithContext(c.Request.Context()).Errorw("request failed",
			"path", c.Request.URL.Path,
			"status", appErr.StatusCode,
			"error", appErr)
	}

	c.JSON(appErr.StatusCode, ErrorBody{Code: appErr.Code, Message: appErr.Message})
}

// AbortWithError writes the error and stops the middleware chain.
func AbortWithError(c *gin.Context, err error) {
	ErrorResponseWithError(c, err)
	c.Abort()
}

// ListOrPaged writes {"data": [...]} for an unpaginated request and the paged envelope otherwise.
func ListOrPaged[T any](c *gin.Context, items []T, total int64, page Pagination) {
	if page.CountPerPage == 0 {
		List(c, items)
		return
	}
	Paged(c, items, total, page)
}
