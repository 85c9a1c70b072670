package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"likenovel/internal/shared/errors"
)

// ParseIDParam parses a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError(name + " 값이 올바르지 않습니다.")
	}
	return id, nil
}

// QueryInt64Ptr returns nil when the query parameter is absent or not a number.
func QueryInt64Ptr(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
