package utils

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/shared/constants"
)

// BindJSON decodes and validates the request body, translating failures into a 400.
func BindJSON(c *gin.Context, v interface{}) error {
	RegisterValidators()
	return TranslateBindError(c.ShouldBindJSON(v))
}

// BindFields decodes a PUT body into a column map. Stores drop columns they do not allow.
func BindFields(c *gin.Context) (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if err := c.ShouldBindJSON(&fields); err != nil {
		return nil, TranslateBindError(err)
	}
	return fields, nil
}

// WriterID is the audit id stamped on rows the caller writes.
func WriterID(userID int64) int64 {
	if userID <= 0 {
		return constants.SystemWriterID
	}
	return userID
}
