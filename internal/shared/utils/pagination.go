package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"likenovel/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page         int
	CountPerPage int
}

// Offset returns the row offset for LIMIT/OFFSET queries.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.CountPerPage
}

// ValidatePagination validates and normalizes pagination parameters.
func ValidatePagination(page, countPerPage int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if countPerPage < 1 {
		countPerPage = constants.DefaultCountPerPage
	}
	if countPerPage > constants.MaxCountPerPage {
		countPerPage = constants.MaxCountPerPage
	}
	return Pagination{Page: page, CountPerPage: countPerPage}
}

// ParsePagination reads page/count_per_page from the query string with defaults 1/10.
func ParsePagination(c *gin.Context) Pagination {
	return ParsePaginationWithDefault(c, constants.DefaultCountPerPage)
}

// ParsePaginationWithDefault is ParsePagination with a per-endpoint page size default.
func ParsePaginationWithDefault(c *gin.Context, defaultCountPerPage int) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	size := parseQueryInt(c, "count_per_page", defaultCountPerPage)
	return ValidatePagination(page, size)
}

// HasPagination reports whether the caller asked for a paginated envelope.
func HasPagination(c *gin.Context) bool {
	return c.Query("page") != "" || c.Query("count_per_page") != ""
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, countPerPage int) int {
	if total == 0 || countPerPage == 0 {
		return 1
	}
	return int((total + int64(countPerPage) - 1) / int64(countPerPage))
}

// ParseOptionalPagination returns the zero Pagination when the caller sent neither page
// nor count_per_page, meaning "every row, plain list envelope".
func ParseOptionalPagination(c *gin.Context) Pagination {
	if !HasPagination(c) {
		return Pagination{}
	}
	return ParsePagination(c)
}
