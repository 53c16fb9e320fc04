// server/internal/api/handlers/params.go
package handlers

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// isObjectIDHex reports whether s looks like a 24-character hex ObjectID.
// Anything else is treated as a slug where slugs are supported.
func isObjectIDHex(s string) bool {
	return objectIDPattern.MatchString(s)
}

// parsePagination reads page and limit from the query string. Malformed or
// out-of-range values fall back to the defaults rather than erroring.
func parsePagination(c *gin.Context) (page, limit int) {
	page = defaultPage
	limit = defaultLimit

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
		if limit > maxLimit {
			limit = maxLimit
		}
	}
	return page, limit
}

// buildPagination computes the page descriptor for a list response.
func buildPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
