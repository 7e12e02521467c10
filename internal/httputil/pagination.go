package httputil

import (
	"fmt"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"
)

// Page bounds for list endpoints.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

type pageQuery struct {
	Offset *int `form:"offset"`
	Limit  *int `form:"limit"`
}

// ParsePagination reads the offset and limit query parameters. Offset defaults to 0
// and limit to DefaultPageLimit; limit may not exceed MaxPageLimit.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return 0, 0, fmt.Errorf("invalid pagination parameters: offset and limit must be integers")
	}

	offset, limit = 0, DefaultPageLimit
	if query.Offset != nil {
		offset = *query.Offset
	}
	if query.Limit != nil {
		limit = *query.Limit
	}

	if err := (validation.Errors{
		"offset": validation.Validate(offset, validation.Min(0)),
		"limit":  validation.Validate(limit, validation.Required, validation.Min(1), validation.Max(MaxPageLimit)),
	}).Filter(); err != nil {
		return 0, 0, err
	}

	return offset, limit, nil
}
