package helpers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginationParams holds the parsed pagination parameters
type PaginationParams struct {
	Limit  int32
	Offset int32
	Page   int32
}

// ParsePaginationParams parses and validates pagination parameters from gin context.
// Supports both page-based (?page=1&limit=10) and offset-based (?offset=0&limit=10)
// pagination with safe defaults.
func ParsePaginationParams(c *gin.Context) (PaginationParams, error) {
	const maxLimit int32 = 100
	const defaultLimit int32 = 10

	params := PaginationParams{
		Limit:  defaultLimit,
		Offset: 0,
		Page:   1,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		parsedLimit, err := SafeParseInt32(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid limit parameter: %w", err)
		}
		if parsedLimit > 0 {
			if parsedLimit > maxLimit {
				params.Limit = maxLimit
			} else {
				params.Limit = parsedLimit
			}
		}
	}

	if pageStr := c.Query("page"); pageStr != "" {
		parsedPage, err := SafeParseInt32(pageStr)
		if err != nil {
			return params, fmt.Errorf("invalid page parameter: %w", err)
		}
		if parsedPage > 0 {
			params.Page = parsedPage
			params.Offset = (parsedPage - 1) * params.Limit
		}
	} else if offsetStr := c.Query("offset"); offsetStr != "" {
		parsedOffset, err := SafeParseInt32(offsetStr)
		if err != nil {
			return params, fmt.Errorf("invalid offset parameter: %w", err)
		}
		if parsedOffset >= 0 {
			params.Offset = parsedOffset
			params.Page = (parsedOffset / params.Limit) + 1
		}
	}

	return params, nil
}

// SafeParseInt32 safely parses a string to int32, checking for overflow
func SafeParseInt32(s string) (int32, error) {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}

	if val > math.MaxInt32 || val < math.MinInt32 {
		return 0, fmt.Errorf("value %d overflows int32", val)
	}

	return int32(val), nil
}
