package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"promptly/pkg/utils"
)

// parsePaging reads page/limit query parameters. Absent values fall back to
// the per-resource default; malformed or out-of-range values are an error,
// not a silent default.
func parsePaging(c *gin.Context, defaultLimit int) (page, limit int, err error) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))

	page, convErr := strconv.Atoi(pageStr)
	if convErr != nil || page < 1 {
		return 0, 0, utils.ErrInvalidPage
	}

	limit, convErr = strconv.Atoi(limitStr)
	if convErr != nil || limit < 1 || limit > 100 {
		return 0, 0, utils.ErrInvalidPageSize
	}

	return page, limit, nil
}
