package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrEmptyParameter = errors.New("parameter is empty")

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	return uint(idUint64), err
}

func ParseQueryUintParam(c *gin.Context, param string) (uint, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return 0, ErrEmptyParameter
	}
	valUint64, err := strconv.ParseUint(valStr, 10, 64)
	return uint(valUint64), err
}

// ParseQueryTimeParam reads an RFC 3339 timestamp.
func ParseQueryTimeParam(c *gin.Context, param string) (time.Time, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return time.Time{}, ErrEmptyParameter
	}
	return time.Parse(time.RFC3339, valStr)
}
