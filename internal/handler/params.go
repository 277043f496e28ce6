package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tifofan/football-proxy/pkg/apierror"
)

// positiveIntQuery parses a required positive integer query parameter.
func positiveIntQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, apierror.InvalidParam(name + " is required")
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, apierror.InvalidParam(name + " must be a positive integer")
	}

	return value, nil
}

// optionalPositiveIntQuery parses an optional positive integer query
// parameter, falling back when absent. A present but malformed value
// still rejects.
func optionalPositiveIntQuery(c *gin.Context, name string, fallback int) (int, error) {
	if c.Query(name) == "" {
		return fallback, nil
	}
	return positiveIntQuery(c, name)
}
