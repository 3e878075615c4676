package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// timeQuery parses an optional RFC3339 query parameter; a missing or
// malformed value yields the zero time, which the filters treat as unset.
func timeQuery(c *gin.Context, key string) time.Time {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
