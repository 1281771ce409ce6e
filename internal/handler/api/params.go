package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rentimade/internal/handler/middleware"
	"rentimade/internal/usecase/queries"
)

// parsePagination reads the "cursor" and "limit" query parameters.
// A missing cursor means the first page; limit clamping happens in the
// query layer.
func parsePagination(c *gin.Context) (*queries.Cursor, int) {
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	return cursor, limit
}

func queryInt64(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// viewerFromContext returns the optional viewer identity set by
// OptionalAuth. Anonymous requests yield (nil, "").
func viewerFromContext(c *gin.Context) (*uuid.UUID, string) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return nil, ""
	}
	role, _ := middleware.GetUserRole(c)
	return &id, role.String()
}
