package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// queueStatusHandler handles GET /queue/status. Counts come from the
// executions table; registry counters are advisory only.
func (s *Server) queueStatusHandler(c *echo.Context) error {
	stats, err := s.store.QueueStats(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
