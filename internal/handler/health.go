// Package handler exposes the HTTP handlers of the query and favorites
// API.  Handlers translate repository sentinel errors into HTTP statuses
// and keep response shapes free of internal fields.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the health-check endpoint used by load balancers and
// monitoring to verify the service is up.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
