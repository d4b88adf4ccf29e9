package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeHandler handles requests for the site root.
type HomeHandler struct {
	landing string
}

// NewHomeHandler creates a HomeHandler that sends visitors to landing.
func NewHomeHandler(landing string) *HomeHandler {
	return &HomeHandler{landing: landing}
}

// HomeGet redirects the root URL to the landing page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, h.landing)
}

// HealthGet reports that the server is up.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
