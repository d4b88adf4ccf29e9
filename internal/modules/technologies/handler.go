package technologies

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/foodgram/internal/middleware"
	"github.com/nfrund/foodgram/internal/view"
	"github.com/nfrund/foodgram/web/src/templates/layouts"
	"github.com/nfrund/foodgram/web/src/templates/pages"
)

// Handler manages the HTTP requests for the technologies module.
type Handler struct {
	meta layouts.PageMeta
}

// NewHandler creates a new handler serving the page with the given metadata.
func NewHandler(meta layouts.PageMeta) *Handler {
	return &Handler{
		meta: meta,
	}
}

// Get renders the technologies page inside the base layout.
func (h *Handler) Get(c echo.Context) error {
	pageContent := view.AdaptGomponentToTempl(pages.Technologies())
	finalComponent := layouts.Base(h.meta, pageContent)

	middleware.FromContext(c.Request().Context()).Debug("Rendering technologies page")
	return c.Render(http.StatusOK, "", finalComponent)
}
