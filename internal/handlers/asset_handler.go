package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/foodgram/internal/assets"
	"github.com/nfrund/foodgram/internal/middleware"
)

// AssetHandler serves public files (page images) from the asset resolver.
type AssetHandler struct {
	resolver *assets.Resolver
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(resolver *assets.Resolver) *AssetHandler {
	return &AssetHandler{resolver: resolver}
}

// Get streams the asset named by the "asset" path parameter.
// Only names with a file extension are treated as assets.
func (h *AssetHandler) Get(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	name := c.Param("asset")
	ext := path.Ext(name)
	if ext == "" {
		return echo.ErrNotFound
	}

	f, info, err := h.resolver.Open(name)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) || errors.Is(err, assets.ErrInvalidName) {
			logger.Debug("Asset not found", slog.String("asset", name))
			return echo.ErrNotFound
		}
		logger.Error("Failed to open asset", slog.String("asset", name), slog.String("error", err.Error()))
		return c.String(http.StatusInternalServerError, "Could not retrieve file")
	}
	defer f.Close()

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	// ServeContent handles Range and If-Modified-Since; it keeps a preset Content-Type.
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	http.ServeContent(c.Response(), c.Request(), info.Name(), info.ModTime(), f)
	return nil
}
