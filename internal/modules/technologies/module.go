package technologies

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/foodgram/internal/module"
	"github.com/nfrund/foodgram/internal/registry"
	"github.com/nfrund/foodgram/web/src/templates/pages"
)

// TechnologiesModule serves the technologies page.
type TechnologiesModule struct {
	module.BaseModule
}

// New creates a new instance of the module.
func New() *TechnologiesModule {
	return &TechnologiesModule{}
}

// Name returns the module's unique identifier.
func (m *TechnologiesModule) Name() string {
	return "technologies"
}

// Boot mounts the page route for GET and HEAD. A missing page image only
// produces a warning: the image is served by the asset handler, not by this module.
func (m *TechnologiesModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting TechnologiesModule: Setting up routes...")

	resolver := registry.MustGet(reg, registry.AssetResolverKey)
	for _, name := range pages.TechnologiesAssets() {
		if !resolver.Exists(name) {
			slog.Warn("Technologies page asset is missing", "asset", name, "public_dir", reg.Config().GetPublicDir())
		}
	}

	meta, err := pages.TechnologiesPageMeta(reg.Config().GetAppBaseURL())
	if err != nil {
		return fmt.Errorf("technologies page metadata: %w", err)
	}

	handler := NewHandler(meta)
	g.Match([]string{http.MethodGet, http.MethodHead}, "", handler.Get)
	return nil
}
