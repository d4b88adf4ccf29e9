package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/foodgram/internal/handlers"
	"github.com/nfrund/foodgram/web"
)

// LandingPath is where the site root redirects to.
const LandingPath = "/technologies"

// RegisterRoutes sets up the application-wide routes. Page routes are
// mounted by the modules themselves.
func (s *Server) RegisterRoutes() {
	homeHandler := handlers.NewHomeHandler(LandingPath)
	assetHandler := handlers.NewAssetHandler(s.assets)

	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/health", handlers.HealthGet)
	s.E.GET("/metrics", s.Metrics.Handler())

	// Embedded stylesheets.
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	// Public assets such as /technologies.jpg.
	s.E.Match([]string{http.MethodGet, http.MethodHead}, "/:asset", assetHandler.Get)
}
