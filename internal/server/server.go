package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/foodgram/internal/app"
	"github.com/nfrund/foodgram/internal/assets"
	"github.com/nfrund/foodgram/internal/config"
	"github.com/nfrund/foodgram/internal/metrics"
	"github.com/nfrund/foodgram/internal/middleware"
	"github.com/nfrund/foodgram/internal/module"
	"github.com/nfrund/foodgram/internal/registry"
	"github.com/nfrund/foodgram/internal/rendering"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry
	Metrics  *metrics.HTTPMetrics
	assets   *assets.Resolver
	modules  []module.Module
}

// New creates a Server with its middleware stack, then registers and boots
// the given modules.
func New(cfg config.Provider, modules []module.Module) (*Server, error) {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.New(promRegistry)

	e := echo.New()
	e.HideBanner = true
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(echomw.Recover())
	e.Use(middleware.Logger)
	e.Use(httpMetrics.Middleware)
	e.Use(echomw.Logger())

	// Handlers render pages through c.Render.
	e.Renderer = rendering.NewUniversalRenderer()

	deps := app.Dependencies{
		Assets: assets.NewDirResolver(cfg.GetPublicDir()),
	}

	reg := registry.New(cfg)
	deps.Provide(reg)

	s := &Server{
		E:        e,
		Cfg:      cfg,
		Registry: reg,
		Metrics:  httpMetrics,
		assets:   deps.Assets,
		modules:  modules,
	}

	if err := s.bootModules(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// bootModules runs the Register phase for every module, then mounts each one
// on its own route group and runs Boot.
func (s *Server) bootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	for _, m := range s.modules {
		group := s.E.Group("/"+m.Name(), middleware.RateLimiter(s.Cfg.GetRateLimit()))
		if err := m.Boot(ctx, group, s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
	}
	return nil
}
