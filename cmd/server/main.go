package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/foodgram/internal/app"
	"github.com/nfrund/foodgram/internal/config"
	"github.com/nfrund/foodgram/internal/logging"
	"github.com/nfrund/foodgram/internal/server"
	_ "go.uber.org/automaxprocs"
)

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	// Create a new server instance with every page module booted.
	s, err := server.New(cfg, app.NewModules())
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	// Register the application-wide routes.
	s.RegisterRoutes()

	// Start the server.
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
