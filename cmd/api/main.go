package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rao756/utms-backend/internal/pkg/logger"
	"github.com/rao756/utms-backend/internal/server"
)

// @title UTMS API
// @version 1.0
// @description University transportation management backend: routes, buses, drivers, schedules, fee challans and account administration

// @contact.name API Support
// @contact.email transport@utms.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A missing .env is fine; config falls back to defaults and real env vars
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
