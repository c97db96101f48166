package main

import (
	"os"

	"github.com/yigit/aceup/internal/pkg/logger"
	"github.com/yigit/aceup/internal/server"
)

// @title AceUp Grades API
// @version 1.0
// @description Course grade books with weighted averages and workload priority analytics for the AceUp student app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer(os.Getenv("CONFIG_PATH"))
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
