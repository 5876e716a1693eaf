package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/api"
	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/config"
	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/store"
)

func main() {
	// Best effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	recordStore := store.Open(cfg.Storage.DataFile, logger)
	if cfg.Storage.DataFile != "" {
		logger.Info("file mirror enabled", "path", cfg.Storage.DataFile)
	} else {
		logger.Info("running in-memory only, records are lost on restart")
	}

	router := api.NewRouter(cfg, logger)
	api.RegisterRoutes(router, recordStore)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", "address", address)
	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
