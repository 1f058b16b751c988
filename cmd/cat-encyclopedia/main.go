package main

import (
	"log"
	"os"
	"time"

	"cat-encyclopedia/internal/app"
	"cat-encyclopedia/internal/config"
	"cat-encyclopedia/internal/logger"
	"cat-encyclopedia/internal/shutdown"
)

func main() {
	cfg, cfgErr := config.Load()
	appLogger := newLogger(cfg)
	if cfgErr != nil {
		appLogger.Warning("Main", "config file ignored", map[string]interface{}{
			"error": cfgErr.Error(),
		})
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	shutdownManager := shutdown.NewManager(appLogger, 5*time.Second)
	shutdownManager.Register("application", shutdown.Func(application.Shutdown))
	shutdownManager.Listen()

	if err := application.Run(shutdownManager.Context()); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	appLogger.Info("Main", "application terminated", nil)
}

// newLogger falls back to info level when the configured level is invalid;
// Validate reports that case during start-up.
func newLogger(cfg config.Config) logger.Logger {
	level, _ := logger.ParseLevel(cfg.LogLevel)
	if cfg.JSONLogs {
		return logger.NewZerolog(os.Stdout, level)
	}
	return logger.NewConsoleLogger(level)
}
