package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"sien_official/internal/adapter/http/routes"
	"sien_official/internal/config"
	"sien_official/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Sien Official API
// @version         1.0
// @description     Commission site backend: portfolio content, order intake and deadline alerts.

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey AdminPassword
// @in header
// @name x-admin-password

// @securityDefinitions.apikey CronSecret
// @in header
// @name Authorization
// @description CRON_SECRET, optionally prefixed with "Bearer ".

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, l); err != nil {
		l.Fatal("Failed to startup the application", zap.Error(err))
	}
}
