package main

import (
	"context"
	"fmt"
	"os"

	"sien_official/internal/app"
	"sien_official/internal/config"
	"sien_official/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

var Version = "dev"

func main() {
	if err := newRootCmd(buildServices).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildServices wires the same store and use cases the API server runs on.
func buildServices(ctx context.Context) (*app.Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	l, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return app.Build(ctx, cfg, l)
}
