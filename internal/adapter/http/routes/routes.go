package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "sien_official/docs" // swagger spec registration
	"sien_official/internal/adapter/http/middleware"
	"sien_official/internal/app"
	"sien_official/internal/config"
	"sien_official/internal/infrastructure/scheduler"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathAPI     = "/api"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*any"

	shutdownTimeout = 10 * time.Second
)

// NewRouter builds the gin engine over the wired services.
func NewRouter(svc *app.Services) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(svc.Logger))
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics(svc.Metrics))

	// Swagger documentation endpoint
	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathMetrics, gin.WrapH(svc.Metrics.Handler()))
	addPingRoutes(&router.RouterGroup)

	api := router.Group(PathAPI)
	addAdminRoutes(api, svc)
	addOrderRoutes(api, svc)
	addCronRoutes(api, svc)

	return router
}

// Run wires the services, starts the optional in-process scheduler and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	svc, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Alert.Schedule != "" {
		sched, err := scheduler.New(cfg.Alert.Schedule, cfg.Alert.Location, svc.Alerts, svc.Metrics.ObserveScan, logger)
		if err != nil {
			return err
		}
		sched.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			sched.Stop(stopCtx)
		}()
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           NewRouter(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
