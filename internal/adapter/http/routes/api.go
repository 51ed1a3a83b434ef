package routes

import (
	"sien_official/internal/adapter/http/handlers"
	"sien_official/internal/adapter/http/middleware"
	"sien_official/internal/app"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin = "/admin"
	PathOrder = "/order"
	PathCron  = "/cron"
)

// unservedMethods answer 405 on routes that only take GET/POST.
var unservedMethods = []string{"PUT", "PATCH", "DELETE"}

func addAdminRoutes(rg *gin.RouterGroup, svc *app.Services) {
	h := handlers.NewAdminHandler(svc.Orders, svc.Site)

	// The gate runs before the method check, so unauthenticated PUT/DELETE still see 401.
	admin := rg.Group(PathAdmin, middleware.RequireSecret(svc.Config.Auth.AdminPassword, middleware.AdminCredential, middleware.IsPublicRead))
	{
		admin.GET("", h.Get)
		admin.POST("", h.Post)
		for _, m := range unservedMethods {
			admin.Handle(m, "", handlers.MethodNotAllowed)
		}
	}
}

func addOrderRoutes(rg *gin.RouterGroup, svc *app.Services) {
	h := handlers.NewOrderHandler(svc.Orders, svc.Metrics.OrderCreated)

	order := rg.Group(PathOrder)
	{
		order.POST("", h.Create)
		order.GET("", handlers.MethodNotAllowed)
		for _, m := range unservedMethods {
			order.Handle(m, "", handlers.MethodNotAllowed)
		}
	}
}

func addCronRoutes(rg *gin.RouterGroup, svc *app.Services) {
	h := handlers.NewCronHandler(svc.Alerts, svc.Metrics.ObserveScan)

	cron := rg.Group(PathCron, middleware.RequireSecret(svc.Config.Auth.CronSecret, middleware.CronCredential, nil))
	{
		cron.GET("", h.Run)
		cron.POST("", h.Run)
	}
}
