package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"fleetflow-backend/config"
	"fleetflow-backend/internal/audit"
	"fleetflow-backend/internal/fleet"
	"fleetflow-backend/internal/model"
	"fleetflow-backend/internal/mw"
	"fleetflow-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, coord *fleet.Coordinator, recorder *audit.Recorder, webpushOptions *webpush.Options, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, coord, recorder, webpushOptions,
		cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTLMinutes)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)
	authed := mw.AuthRequired(cfg.Auth.JWTSecret)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	managerOnly := mw.RequireRoles(model.RoleManager)
	dispatchRoles := mw.RequireRoles(model.RoleManager, model.RoleDispatcher)
	safetyRoles := mw.RequireRoles(model.RoleManager, model.RoleSafety)

	// Authentication boundary. Rate limited, no token required.
	authGroup := r.Group("/auth")
	authGroup.Use(rateLimiter)
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
	}

	// Audit read model.
	r.GET("/audit/logs", rateLimiter, authed, managerOnly, handler.ListAuditLogs)

	// Console API. Every route requires a valid token; writes are gated
	// per role group. The coordinator itself stays role-unaware.
	api := r.Group("/api")
	api.Use(rateLimiter, authed)
	{
		api.GET("/vehicles", handler.ListVehicles)
		api.GET("/vehicles/:id", handler.GetVehicle)
		api.POST("/vehicles", managerOnly, handler.CreateVehicle)
		api.PUT("/vehicles/:id", managerOnly, handler.UpdateVehicle)
		api.PUT("/vehicles/:id/retire", managerOnly, handler.RetireVehicle)
		api.PUT("/vehicles/:id/service-complete", safetyRoles, handler.CompleteVehicleService)
		api.DELETE("/vehicles/:id", managerOnly, handler.DeleteVehicle)

		api.GET("/drivers", handler.ListDrivers)
		api.GET("/drivers/:id", handler.GetDriver)
		api.POST("/drivers", safetyRoles, handler.CreateDriver)
		api.PUT("/drivers/:id", safetyRoles, handler.UpdateDriver)
		api.PUT("/drivers/:id/suspend", safetyRoles, handler.SuspendDriver)
		api.PUT("/drivers/:id/reinstate", safetyRoles, handler.ReinstateDriver)
		api.DELETE("/drivers/:id", managerOnly, handler.DeleteDriver)

		api.GET("/trips", handler.ListTrips)
		api.GET("/trips/:id", handler.GetTrip)
		api.POST("/trips", dispatchRoles, handler.CreateTrip)
		api.PUT("/trips/:id/dispatch", dispatchRoles, handler.DispatchTrip)
		api.PUT("/trips/:id/complete", dispatchRoles, handler.CompleteTrip)
		api.PUT("/trips/:id/cancel", dispatchRoles, handler.CancelTrip)

		api.GET("/maintenance", handler.ListMaintenanceLogs)
		api.POST("/maintenance", safetyRoles, handler.CreateMaintenanceLog)

		api.GET("/fuel", handler.ListFuelLogs)
		api.POST("/fuel", dispatchRoles, handler.CreateFuelLog)
		api.GET("/expenses", handler.ListExpenses)
		api.POST("/expenses", dispatchRoles, handler.CreateExpense)

		api.GET("/analytics/dashboard", caching, handler.GetDashboard)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
