package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// Dependencies are the stores and side channels the handlers are built on.
// Events, Cache and DB may be nil.
type Dependencies struct {
	Shops        booking.Repository[models.Shop]
	Barbers      booking.Repository[models.Barber]
	Services     booking.Repository[models.Service]
	Customers    booking.Repository[models.Customer]
	Appointments booking.Repository[models.Appointment]
	Surcharges   booking.SurchargeRepository
	AuditLogs    booking.AuditRepository

	Events *audit.Dispatcher
	Cache  middleware.ResponseCache
	DB     handlers.Pinger
}

// RegisterRoutes installs the global middleware and mounts every route on
// gorm-backed repositories.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	events *audit.Dispatcher,
	cache middleware.ResponseCache,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	deps := Dependencies{
		Shops:        infraRepo.NewShopRepository(db),
		Barbers:      infraRepo.NewBarberRepository(db),
		Services:     infraRepo.NewServiceRepository(db),
		Customers:    infraRepo.NewCustomerRepository(db),
		Appointments: infraRepo.NewAppointmentRepository(db),
		Surcharges:   infraRepo.NewSurchargeRepository(db),
		AuditLogs:    infraRepo.NewAuditRepository(db),
		Events:       events,
		Cache:        cache,
	}

	if sqlDB, err := db.DB(); err == nil {
		deps.DB = sqlDB
	} else {
		log.Warn().Err(err).Msg("health check will not ping the database")
	}

	Mount(r, deps)
}

// Mount binds the resource routes to handlers built from deps.
func Mount(r *gin.Engine, deps Dependencies) {
	validators.Register()

	shopHandler := handlers.NewShopHandler(deps.Shops, deps.Events)
	barberHandler := handlers.NewBarberHandler(deps.Barbers, deps.Events)
	serviceHandler := handlers.NewServiceHandler(deps.Services, deps.Events)
	customerHandler := handlers.NewCustomerHandler(deps.Customers, deps.Events)
	appointmentHandler := handlers.NewAppointmentHandler(deps.Appointments, deps.Events)
	surchargeHandler := handlers.NewSurchargeHandler(deps.Surcharges, deps.Events)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditLogs)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// ======================================================
	// OPERATIONS
	// ======================================================
	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/")
	api.Use(middleware.ResponseCacheMiddleware(deps.Cache))
	{
		shops := api.Group("/shops")
		shops.POST("", shopHandler.Create)
		shops.GET("", shopHandler.List)
		shops.GET("/:shop_id", shopHandler.Get)
		shops.PATCH("/:shop_id", shopHandler.Update)
		shops.DELETE("/:shop_id", shopHandler.Delete)

		barbers := api.Group("/barbers")
		barbers.POST("", barberHandler.Create)
		barbers.GET("", barberHandler.List)
		barbers.GET("/:barber_id", barberHandler.Get)
		barbers.PATCH("/:barber_id", barberHandler.Update)
		barbers.DELETE("/:barber_id", barberHandler.Delete)

		// ------------------------------
		// SURCHARGES (scoped to barber)
		// ------------------------------
		surcharges := barbers.Group("/:barber_id/surcharges")
		surcharges.POST("", surchargeHandler.Create)
		surcharges.GET("", surchargeHandler.List)
		surcharges.GET("/:surcharge_id", surchargeHandler.Get)
		surcharges.PATCH("/:surcharge_id", surchargeHandler.Update)
		surcharges.DELETE("/:surcharge_id", surchargeHandler.Delete)

		services := api.Group("/services")
		services.POST("", serviceHandler.Create)
		services.GET("", serviceHandler.List)
		services.GET("/:service_id", serviceHandler.Get)
		services.PATCH("/:service_id", serviceHandler.Update)
		services.DELETE("/:service_id", serviceHandler.Delete)

		customers := api.Group("/customers")
		customers.POST("", customerHandler.Create)
		customers.GET("", customerHandler.List)
		customers.GET("/:customer_id", customerHandler.Get)
		customers.PATCH("/:customer_id", customerHandler.Update)
		customers.DELETE("/:customer_id", customerHandler.Delete)

		appointments := api.Group("/appointments")
		appointments.POST("", appointmentHandler.Create)
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/:appointment_id", appointmentHandler.Get)
		appointments.PATCH("/:appointment_id", appointmentHandler.Update)
		appointments.DELETE("/:appointment_id", appointmentHandler.Delete)
	}

	// Audit rows are written asynchronously, so they bypass the cache.
	r.GET("/audit-logs", auditLogsHandler.List)
}
