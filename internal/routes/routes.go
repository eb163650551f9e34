package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availCache := cache.NewAvailability(rdb, 2*time.Minute)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
		availCache,
		cfg.ShopTimezone,
	)

	confirmUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.ShopTimezone,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		availCache,
		cfg.ShopTimezone,
	)

	availUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availCache,
		cfg.SlotGranularityMin,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(db, cfg, availUC, appointmentRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		bookUC,
		confirmUC,
		completeUC,
		cancelUC,
		listByDateUC,
		listByMonthUC,
		appointmentRepo,
	)

	workingDaysHandler := handlers.NewWorkingDaysHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	userHandler := handlers.NewUserHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimitMiddleware())
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/barbers/:id", publicHandler.GetBarber)
			publicAPI.GET("/barbers/:id/availability", publicHandler.Availability)
			publicAPI.GET("/barbers/:id/reviews", reviewHandler.List)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/appointments/:reference", publicHandler.LookupAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", middleware.RateLimitMiddleware(), authHandler.Register)
		api.POST("/auth/login", middleware.RateLimitMiddleware(), authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.GetMe)

			// ------------------------------
			// CLIENTE
			// ------------------------------
			client := secured.Group("/me")
			client.Use(middleware.RequireRoles(models.RoleClient))
			{
				client.POST("/appointments", appointmentHandler.Create)
				client.GET("/appointments", appointmentHandler.ListMine)
				client.POST("/barbers/:id/reviews", reviewHandler.Create)
			}

			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// BARBEIRO
			// ------------------------------
			barber := secured.Group("/barber")
			barber.Use(middleware.RequireRoles(models.RoleBarber))
			{
				barber.GET("/appointments", appointmentHandler.ListByDate)
				barber.GET("/appointments/month", appointmentHandler.ListByMonth)
				barber.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
				barber.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

				barber.GET("/working-days", workingDaysHandler.Get)
				barber.PUT("/working-days", workingDaysHandler.Update)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRoles(models.RoleAdmin))
			{
				admin.GET("/dashboard", dashboardHandler.Summary)

				admin.GET("/users", userHandler.List)

				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
