package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vazqueztomas/barbershop/internal/audit"
	"github.com/vazqueztomas/barbershop/internal/config"
	"github.com/vazqueztomas/barbershop/internal/handlers"
	infraRepo "github.com/vazqueztomas/barbershop/internal/infra/repository"
	"github.com/vazqueztomas/barbershop/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	r.Use(middleware.RequestIDMiddleware())

	// ------------------------------
	// INFRA
	// ------------------------------
	haircutRepo := infraRepo.NewHaircutGormRepository(db)
	priceRepo := infraRepo.NewServicePriceGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db, time.Duration(cfg.ResetTokenMinutes)*time.Minute)

	auditLogger := audit.New(db)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	haircutHandler := handlers.NewHaircutHandler(haircutRepo, auditLogger, cfg)
	clientStatsHandler := handlers.NewClientStatsHandler(haircutRepo)
	priceHandler := handlers.NewServicePriceHandler(priceRepo, auditLogger)
	authHandler := handlers.NewAuthHandler(userRepo, auditLogger, cfg)
	meHandler := handlers.NewMeHandler(userRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ------------------------------
	// HAIRCUTS
	// ------------------------------
	haircuts := r.Group("/haircuts")
	{
		haircuts.GET("", haircutHandler.List)
		haircuts.POST("/create", haircutHandler.Create)
		haircuts.PUT("/update", haircutHandler.Update)

		haircuts.GET("/history/daily", haircutHandler.DailyHistory)
		haircuts.GET("/history/today", haircutHandler.TodaySummary)
		haircuts.GET("/history/date/:date", haircutHandler.ListByDate)
		haircuts.DELETE("/history/date/:date", haircutHandler.DeleteByDate)

		haircuts.GET("/clients", clientStatsHandler.ListClients)
		haircuts.GET("/clients/top", clientStatsHandler.Top)
		haircuts.GET("/clients/by-spent", clientStatsHandler.BySpent)
		haircuts.GET("/clients/:name/stats", clientStatsHandler.Stats)
		haircuts.GET("/clients/:name/history", clientStatsHandler.History)

		haircuts.GET("/services/prices", priceHandler.List)
		haircuts.POST("/services/prices", priceHandler.Create)
		haircuts.GET("/services/prices/:name", priceHandler.GetByName)
		haircuts.PUT("/services/prices/:name", priceHandler.UpdatePrice)
		haircuts.DELETE("/services/prices/:name", priceHandler.Delete)

		haircuts.GET("/:id", haircutHandler.GetByID)
		haircuts.PATCH("/:id/price", haircutHandler.UpdatePrice)
		haircuts.DELETE("/:id", haircutHandler.Delete)
	}

	// ------------------------------
	// AUTH
	// ------------------------------
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/token", authHandler.Token)
		auth.POST("/password-reset", authHandler.RequestPasswordReset)
		auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)

		auth.GET("/me", middleware.AuthMiddleware(cfg), meHandler.GetMe)
	}

	// ------------------------------
	// AUDIT
	// ------------------------------
	r.GET("/audit-logs", middleware.AuthMiddleware(cfg), auditLogsHandler.List)
}
