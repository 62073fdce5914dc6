package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/config"
	"github.com/aris-health/aris-backend/internal/database"
	"github.com/aris-health/aris-backend/internal/middleware"
	"github.com/aris-health/aris-backend/internal/service"
)

// HealthCheck returns the health status of the API.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "ARIS API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes wires every handler under /api.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, authService service.IAuthService, s3Config *config.S3Config, cfg *config.Config) {
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.ErrorHandler())

	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	// Redis backs the brute-force limiters on login and recovery. The API
	// stays up without it; the limiters just switch off.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
		redisClient = nil
	}

	var loginLimiter *middleware.RateLimiter
	var recoveryLimiter *middleware.RateLimiter
	if redisClient != nil {
		loginLimiter = middleware.NewLoginRateLimiter(redisClient)
		recoveryLimiter = middleware.NewRecoveryRateLimiter(redisClient)
	}

	papService := service.NewPAPService(db)
	allergenService := service.NewAllergenService(db)
	symptomService := service.NewSymptomService(db)
	emailService := service.NewEmailService(cfg)
	recService := service.NewRecommendationService(db, emailService)

	var uploadService service.IUploadService
	if s3Config != nil {
		uploadService = service.NewUploadService(s3Config)
	}

	authHandler := NewAuthHandler(authService, cfg.FrontendURL, loginLimiter, recoveryLimiter)
	userHandler := NewUserHandler(authService, db)
	papHandler := NewPAPHandler(papService, authService)
	allergenHandler := NewAllergenHandler(allergenService, authService, db)
	allergyHandler := NewAllergyHandler(authService, db)
	symptomHandler := NewSymptomHandler(symptomService, authService, db)
	recHandler := NewRecommendationHandler(recService, authService, db)
	uploadHandler := NewUploadHandler(uploadService, authService)

	api := router.Group("/api")
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	papHandler.RegisterRoutes(api)
	allergenHandler.RegisterRoutes(api)
	allergyHandler.RegisterRoutes(api)
	symptomHandler.RegisterRoutes(api)
	recHandler.RegisterRoutes(api)
	uploadHandler.RegisterRoutes(api)
}
