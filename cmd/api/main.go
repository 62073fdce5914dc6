package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/aris-health/aris-backend/config"
	"github.com/aris-health/aris-backend/internal/database"
	"github.com/aris-health/aris-backend/internal/server"
	"github.com/aris-health/aris-backend/internal/service"
)

func main() {
	// .env is optional; real deployments use environment variables or
	// Docker secrets.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var s3Config *config.S3Config
	if cfg.S3Bucket != "" {
		s3Config, err = config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Printf("Warning: S3 unavailable, uploads disabled: %v", err)
			s3Config = nil
		}
	} else {
		log.Println("S3 bucket not configured, uploads disabled")
	}

	emailService := service.NewEmailService(cfg)
	authService := service.NewAuthService(db, cfg.JWTSecret, emailService)

	srv := server.NewServer(db, authService, s3Config, cfg)

	log.Printf("Starting ARIS API on port %s", cfg.ServerPort)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
