package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/config"
	"github.com/aris-health/aris-backend/internal/api"
	"github.com/aris-health/aris-backend/internal/service"
)

// Server wraps the gin engine and handles its lifecycle.
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// NewServer builds the router with every route registered.
func NewServer(db *gorm.DB, auth service.IAuthService, s3Config *config.S3Config, cfg *config.Config) *Server {
	router := gin.Default()

	api.RegisterRoutes(router, db, auth, s3Config, cfg)

	return &Server{
		router: router,
		db:     db,
	}
}

// Router exposes the engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
