package api_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/config"
	"github.com/aris-health/aris-backend/internal/api"
	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/service"
	"github.com/aris-health/aris-backend/internal/testhelpers"
)

// setupRouter builds a full router over an in-memory database. Rate limiting
// is off (no redis) and uploads are disabled (no S3), matching a minimal
// deployment.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDatabase(t)
	cfg := &config.Config{FrontendURL: "http://localhost:3000"}
	emailService := service.NewEmailService(cfg)
	authService := service.NewAuthService(db, "test-secret", emailService)

	router := gin.New()
	router.Use(gin.Recovery())

	papService := service.NewPAPService(db)
	allergenService := service.NewAllergenService(db)
	symptomService := service.NewSymptomService(db)
	recService := service.NewRecommendationService(db, emailService)

	group := router.Group("/api")
	api.NewAuthHandler(authService, cfg.FrontendURL, nil, nil).RegisterRoutes(group)
	api.NewUserHandler(authService, db).RegisterRoutes(group)
	api.NewPAPHandler(papService, authService).RegisterRoutes(group)
	api.NewAllergenHandler(allergenService, authService, db).RegisterRoutes(group)
	api.NewAllergyHandler(authService, db).RegisterRoutes(group)
	api.NewSymptomHandler(symptomService, authService, db).RegisterRoutes(group)
	api.NewRecommendationHandler(recService, authService, db).RegisterRoutes(group)
	api.NewUploadHandler(nil, authService).RegisterRoutes(group)

	return router, db, authService
}

// loginAs creates a fixture account with the given role and returns its
// bearer token together with the user.
func loginAs(t *testing.T, db *gorm.DB, authService *service.AuthService, email, role string) (string, *models.User) {
	t.Helper()
	user := testhelpers.CreateTestUser(t, db, email, role)
	token, err := authService.GenerateToken(user)
	require.NoError(t, err)
	return token, user
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
