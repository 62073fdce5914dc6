package service

import (
	"context"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/store"
	"github.com/aris-health/aris-backend/internal/types"
)

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *models.User) (string, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (bool, error)
	RecoverPassword(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	VerifyEmail(ctx context.Context, token string) (*models.User, error)
	DeleteAccount(ctx context.Context, userID string) (store.MutationOutcome, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// IPAPService defines the interface for personal allergy profile operations.
type IPAPService interface {
	GetByUserID(ctx context.Context, userID string) (*models.PAP, error)
	GetByID(ctx context.Context, id string) (*models.PAP, error)
	GetPublic(ctx context.Context, publicID string) (*models.PAP, error)
	Update(ctx context.Context, userID string, req *types.UpdatePAPRequest) (*models.PAP, error)
}

// IAllergenService defines the interface for allergen catalog operations.
type IAllergenService interface {
	Brief(ctx context.Context, q types.BriefQuery) ([]models.AllergenBrief, int, error)
	Detail(ctx context.Context, id string) (*models.Allergen, []models.Allergen, error)
	Remaining(ctx context.Context, userID, name, lang string) ([]models.Allergen, error)
	CrossSensitivityByAllergen(ctx context.Context, allergenID string) ([]models.Allergen, error)
	CrossSensitivityByUser(ctx context.Context, userID string) ([]models.Allergen, error)
}

// ISymptomService defines the interface for symptom catalog operations.
type ISymptomService interface {
	Brief(ctx context.Context, q types.BriefQuery) ([]models.SymptomBrief, int, error)
}

// IRecommendationService defines the interface for recommendation operations.
type IRecommendationService interface {
	Create(ctx context.Context, req *types.CreateRecommendationRequest, userID string) (*models.Recommendation, error)
	List(ctx context.Context, filters *models.RecommendationFilters) ([]models.Recommendation, error)
}

// IEmailService defines the interface for outbound email.
type IEmailService interface {
	SendEmail(to, subject, body string) error
	SendVerificationEmail(user *models.User, token string) error
	SendPasswordResetEmail(user *models.User, token string) error
	SendRecommendationNotification(rec *models.Recommendation, user *models.User) error
}

// IUploadService defines the interface for object storage uploads.
type IUploadService interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error)
}
