package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/store"
	"github.com/aris-health/aris-backend/internal/types"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidVerifyToken = errors.New("invalid or expired verification token")
)

const (
	tokenTTL       = 24 * time.Hour
	resetTokenTTL  = time.Hour
	verifyTokenTTL = 24 * time.Hour
)

// AuthService owns user accounts: registration, sessions, password flows,
// email verification and account deletion.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	email     IEmailService
}

var _ IAuthService = (*AuthService)(nil)

func NewAuthService(db *gorm.DB, jwtSecret string, email IEmailService) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		email:     email,
	}
}

// Register creates the user together with their empty allergy profile in one
// transaction, then queues the verification email.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
	}

	verification := models.EmailVerification{
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(verifyTokenTTL),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		pap := models.PAP{
			UserID:   user.ID,
			IsPublic: true,
		}
		if err := tx.Create(&pap).Error; err != nil {
			return err
		}
		verification.UserID = user.ID
		return tx.Create(&verification).Error
	})
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.email.SendVerificationEmail(&user, verification.Token); err != nil {
			log.Printf("[AuthService] failed to send verification email: %v", err)
		}
	}()

	return &user, nil
}

// Login verifies credentials and returns the user with a fresh session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ChangePassword verifies the caller's current password before writing the
// new hash. A mismatching current password is an expected outcome reported
// as false, not an error.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		return false, err
	}
	return true, nil
}

// RecoverPassword stores a one-hour reset token and mails the reset link.
// Callers receive the same response whether or not the account exists, so a
// missing account returns nil here.
func (s *AuthService) RecoverPassword(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.db.WithContext(ctx).Create(&reset).Error; err != nil {
		return err
	}

	go func() {
		if err := s.email.SendPasswordResetEmail(&user, reset.Token); err != nil {
			log.Printf("[AuthService] failed to send password reset email: %v", err)
		}
	}()

	return nil
}

// ValidateResetToken reports whether the token exists and is still inside
// its expiry window.
func (s *AuthService) ValidateResetToken(ctx context.Context, token string) error {
	var reset models.PasswordReset
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&reset).Error; err != nil {
		return ErrInvalidResetToken
	}
	if reset.Expired() {
		return ErrInvalidResetToken
	}
	return nil
}

// ResetPassword consumes a reset token exactly once: the password update and
// the token deletion commit together.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reset models.PasswordReset
		if err := tx.Where("token = ?", token).First(&reset).Error; err != nil {
			return ErrInvalidResetToken
		}
		if reset.Expired() {
			return ErrInvalidResetToken
		}

		result := tx.Model(&models.User{}).Where("id = ?", reset.UserID).
			Update("password_hash", string(hashed))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInvalidResetToken
		}

		return tx.Delete(&reset).Error
	})
}

// VerifyEmail marks the account verified and removes the token.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	var verification models.EmailVerification
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&verification).Error; err != nil {
		return nil, ErrInvalidVerifyToken
	}
	if verification.Expired() {
		return nil, ErrInvalidVerifyToken
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", verification.UserID).Error; err != nil {
			return err
		}
		now := time.Now()
		if err := tx.Model(&user).Update("email_verified_at", &now).Error; err != nil {
			return err
		}
		user.EmailVerifiedAt = &now
		return tx.Delete(&verification).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteAccount removes the user and their allergy profile as one atomic
// unit; a failure on either side rolls back both.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) (store.MutationOutcome, error) {
	outcome := store.OutcomeNotFound
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.PAP{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			outcome = store.OutcomeApplied
		}
		return nil
	})
	if err != nil {
		return store.OutcomeNotFound, err
	}
	return outcome, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
