package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/types"
)

// RecommendationService owns user-submitted recommendations.
type RecommendationService struct {
	db    *gorm.DB
	email IEmailService
}

var _ IRecommendationService = (*RecommendationService)(nil)

func NewRecommendationService(db *gorm.DB, email IEmailService) *RecommendationService {
	return &RecommendationService{
		db:    db,
		email: email,
	}
}

// Create stores the recommendation and notifies the admin inbox
// asynchronously; a mail failure never fails the submission.
func (s *RecommendationService) Create(ctx context.Context, req *types.CreateRecommendationRequest, userID string) (*models.Recommendation, error) {
	rec := &models.Recommendation{
		UserID:  userID,
		Type:    req.Type,
		Content: req.Content,
	}

	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create recommendation: %w", err)
	}

	var submitter *models.User
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("[RecommendationService] could not load user for notification: %v", err)
	} else {
		submitter = &user
	}

	go func() {
		if err := s.email.SendRecommendationNotification(rec, submitter); err != nil {
			log.Printf("[RecommendationService] error sending notification: %v", err)
		}
	}()

	return rec, nil
}

// List returns recommendations newest-first, honoring type/user filters.
func (s *RecommendationService) List(ctx context.Context, filters *models.RecommendationFilters) ([]models.Recommendation, error) {
	query := s.db.WithContext(ctx).Preload("User")

	if filters != nil {
		if filters.Type != "" {
			query = query.Where("type = ?", filters.Type)
		}
		if filters.UserID != "" {
			query = query.Where("user_id = ?", filters.UserID)
		}
		if filters.Limit > 0 {
			query = query.Limit(filters.Limit)
		} else {
			query = query.Limit(50)
		}
		if filters.Offset > 0 {
			query = query.Offset(filters.Offset)
		}
	}

	query = query.Order("created_at DESC")

	var recs []models.Recommendation
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return recs, nil
}
