package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/types"
)

var ErrProfileNotPublic = errors.New("profile is not public")

// PAPService owns personal allergy profiles.
type PAPService struct {
	db *gorm.DB
}

var _ IPAPService = (*PAPService)(nil)

func NewPAPService(db *gorm.DB) *PAPService {
	return &PAPService{db: db}
}

func (s *PAPService) GetByUserID(ctx context.Context, userID string) (*models.PAP, error) {
	var pap models.PAP
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pap).Error; err != nil {
		return nil, err
	}
	return &pap, nil
}

func (s *PAPService) GetByID(ctx context.Context, id string) (*models.PAP, error) {
	var pap models.PAP
	if err := s.db.WithContext(ctx).First(&pap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pap, nil
}

// GetPublic fetches a profile by its sharing identifier. Private profiles
// are indistinguishable from missing ones.
func (s *PAPService) GetPublic(ctx context.Context, publicID string) (*models.PAP, error) {
	var pap models.PAP
	if err := s.db.WithContext(ctx).Where("public_id = ?", publicID).First(&pap).Error; err != nil {
		return nil, err
	}
	if !pap.IsPublic {
		return nil, ErrProfileNotPublic
	}
	return &pap, nil
}

// Update applies a partial update: only fields present in the request are
// written. Making a profile public for the first time assigns its sharing
// identifier.
func (s *PAPService) Update(ctx context.Context, userID string, req *types.UpdatePAPRequest) (*models.PAP, error) {
	var pap models.PAP
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pap).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
		if *req.IsPublic && pap.PublicID == "" {
			updates["public_id"] = uuid.New().String()
		}
	}
	if req.Gender != nil {
		updates["gender"] = req.Gender
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = req.DateOfBirth
	}
	if req.Allergens != nil {
		updates["allergens"] = datatypes.NewJSONSlice(req.Allergens)
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&pap).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).First(&pap, "id = ?", pap.ID).Error; err != nil {
		return nil, err
	}
	return &pap, nil
}
