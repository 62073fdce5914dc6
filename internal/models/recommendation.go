package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RecommendationAllergenSuggestion = "Allergen Suggestion"
	RecommendationGeneralFeedback    = "General Feedback"
)

// Recommendation is free-text feedback submitted by an authenticated user.
type Recommendation struct {
	ID        string         `gorm:"type:varchar(24);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    string         `gorm:"type:varchar(24);not null;index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type      string         `gorm:"size:30;not null" json:"type"`
	Content   string         `gorm:"type:text;not null" json:"content"`
}

func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	return nil
}

// RecommendationFilters narrows admin listings.
type RecommendationFilters struct {
	Type   string `json:"type,omitempty"`
	UserID string `json:"user_id,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}
