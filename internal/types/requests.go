package types

import (
	"time"

	"github.com/aris-health/aris-backend/internal/models"
)

// Auth

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type RecoverPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// Users

type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Role      *string `json:"role" binding:"omitempty,oneof=admin user"`
}

// Catalog

type CreateAllergenRequest struct {
	Name             models.LocalizedText `json:"name" binding:"required"`
	Description      models.LocalizedText `json:"description"`
	Type             string               `json:"type" binding:"required,oneof=food drug respiratory"`
	CrossAllergenIDs []string             `json:"cross_allergen_ids"`
	Treatment        string               `json:"treatment"`
	FirstAid         string               `json:"first_aid"`
}

type UpdateAllergenRequest struct {
	Name             models.LocalizedText `json:"name"`
	Description      models.LocalizedText `json:"description"`
	Type             *string              `json:"type" binding:"omitempty,oneof=food drug respiratory"`
	CrossAllergenIDs []string             `json:"cross_allergen_ids"`
	Treatment        *string              `json:"treatment"`
	FirstAid         *string              `json:"first_aid"`
}

type CreateAllergyRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	AllergenIDs []string `json:"allergen_ids"`
}

type UpdateAllergyRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=100"`
	AllergenIDs []string `json:"allergen_ids"`
}

type CreateSymptomRequest struct {
	Name        models.LocalizedText `json:"name" binding:"required"`
	Description models.LocalizedText `json:"description"`
	OrganSystem string               `json:"organ_system"`
	Severity    int                  `json:"severity" binding:"required,min=1,max=3"`
	Prevalence  int                  `json:"prevalence" binding:"required,min=1,max=5"`
	Treatment   string               `json:"treatment"`
}

type UpdateSymptomRequest struct {
	Name        models.LocalizedText `json:"name"`
	Description models.LocalizedText `json:"description"`
	OrganSystem *string              `json:"organ_system"`
	Severity    *int                 `json:"severity" binding:"omitempty,min=1,max=3"`
	Prevalence  *int                 `json:"prevalence" binding:"omitempty,min=1,max=5"`
	Treatment   *string              `json:"treatment"`
}

// BriefQuery carries the query parameters accepted by brief listings.
type BriefQuery struct {
	Name  string `form:"name"`
	Type  string `form:"type"`
	Lang  string `form:"lang"`
	Sort  string `form:"sort"`
	Dir   string `form:"dir" binding:"omitempty,oneof=asc desc"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// PAP

type UpdatePAPRequest struct {
	IsPublic    *bool                `json:"is_public"`
	Gender      *string              `json:"gender"`
	DateOfBirth *time.Time           `json:"date_of_birth"`
	Allergens   []models.PAPAllergen `json:"allergens" binding:"omitempty,dive"`
}

// Recommendations

type CreateRecommendationRequest struct {
	Type    string `json:"type" binding:"required,oneof='Allergen Suggestion' 'General Feedback'"`
	Content string `json:"content" binding:"required,max=2000"`
}

type UpdateRecommendationRequest struct {
	Type    *string `json:"type" binding:"omitempty,oneof='Allergen Suggestion' 'General Feedback'"`
	Content *string `json:"content" binding:"omitempty,max=2000"`
}
