package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PAPAllergen is one allergen association embedded in a profile.
type PAPAllergen struct {
	AllergenID      string     `json:"allergen_id" binding:"required"`
	Degree          int        `json:"degree" binding:"required,min=1,max=5"`
	DiscoveryDate   *time.Time `json:"discovery_date"`
	DiscoveryMethod string     `json:"discovery_method"`
	SymptomIDs      []string   `json:"symptom_ids"`
}

// PAP is a user's personal allergy profile. Exactly one per user; it is
// created with the user and removed with the user.
type PAP struct {
	ID          string                           `gorm:"type:varchar(24);primarykey" json:"id"`
	CreatedAt   time.Time                        `json:"created_at"`
	UpdatedAt   time.Time                        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt                   `gorm:"index" json:"-"`
	UserID      string                           `gorm:"type:varchar(24);not null;uniqueIndex" json:"user_id"`
	PublicID    string                           `gorm:"size:64;index" json:"public_id"`
	IsPublic    bool                             `gorm:"not null;default:true" json:"is_public"`
	Gender      *string                          `gorm:"size:20" json:"gender"`
	DateOfBirth *time.Time                       `json:"date_of_birth"`
	Allergens   datatypes.JSONSlice[PAPAllergen] `json:"allergens"`
}

func (p *PAP) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

// HasAllergen reports whether the profile already lists the allergen.
func (p *PAP) HasAllergen(allergenID string) bool {
	for _, entry := range p.Allergens {
		if entry.AllergenID == allergenID {
			return true
		}
	}
	return false
}

// AllergenIDs returns the ids of all allergens listed in the profile.
func (p *PAP) AllergenIDs() []string {
	ids := make([]string, 0, len(p.Allergens))
	for _, entry := range p.Allergens {
		ids = append(ids, entry.AllergenID)
	}
	return ids
}
