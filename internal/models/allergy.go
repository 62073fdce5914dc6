package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Allergy is a named grouping of allergens. Two allergens are considered
// cross-reactive when they co-occur in at least one grouping.
type Allergy struct {
	ID          string                      `gorm:"type:varchar(24);primarykey" json:"id"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	DeletedAt   gorm.DeletedAt              `gorm:"index" json:"-"`
	Name        string                      `gorm:"size:100;not null" json:"name"`
	AllergenIDs datatypes.JSONSlice[string] `json:"allergen_ids"`
}

func (a *Allergy) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// Contains reports whether the grouping includes the given allergen.
func (a *Allergy) Contains(allergenID string) bool {
	for _, id := range a.AllergenIDs {
		if id == allergenID {
			return true
		}
	}
	return false
}
