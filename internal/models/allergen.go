package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AllergenTypeFood        = "food"
	AllergenTypeDrug        = "drug"
	AllergenTypeRespiratory = "respiratory"
)

// Allergen is a catalog entry managed by administrators.
type Allergen struct {
	ID               string                      `gorm:"type:varchar(24);primarykey" json:"id"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
	DeletedAt        gorm.DeletedAt              `gorm:"index" json:"-"`
	Name             LocalizedText               `gorm:"type:json;not null" json:"name"`
	Description      LocalizedText               `gorm:"type:json" json:"description"`
	Type             string                      `gorm:"size:20;not null" json:"type"`
	CrossAllergenIDs datatypes.JSONSlice[string] `json:"cross_allergen_ids"`
	Treatment        string                      `gorm:"type:text" json:"treatment"`
	FirstAid         string                      `gorm:"type:text" json:"first_aid"`
}

func (a *Allergen) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// AllergenBrief is the projection returned by list views.
type AllergenBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Brief projects the allergen into the given language.
func (a *Allergen) Brief(lang string) AllergenBrief {
	return AllergenBrief{
		ID:   a.ID,
		Name: a.Name.In(lang),
		Type: a.Type,
	}
}
