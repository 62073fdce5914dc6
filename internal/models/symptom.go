package models

import (
	"time"

	"gorm.io/gorm"
)

// Symptom is a catalog entry managed by administrators.
type Symptom struct {
	ID          string         `gorm:"type:varchar(24);primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        LocalizedText  `gorm:"type:json;not null" json:"name"`
	Description LocalizedText  `gorm:"type:json" json:"description"`
	OrganSystem string         `gorm:"size:50" json:"organ_system"`
	Severity    int            `gorm:"not null;check:severity >= 1 AND severity <= 3" json:"severity"`
	Prevalence  int            `gorm:"not null;check:prevalence >= 1 AND prevalence <= 5" json:"prevalence"`
	Treatment   string         `gorm:"type:text" json:"treatment"`
}

func (s *Symptom) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}

// SymptomBrief is the projection returned by list views.
type SymptomBrief struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OrganSystem string `json:"organ_system"`
	Severity    int    `json:"severity"`
}

func (s *Symptom) Brief(lang string) SymptomBrief {
	return SymptomBrief{
		ID:          s.ID,
		Name:        s.Name.In(lang),
		OrganSystem: s.OrganSystem,
		Severity:    s.Severity,
	}
}
