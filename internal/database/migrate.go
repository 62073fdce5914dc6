package database

import (
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/models"
)

// AutoMigrate creates or updates the schema for every model. SQL migration
// files under migrations/ are applied separately by cmd/migrate; this path
// covers development and the sqlite test databases.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PAP{},
		&models.Allergen{},
		&models.Allergy{},
		&models.Symptom{},
		&models.Recommendation{},
		&models.PasswordReset{},
		&models.EmailVerification{},
	)
}
