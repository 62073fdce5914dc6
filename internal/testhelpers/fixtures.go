package testhelpers

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/models"
)

// TestPassword is the plaintext behind every fixture account.
const TestPassword = "testpassword123"

// CreateTestUser inserts a verified user with an empty allergy profile.
func CreateTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	now := time.Now()
	user := models.User{
		FirstName:       "Test",
		LastName:        "User",
		Email:           email,
		PasswordHash:    string(hash),
		Role:            role,
		EmailVerifiedAt: &now,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create fixture user: %v", err)
	}

	pap := models.PAP{UserID: user.ID, IsPublic: true}
	if err := db.Create(&pap).Error; err != nil {
		t.Fatalf("failed to create fixture profile: %v", err)
	}

	return &user
}

// CreateTestAllergen inserts a catalog allergen with an English name.
func CreateTestAllergen(t *testing.T, db *gorm.DB, name, allergenType string) *models.Allergen {
	t.Helper()

	allergen := models.Allergen{
		Name: models.LocalizedText{"en": name},
		Type: allergenType,
	}
	if err := db.Create(&allergen).Error; err != nil {
		t.Fatalf("failed to create fixture allergen: %v", err)
	}
	return &allergen
}

// CreateTestSymptom inserts a catalog symptom with an English name.
func CreateTestSymptom(t *testing.T, db *gorm.DB, name, organSystem string, severity, prevalence int) *models.Symptom {
	t.Helper()

	symptom := models.Symptom{
		Name:        models.LocalizedText{"en": name},
		OrganSystem: organSystem,
		Severity:    severity,
		Prevalence:  prevalence,
	}
	if err := db.Create(&symptom).Error; err != nil {
		t.Fatalf("failed to create fixture symptom: %v", err)
	}
	return &symptom
}
