package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aris-health/aris-backend/internal/models"
)

func TestNewID(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		id := models.NewID()
		assert.True(t, models.IsValidID(id), "generated id %q should be valid", id)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, models.IsValidID("507f1f77bcf86cd799439011"))
	assert.False(t, models.IsValidID(""))
	assert.False(t, models.IsValidID("507f1f77bcf86cd79943901"))    // too short
	assert.False(t, models.IsValidID("507f1f77bcf86cd7994390111")) // too long
	assert.False(t, models.IsValidID("507F1F77BCF86CD799439011"))  // uppercase
	assert.False(t, models.IsValidID("zzzzzzzzzzzzzzzzzzzzzzzz"))
}

func TestLocalizedTextFallback(t *testing.T) {
	text := models.LocalizedText{"en": "Peanut", "ru": "Арахис"}

	assert.Equal(t, "Арахис", text.In("ru"))
	assert.Equal(t, "Peanut", text.In("en"))
	// Unknown language falls back to English.
	assert.Equal(t, "Peanut", text.In("de"))

	onlyRu := models.LocalizedText{"ru": "Арахис"}
	// No English either: any available value beats an empty string.
	assert.Equal(t, "Арахис", onlyRu.In("de"))

	assert.Equal(t, "", models.LocalizedText{}.In("en"))
}

func TestAllergyContains(t *testing.T) {
	grouping := models.Allergy{AllergenIDs: []string{"a", "b"}}
	assert.True(t, grouping.Contains("a"))
	assert.False(t, grouping.Contains("c"))
}

func TestPAPHelpers(t *testing.T) {
	pap := models.PAP{Allergens: []models.PAPAllergen{
		{AllergenID: "a", Degree: 1},
		{AllergenID: "b", Degree: 3},
	}}
	assert.True(t, pap.HasAllergen("a"))
	assert.False(t, pap.HasAllergen("z"))
	assert.Equal(t, []string{"a", "b"}, pap.AllergenIDs())
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&models.User{Role: models.RoleAdmin}).IsAdmin())
	assert.False(t, (&models.User{Role: models.RoleUser}).IsAdmin())
}
