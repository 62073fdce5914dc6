package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/service"
	"github.com/aris-health/aris-backend/internal/testhelpers"
	"github.com/aris-health/aris-backend/internal/types"
)

func TestPAPUpdatePartial(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	svc := service.NewPAPService(db)
	ctx := context.Background()
	user := testhelpers.CreateTestUser(t, db, "pap@example.com", models.RoleUser)
	allergen := testhelpers.CreateTestAllergen(t, db, "Peanut", models.AllergenTypeFood)

	gender := "female"
	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	pap, err := svc.Update(ctx, user.ID, &types.UpdatePAPRequest{
		Gender:      &gender,
		DateOfBirth: &dob,
		Allergens: []models.PAPAllergen{
			{AllergenID: allergen.ID, Degree: 4, DiscoveryMethod: "skin prick test"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, pap.Gender)
	assert.Equal(t, "female", *pap.Gender)
	require.Len(t, pap.Allergens, 1)
	assert.Equal(t, allergen.ID, pap.Allergens[0].AllergenID)
	assert.Equal(t, 4, pap.Allergens[0].Degree)

	// Untouched fields survive a later partial update.
	newGender := "other"
	pap, err = svc.Update(ctx, user.ID, &types.UpdatePAPRequest{Gender: &newGender})
	require.NoError(t, err)
	assert.Equal(t, "other", *pap.Gender)
	assert.Len(t, pap.Allergens, 1)
	require.NotNil(t, pap.DateOfBirth)
	assert.True(t, pap.DateOfBirth.Equal(dob))
}

func TestPAPPublicIDAssignedOnce(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	svc := service.NewPAPService(db)
	ctx := context.Background()
	user := testhelpers.CreateTestUser(t, db, "share@example.com", models.RoleUser)

	// The fixture profile starts public but without a share id yet.
	isPublic := true
	pap, err := svc.Update(ctx, user.ID, &types.UpdatePAPRequest{IsPublic: &isPublic})
	require.NoError(t, err)
	require.NotEmpty(t, pap.PublicID)
	firstPublicID := pap.PublicID

	// Toggling visibility keeps the same share id.
	notPublic := false
	_, err = svc.Update(ctx, user.ID, &types.UpdatePAPRequest{IsPublic: &notPublic})
	require.NoError(t, err)
	pap, err = svc.Update(ctx, user.ID, &types.UpdatePAPRequest{IsPublic: &isPublic})
	require.NoError(t, err)
	assert.Equal(t, firstPublicID, pap.PublicID)
}

func TestPAPGetPublicHidesPrivateProfiles(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	svc := service.NewPAPService(db)
	ctx := context.Background()
	user := testhelpers.CreateTestUser(t, db, "private@example.com", models.RoleUser)

	isPublic := true
	pap, err := svc.Update(ctx, user.ID, &types.UpdatePAPRequest{IsPublic: &isPublic})
	require.NoError(t, err)

	got, err := svc.GetPublic(ctx, pap.PublicID)
	require.NoError(t, err)
	assert.Equal(t, pap.ID, got.ID)

	// Flipping the profile private makes it unreachable by share id.
	notPublic := false
	_, err = svc.Update(ctx, user.ID, &types.UpdatePAPRequest{IsPublic: &notPublic})
	require.NoError(t, err)

	_, err = svc.GetPublic(ctx, pap.PublicID)
	assert.ErrorIs(t, err, service.ErrProfileNotPublic)

	_, err = svc.GetPublic(ctx, "no-such-share-id")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
