package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/store"
	"github.com/aris-health/aris-backend/internal/testhelpers"
)

func TestStoreCreateAndGet(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	allergies := store.New[models.Allergy](db)
	ctx := context.Background()

	allergy := &models.Allergy{Name: "Tree nut allergy"}
	require.NoError(t, allergies.Create(ctx, allergy))
	assert.Len(t, allergy.ID, 24)

	got, err := allergies.GetByID(ctx, allergy.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tree nut allergy", got.Name)
}

func TestStoreGetMissing(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	allergies := store.New[models.Allergy](db)

	_, err := allergies.GetByID(context.Background(), "000000000000000000000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStoreListWithIDFilter(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	allergies := store.New[models.Allergy](db)
	ctx := context.Background()

	first := &models.Allergy{Name: "Pollen-food syndrome"}
	second := &models.Allergy{Name: "Latex-fruit syndrome"}
	require.NoError(t, allergies.Create(ctx, first))
	require.NoError(t, allergies.Create(ctx, second))

	all, err := allergies.List(ctx, store.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// An id filter collapses the listing to one record.
	one, err := allergies.List(ctx, store.ListQuery{ID: first.ID})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, first.ID, one[0].ID)

	none, err := allergies.List(ctx, store.ListQuery{ID: "000000000000000000000000"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStoreListPagination(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	allergies := store.New[models.Allergy](db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, allergies.Create(ctx, &models.Allergy{Name: "Group"}))
	}

	page, err := allergies.List(ctx, store.ListQuery{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestStoreListAllIsUncapped(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	allergies := store.New[models.Allergy](db)
	ctx := context.Background()

	records := make([]models.Allergy, store.DefaultListLimit+5)
	for i := range records {
		records[i] = models.Allergy{Name: "Grouping"}
	}
	require.NoError(t, db.Create(&records).Error)

	// List stops at the default page, ListAll does not.
	paged, err := allergies.List(ctx, store.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, paged, store.DefaultListLimit)

	all, err := allergies.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, store.DefaultListLimit+5)
}

func TestStoreUpdateOutcome(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	allergies := store.New[models.Allergy](db)
	ctx := context.Background()

	allergy := &models.Allergy{Name: "Old name"}
	require.NoError(t, allergies.Create(ctx, allergy))

	outcome, err := allergies.Update(ctx, allergy.ID, map[string]interface{}{"name": "New name"})
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeApplied, outcome)

	got, err := allergies.GetByID(ctx, allergy.ID)
	require.NoError(t, err)
	assert.Equal(t, "New name", got.Name)

	outcome, err = allergies.Update(ctx, "000000000000000000000000", map[string]interface{}{"name": "x"})
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeNotFound, outcome)
}

func TestStoreDeleteOutcome(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	allergies := store.New[models.Allergy](db)
	ctx := context.Background()

	allergy := &models.Allergy{Name: "Short lived"}
	require.NoError(t, allergies.Create(ctx, allergy))

	outcome, err := allergies.Delete(ctx, allergy.ID)
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeApplied, outcome)

	// A second delete reports not found rather than erroring.
	outcome, err = allergies.Delete(ctx, allergy.ID)
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeNotFound, outcome)
}

func TestStoreCount(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	symptoms := store.New[models.Symptom](db)
	ctx := context.Background()

	testhelpers.CreateTestSymptom(t, db, "Urticaria", "skin", 1, 5)
	testhelpers.CreateTestSymptom(t, db, "Rhinitis", "respiratory", 1, 5)

	count, err := symptoms.Count(ctx, store.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
