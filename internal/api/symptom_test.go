package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/testhelpers"
)

func TestSymptomBriefEndpoint(t *testing.T) {
	router, db, authService := setupRouter(t)
	token, _ := loginAs(t, db, authService, "user@example.com", models.RoleUser)

	testhelpers.CreateTestSymptom(t, db, "Urticaria", "skin", 1, 5)
	testhelpers.CreateTestSymptom(t, db, "Anaphylaxis", "systemic", 3, 1)

	w := doRequest(router, "GET", "/api/symptoms/brief?sort=severity&dir=desc", token, "")
	requireStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["total"])
	result := body["result"].([]interface{})
	require.Len(t, result, 2)
	assert.Equal(t, "Anaphylaxis", result[0].(map[string]interface{})["name"])
}

func TestSymptomMutationsAreAdminOnly(t *testing.T) {
	router, db, authService := setupRouter(t)
	userToken, _ := loginAs(t, db, authService, "user@example.com", models.RoleUser)
	adminToken, _ := loginAs(t, db, authService, "admin@example.com", models.RoleAdmin)

	payload := `{
		"name": {"en": "Wheezing"},
		"organ_system": "respiratory",
		"severity": 2,
		"prevalence": 4
	}`

	requireStatus(t, doRequest(router, "POST", "/api/symptoms", userToken, payload), http.StatusForbidden)
	requireStatus(t, doRequest(router, "POST", "/api/symptoms", adminToken, payload), http.StatusCreated)

	// Severity outside 1..3 fails binding.
	requireStatus(t, doRequest(router, "POST", "/api/symptoms", adminToken, `{
		"name": {"en": "Bad"},
		"severity": 7,
		"prevalence": 1
	}`), http.StatusBadRequest)
}

func TestUploadWithoutS3Returns503(t *testing.T) {
	router, db, authService := setupRouter(t)
	adminToken, _ := loginAs(t, db, authService, "admin@example.com", models.RoleAdmin)

	w := doRequest(router, "POST", "/api/s3-upload", adminToken, "")
	requireStatus(t, w, http.StatusServiceUnavailable)
}
