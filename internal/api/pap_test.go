package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/testhelpers"
)

func TestPAPGetOwn(t *testing.T) {
	router, db, authService := setupRouter(t)
	token, user := loginAs(t, db, authService, "pap@example.com", models.RoleUser)

	requireStatus(t, doRequest(router, "GET", "/api/pap", "", ""), http.StatusUnauthorized)

	w := doRequest(router, "GET", "/api/pap", token, "")
	requireStatus(t, w, http.StatusOK)
	result := decodeBody(t, w)["result"].(map[string]interface{})
	assert.Equal(t, user.ID, result["user_id"])
}

func TestPAPUpdateEndpoint(t *testing.T) {
	router, db, authService := setupRouter(t)
	token, _ := loginAs(t, db, authService, "pap@example.com", models.RoleUser)
	allergen := testhelpers.CreateTestAllergen(t, db, "Peanut", models.AllergenTypeFood)

	w := doRequest(router, "PUT", "/api/pap", token, `{
		"gender": "male",
		"allergens": [
			{"allergen_id": "`+allergen.ID+`", "degree": 3, "discovery_method": "oral food challenge"}
		]
	}`)
	requireStatus(t, w, http.StatusOK)
	result := decodeBody(t, w)["result"].(map[string]interface{})
	assert.Equal(t, "male", result["gender"])
	allergens := result["allergens"].([]interface{})
	require.Len(t, allergens, 1)
	entry := allergens[0].(map[string]interface{})
	assert.Equal(t, allergen.ID, entry["allergen_id"])
	assert.EqualValues(t, 3, entry["degree"])
}

func TestPAPUpdateValidatesDegree(t *testing.T) {
	router, db, authService := setupRouter(t)
	token, _ := loginAs(t, db, authService, "pap@example.com", models.RoleUser)
	allergen := testhelpers.CreateTestAllergen(t, db, "Peanut", models.AllergenTypeFood)

	w := doRequest(router, "PUT", "/api/pap", token, `{
		"allergens": [
			{"allergen_id": "`+allergen.ID+`", "degree": 9}
		]
	}`)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestPAPPublicRoute(t *testing.T) {
	router, db, authService := setupRouter(t)
	token, _ := loginAs(t, db, authService, "share@example.com", models.RoleUser)

	// Opt into sharing to obtain the public id.
	w := doRequest(router, "PUT", "/api/pap", token, `{"is_public": true}`)
	requireStatus(t, w, http.StatusOK)
	publicID := decodeBody(t, w)["result"].(map[string]interface{})["public_id"].(string)
	require.NotEmpty(t, publicID)

	// No session needed for the shared view.
	requireStatus(t, doRequest(router, "GET", "/api/pap/public/"+publicID, "", ""), http.StatusOK)

	// A private profile is indistinguishable from a missing one.
	w = doRequest(router, "PUT", "/api/pap", token, `{"is_public": false}`)
	requireStatus(t, w, http.StatusOK)

	w = doRequest(router, "GET", "/api/pap/public/"+publicID, "", "")
	requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "allergy profile not found", decodeBody(t, w)["message"])

	requireStatus(t, doRequest(router, "GET", "/api/pap/public/unknown-id", "", ""), http.StatusNotFound)
}

func TestPAPAdminLookupByID(t *testing.T) {
	router, db, authService := setupRouter(t)
	userToken, user := loginAs(t, db, authService, "user@example.com", models.RoleUser)
	adminToken, _ := loginAs(t, db, authService, "admin@example.com", models.RoleAdmin)

	var pap models.PAP
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&pap).Error)

	requireStatus(t, doRequest(router, "GET", "/api/paps/"+pap.ID, userToken, ""), http.StatusForbidden)
	requireStatus(t, doRequest(router, "GET", "/api/paps/"+pap.ID, adminToken, ""), http.StatusOK)
}
