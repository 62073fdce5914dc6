package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/testhelpers"
)

func TestAllergyCRUDFlow(t *testing.T) {
	router, db, authService := setupRouter(t)
	userToken, _ := loginAs(t, db, authService, "user@example.com", models.RoleUser)
	adminToken, _ := loginAs(t, db, authService, "admin@example.com", models.RoleAdmin)

	peanut := testhelpers.CreateTestAllergen(t, db, "Peanut", models.AllergenTypeFood)
	hazelnut := testhelpers.CreateTestAllergen(t, db, "Hazelnut", models.AllergenTypeFood)

	requireStatus(t, doRequest(router, "POST", "/api/allergies", userToken, `{"name": "Nut group"}`), http.StatusForbidden)

	w := doRequest(router, "POST", "/api/allergies", adminToken, `{
		"name": "Nut group",
		"allergen_ids": ["`+peanut.ID+`", "`+hazelnut.ID+`"]
	}`)
	requireStatus(t, w, http.StatusCreated)
	groupingID := decodeBody(t, w)["result"].(map[string]interface{})["id"].(string)

	// Readable by any authenticated user, including via the id query filter.
	w = doRequest(router, "GET", "/api/allergies?id="+groupingID, userToken, "")
	requireStatus(t, w, http.StatusOK)
	result := decodeBody(t, w)["result"].([]interface{})
	require.Len(t, result, 1)
	grouping := result[0].(map[string]interface{})
	assert.Equal(t, "Nut group", grouping["name"])
	assert.Len(t, grouping["allergen_ids"].([]interface{}), 2)

	requireStatus(t, doRequest(router, "PUT", "/api/allergies/"+groupingID, adminToken, `{"name": "Tree nut group"}`), http.StatusOK)
	requireStatus(t, doRequest(router, "DELETE", "/api/allergies/"+groupingID, adminToken, ""), http.StatusOK)
	requireStatus(t, doRequest(router, "GET", "/api/allergies/"+groupingID, userToken, ""), http.StatusNotFound)
}
