package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aris-health/aris-backend/internal/models"
)

func TestRecommendationCreateEndpoint(t *testing.T) {
	router, db, authService := setupRouter(t)
	token, user := loginAs(t, db, authService, "rec@example.com", models.RoleUser)

	requireStatus(t, doRequest(router, "POST", "/api/recommendations", "", `{}`), http.StatusUnauthorized)

	w := doRequest(router, "POST", "/api/recommendations", token, `{
		"type": "Allergen Suggestion",
		"content": "Please add sesame."
	}`)
	requireStatus(t, w, http.StatusCreated)
	result := decodeBody(t, w)["result"].(map[string]interface{})
	assert.Equal(t, user.ID, result["user_id"])

	// Unknown type fails binding.
	w = doRequest(router, "POST", "/api/recommendations", token, `{
		"type": "Bug Report",
		"content": "nope"
	}`)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestRecommendationReviewIsAdminOnly(t *testing.T) {
	router, db, authService := setupRouter(t)
	userToken, _ := loginAs(t, db, authService, "rec@example.com", models.RoleUser)
	adminToken, _ := loginAs(t, db, authService, "admin@example.com", models.RoleAdmin)

	requireStatus(t, doRequest(router, "POST", "/api/recommendations", userToken, `{
		"type": "General Feedback",
		"content": "Nice."
	}`), http.StatusCreated)

	requireStatus(t, doRequest(router, "GET", "/api/recommendations", userToken, ""), http.StatusForbidden)

	w := doRequest(router, "GET", "/api/recommendations", adminToken, "")
	requireStatus(t, w, http.StatusOK)
	result := decodeBody(t, w)["result"].([]interface{})
	require.Len(t, result, 1)
	rec := result[0].(map[string]interface{})
	assert.Equal(t, "General Feedback", rec["type"])
	// Listings resolve the submitting user.
	submitter := rec["user"].(map[string]interface{})
	assert.Equal(t, "rec@example.com", submitter["email"])
}

func TestRecommendationUpdateDelete(t *testing.T) {
	router, db, authService := setupRouter(t)
	userToken, _ := loginAs(t, db, authService, "rec@example.com", models.RoleUser)
	adminToken, _ := loginAs(t, db, authService, "admin@example.com", models.RoleAdmin)

	w := doRequest(router, "POST", "/api/recommendations", userToken, `{
		"type": "General Feedback",
		"content": "First draft."
	}`)
	requireStatus(t, w, http.StatusCreated)
	recID := decodeBody(t, w)["result"].(map[string]interface{})["id"].(string)

	requireStatus(t, doRequest(router, "PUT", "/api/recommendations/"+recID, userToken, `{"content": "hijacked"}`), http.StatusForbidden)

	requireStatus(t, doRequest(router, "PUT", "/api/recommendations/"+recID, adminToken, `{"content": "Edited."}`), http.StatusOK)
	requireStatus(t, doRequest(router, "DELETE", "/api/recommendations/"+recID, adminToken, ""), http.StatusOK)
	requireStatus(t, doRequest(router, "DELETE", "/api/recommendations/"+recID, adminToken, ""), http.StatusNotFound)
}
