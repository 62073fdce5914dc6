package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/middleware"
	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/service"
	"github.com/aris-health/aris-backend/internal/store"
	"github.com/aris-health/aris-backend/internal/types"
)

type RecommendationHandler struct {
	recService  service.IRecommendationService
	authService service.IAuthService
	recs        *store.Store[models.Recommendation]
}

func NewRecommendationHandler(recService service.IRecommendationService, authService service.IAuthService, db *gorm.DB) *RecommendationHandler {
	return &RecommendationHandler{
		recService:  recService,
		authService: authService,
		recs:        store.New[models.Recommendation](db),
	}
}

func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	recs := router.Group("/recommendations")
	recs.Use(middleware.AuthRequired(h.authService))
	{
		recs.POST("", h.Create)

		admin := recs.Group("")
		admin.Use(middleware.AdminRequired())
		{
			admin.GET("", h.List)
			admin.GET("/:id", h.Get)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}

// Create files a recommendation on behalf of the calling user.
func (h *RecommendationHandler) Create(c *gin.Context) {
	var req types.CreateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec, err := h.recService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	respondCreated(c, "recommendation created", rec)
}

// List returns recommendations for review, newest first. Admin only.
func (h *RecommendationHandler) List(c *gin.Context) {
	filters := &models.RecommendationFilters{
		Type:   c.Query("type"),
		UserID: c.Query("user_id"),
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = n
	}
	if offset := c.Query("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "invalid offset")
			return
		}
		filters.Offset = n
	}

	recs, err := h.recService.List(c.Request.Context(), filters)
	if err != nil {
		respondInternal(c, err)
		return
	}

	respondOK(c, "recommendations", recs)
}

func (h *RecommendationHandler) Get(c *gin.Context) {
	rec, err := h.recs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternal(c, err)
		return
	}

	respondOK(c, "recommendation", rec)
}

func (h *RecommendationHandler) Update(c *gin.Context) {
	var req types.UpdateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if len(fields) == 0 {
		respondError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	outcome, err := h.recs.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if outcome == store.OutcomeNotFound {
		respondError(c, http.StatusNotFound, "recommendation not found")
		return
	}

	respondOK(c, "recommendation updated", nil)
}

func (h *RecommendationHandler) Delete(c *gin.Context) {
	outcome, err := h.recs.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternal(c, err)
		return
	}
	if outcome == store.OutcomeNotFound {
		respondError(c, http.StatusNotFound, "recommendation not found")
		return
	}

	respondOK(c, "recommendation deleted", nil)
}
