package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/middleware"
	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/service"
	"github.com/aris-health/aris-backend/internal/store"
	"github.com/aris-health/aris-backend/internal/types"
)

type SymptomHandler struct {
	crud           *CRUDHandler[models.Symptom]
	symptomService service.ISymptomService
	authService    service.IAuthService
}

func NewSymptomHandler(symptomService service.ISymptomService, authService service.IAuthService, db *gorm.DB) *SymptomHandler {
	crud := NewCRUDHandler(
		store.New[models.Symptom](db),
		"symptom",
		buildSymptom,
		symptomUpdates,
	)
	return &SymptomHandler{
		crud:           crud,
		symptomService: symptomService,
		authService:    authService,
	}
}

func buildSymptom(c *gin.Context) (*models.Symptom, error) {
	var req types.CreateSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &models.Symptom{
		Name:        req.Name,
		Description: req.Description,
		OrganSystem: req.OrganSystem,
		Severity:    req.Severity,
		Prevalence:  req.Prevalence,
		Treatment:   req.Treatment,
	}, nil
}

func symptomUpdates(c *gin.Context) (map[string]interface{}, error) {
	var req types.UpdateSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = req.Name
	}
	if req.Description != nil {
		fields["description"] = req.Description
	}
	if req.OrganSystem != nil {
		fields["organ_system"] = *req.OrganSystem
	}
	if req.Severity != nil {
		fields["severity"] = *req.Severity
	}
	if req.Prevalence != nil {
		fields["prevalence"] = *req.Prevalence
	}
	if req.Treatment != nil {
		fields["treatment"] = *req.Treatment
	}
	return fields, nil
}

func (h *SymptomHandler) RegisterRoutes(router *gin.RouterGroup) {
	symptoms := router.Group("/symptoms")
	symptoms.Use(middleware.AuthRequired(h.authService))
	{
		symptoms.GET("", h.crud.List)
		symptoms.GET("/brief", h.Brief)
		symptoms.GET("/:id", h.crud.Get)

		admin := symptoms.Group("")
		admin.Use(middleware.AdminRequired())
		{
			admin.POST("", h.crud.Create)
			admin.PUT("/:id", h.crud.Update)
			admin.DELETE("/:id", h.crud.Delete)
		}
	}
}

func (h *SymptomHandler) Brief(c *gin.Context) {
	var q types.BriefQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	briefs, total, err := h.symptomService.Brief(c.Request.Context(), q)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "symptom brief list",
		"result":  briefs,
		"total":   total,
	})
}
