package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/middleware"
	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/service"
	"github.com/aris-health/aris-backend/internal/store"
	"github.com/aris-health/aris-backend/internal/types"
)

type AllergenHandler struct {
	crud            *CRUDHandler[models.Allergen]
	allergenService service.IAllergenService
	authService     service.IAuthService
}

func NewAllergenHandler(allergenService service.IAllergenService, authService service.IAuthService, db *gorm.DB) *AllergenHandler {
	crud := NewCRUDHandler(
		store.New[models.Allergen](db),
		"allergen",
		buildAllergen,
		allergenUpdates,
	)
	return &AllergenHandler{
		crud:            crud,
		allergenService: allergenService,
		authService:     authService,
	}
}

func buildAllergen(c *gin.Context) (*models.Allergen, error) {
	var req types.CreateAllergenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &models.Allergen{
		Name:             req.Name,
		Description:      req.Description,
		Type:             req.Type,
		CrossAllergenIDs: datatypes.NewJSONSlice(req.CrossAllergenIDs),
		Treatment:        req.Treatment,
		FirstAid:         req.FirstAid,
	}, nil
}

func allergenUpdates(c *gin.Context) (map[string]interface{}, error) {
	var req types.UpdateAllergenRequest
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
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.CrossAllergenIDs != nil {
		fields["cross_allergen_ids"] = datatypes.NewJSONSlice(req.CrossAllergenIDs)
	}
	if req.Treatment != nil {
		fields["treatment"] = *req.Treatment
	}
	if req.FirstAid != nil {
		fields["first_aid"] = *req.FirstAid
	}
	return fields, nil
}

func (h *AllergenHandler) RegisterRoutes(router *gin.RouterGroup) {
	allergens := router.Group("/allergens")
	allergens.Use(middleware.AuthRequired(h.authService))
	{
		allergens.GET("", h.crud.List)
		allergens.GET("/brief", h.Brief)
		allergens.GET("/detail/:id", h.Detail)
		allergens.GET("/remain", h.Remaining)
		allergens.GET("/cross", h.CrossByUser)
		allergens.GET("/cross/:id", h.CrossByAllergen)
		allergens.GET("/:id", h.crud.Get)

		admin := allergens.Group("")
		admin.Use(middleware.AdminRequired())
		{
			admin.POST("", h.crud.Create)
			admin.PUT("/:id", h.crud.Update)
			admin.DELETE("/:id", h.crud.Delete)
		}
	}
}

// Brief returns the paginated, localized listing plus the total count of
// matching rows.
func (h *AllergenHandler) Brief(c *gin.Context) {
	var q types.BriefQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	briefs, total, err := h.allergenService.Brief(c.Request.Context(), q)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "allergen brief list",
		"result":  briefs,
		"total":   total,
	})
}

func (h *AllergenHandler) Detail(c *gin.Context) {
	allergen, cross, err := h.allergenService.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, "allergen detail", gin.H{
		"allergen":       allergen,
		"cross_reactive": cross,
	})
}

func (h *AllergenHandler) Remaining(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	allergens, err := h.allergenService.Remaining(c.Request.Context(), userID, c.Query("name"), c.Query("lang"))
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, "remaining allergens", allergens)
}

func (h *AllergenHandler) CrossByUser(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	allergens, err := h.allergenService.CrossSensitivityByUser(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, "cross-reactive allergens", allergens)
}

func (h *AllergenHandler) CrossByAllergen(c *gin.Context) {
	allergens, err := h.allergenService.CrossSensitivityByAllergen(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, "cross-reactive allergens", allergens)
}
