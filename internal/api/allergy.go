package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/middleware"
	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/service"
	"github.com/aris-health/aris-backend/internal/store"
	"github.com/aris-health/aris-backend/internal/types"
)

// AllergyHandler serves the allergy groupings that drive cross-sensitivity.
type AllergyHandler struct {
	crud        *CRUDHandler[models.Allergy]
	authService service.IAuthService
}

func NewAllergyHandler(authService service.IAuthService, db *gorm.DB) *AllergyHandler {
	crud := NewCRUDHandler(
		store.New[models.Allergy](db),
		"allergy",
		buildAllergy,
		allergyUpdates,
	)
	return &AllergyHandler{
		crud:        crud,
		authService: authService,
	}
}

func buildAllergy(c *gin.Context) (*models.Allergy, error) {
	var req types.CreateAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &models.Allergy{
		Name:        req.Name,
		AllergenIDs: datatypes.NewJSONSlice(req.AllergenIDs),
	}, nil
}

func allergyUpdates(c *gin.Context) (map[string]interface{}, error) {
	var req types.UpdateAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.AllergenIDs != nil {
		fields["allergen_ids"] = datatypes.NewJSONSlice(req.AllergenIDs)
	}
	return fields, nil
}

func (h *AllergyHandler) RegisterRoutes(router *gin.RouterGroup) {
	allergies := router.Group("/allergies")
	allergies.Use(middleware.AuthRequired(h.authService))
	{
		allergies.GET("", h.crud.List)
		allergies.GET("/:id", h.crud.Get)

		admin := allergies.Group("")
		admin.Use(middleware.AdminRequired())
		{
			admin.POST("", h.crud.Create)
			admin.PUT("/:id", h.crud.Update)
			admin.DELETE("/:id", h.crud.Delete)
		}
	}
}
