package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aris-health/aris-backend/internal/middleware"
	"github.com/aris-health/aris-backend/internal/service"
	"github.com/aris-health/aris-backend/internal/types"
)

type PAPHandler struct {
	papService  service.IPAPService
	authService service.IAuthService
}

func NewPAPHandler(papService service.IPAPService, authService service.IAuthService) *PAPHandler {
	return &PAPHandler{
		papService:  papService,
		authService: authService,
	}
}

func (h *PAPHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Public profiles are reachable without a session.
	router.GET("/pap/public/:publicId", h.GetPublic)

	pap := router.Group("/pap")
	pap.Use(middleware.AuthRequired(h.authService))
	{
		pap.GET("", h.GetOwn)
		pap.PUT("", h.Update)
	}

	paps := router.Group("/paps")
	paps.Use(middleware.AuthRequired(h.authService), middleware.AdminRequired())
	{
		paps.GET("/:id", h.GetByID)
	}
}

// GetOwn returns the calling user's allergy profile.
func (h *PAPHandler) GetOwn(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	pap, err := h.papService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	respondOK(c, "allergy profile", pap)
}

// GetByID returns any user's profile by profile id. Admin only.
func (h *PAPHandler) GetByID(c *gin.Context) {
	pap, err := h.papService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternal(c, err)
		return
	}

	respondOK(c, "allergy profile", pap)
}

// GetPublic resolves a profile by its share id. Profiles whose owner has
// opted out of sharing are reported as missing rather than forbidden.
func (h *PAPHandler) GetPublic(c *gin.Context) {
	pap, err := h.papService.GetPublic(c.Request.Context(), c.Param("publicId"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotPublic) {
			respondError(c, http.StatusNotFound, "allergy profile not found")
			return
		}
		respondInternal(c, err)
		return
	}

	respondOK(c, "allergy profile", pap)
}

// Update applies a partial update to the calling user's profile.
func (h *PAPHandler) Update(c *gin.Context) {
	var req types.UpdatePAPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	pap, err := h.papService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		respondInternal(c, err)
		return
	}

	respondOK(c, "allergy profile updated", pap)
}
