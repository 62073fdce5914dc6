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

type UserHandler struct {
	authService service.IAuthService
	users       *store.Store[models.User]
}

func NewUserHandler(authService service.IAuthService, db *gorm.DB) *UserHandler {
	return &UserHandler{
		authService: authService,
		users:       store.New[models.User](db),
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthRequired(h.authService))
	{
		users.GET("", middleware.AdminRequired(), h.List)
		users.GET("/:id", middleware.SelfOrAdmin("id"), h.Get)
		users.PUT("/:id", middleware.SelfOrAdmin("id"), h.Update)
		users.DELETE("/:id", middleware.SelfOrAdmin("id"), h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	records, err := h.users.List(c.Request.Context(), store.ListQuery{})
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, "user list", records)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, "user", user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	// Role changes are reserved for admins even on a self update.
	if req.Role != nil {
		if role, _ := c.Get("user_role"); role != models.RoleAdmin {
			respondError(c, http.StatusForbidden, "only admins can change roles")
			return
		}
		fields["role"] = *req.Role
	}
	if len(fields) == 0 {
		respondError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	outcome, err := h.users.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if outcome == store.OutcomeNotFound {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}
	respondOK(c, "user updated", nil)
}

// Delete removes the user and their allergy profile atomically.
func (h *UserHandler) Delete(c *gin.Context) {
	outcome, err := h.authService.DeleteAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternal(c, err)
		return
	}
	if outcome == store.OutcomeNotFound {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}
	respondOK(c, "account deleted", nil)
}
