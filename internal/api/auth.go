package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aris-health/aris-backend/internal/middleware"
	"github.com/aris-health/aris-backend/internal/service"
	"github.com/aris-health/aris-backend/internal/types"
)

// recoverMessage is returned for every recovery request so responses do not
// reveal whether an account exists.
const recoverMessage = "if the account exists, a reset link has been sent"

type AuthHandler struct {
	authService service.IAuthService
	frontendURL string
	loginLimit  *middleware.RateLimiter
	recoverLim  *middleware.RateLimiter
}

func NewAuthHandler(authService service.IAuthService, frontendURL string, loginLimit, recoverLim *middleware.RateLimiter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		frontendURL: frontendURL,
		loginLimit:  loginLimit,
		recoverLim:  recoverLim,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.loginLimit.ByBodyEmail(), h.Login)
		auth.POST("/recover", h.recoverLim.ByBodyEmail(), h.Recover)
		auth.GET("/reset/:token", h.ValidateReset)
		auth.POST("/reset", h.Reset)
	}

	authed := router.Group("/auth")
	authed.Use(middleware.AuthRequired(h.authService))
	{
		authed.PUT("/change", h.ChangePassword)
	}

	router.GET("/verify/:token", h.VerifyEmail)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondInternal(c, err)
		return
	}

	respondCreated(c, "account created", gin.H{"user_id": user.ID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	respondOK(c, "logged in", gin.H{
		"token": token,
		"user":  user,
	})
}

// ChangePassword reports a wrong current password as an expected outcome
// (200 with result=false), not an error status.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	changed, err := h.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondInternal(c, err)
		return
	}

	if changed {
		respondOK(c, "password changed", true)
		return
	}
	respondOK(c, "current password does not match", false)
}

func (h *AuthHandler) Recover(c *gin.Context) {
	var req types.RecoverPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.RecoverPassword(c.Request.Context(), req.Email); err != nil {
		respondInternal(c, err)
		return
	}

	respondOK(c, recoverMessage, nil)
}

func (h *AuthHandler) ValidateReset(c *gin.Context) {
	if err := h.authService.ValidateResetToken(c.Request.Context(), c.Param("token")); err != nil {
		respondError(c, http.StatusBadRequest, "invalid or expired reset token")
		return
	}
	respondOK(c, "reset token is valid", true)
}

func (h *AuthHandler) Reset(c *gin.Context) {
	var req types.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			respondError(c, http.StatusBadRequest, "invalid or expired reset token")
			return
		}
		respondInternal(c, err)
		return
	}

	respondOK(c, "password reset", nil)
}

// VerifyEmail consumes a verification token and redirects to the frontend
// outcome page.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if _, err := h.authService.VerifyEmail(c.Request.Context(), c.Param("token")); err != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/verify/failure", h.frontendURL))
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("%s/verify/success", h.frontendURL))
}
