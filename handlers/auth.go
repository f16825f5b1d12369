// File: handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/J-Hunxho/LowkeyLuxuryMain/services/auth"
	"github.com/J-Hunxho/LowkeyLuxuryMain/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the mock auth collaborator over HTTP.
type AuthHandler struct {
	Svc auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// LoginHandler signs in with email and password.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
			return
		}
		logger.Error("login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SignupHandler creates a fresh identity; it never fails validation.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		logger.Error("signup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Signup failed", "")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LogoutHandler clears the current-user record.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Svc.Logout(c.Request.Context()); err != nil {
		logger.Error("logout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// CurrentUserHandler returns the signed-in user.
func (h *AuthHandler) CurrentUserHandler(c *gin.Context) {
	user, err := h.Svc.CurrentUser(c.Request.Context())
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
			return
		}
		getLogger(c).Error("current user lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch user", "")
		return
	}

	// Never expose the stored hash.
	user.PasswordHash = ""
	c.JSON(http.StatusOK, user)
}
