package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/auth"
	"taskhub/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Position string `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" || req.Position == "" {
		respondError(c, http.StatusBadRequest, "email, password, name, and position are required", nil)
		return
	}

	u, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.Position)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(c, http.StatusBadRequest, "email already registered", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create account", err)
		return
	}

	respondMessage(c, gin.H{
		"id":       u.ID,
		"email":    u.Email,
		"name":     u.Name,
		"position": u.Position,
	}, "account created")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	u, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	c.SetCookie(auth.SessionCookie, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
	respondOK(c, gin.H{
		"user": gin.H{
			"id":       u.ID,
			"email":    u.Email,
			"name":     u.Name,
			"position": u.Position,
		},
		"token": token,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("session_jti")
	if jti != "" {
		if err := h.authService.Logout(c.Request.Context(), jti); err != nil {
			respondError(c, http.StatusInternalServerError, "logout failed", err)
			return
		}
	}

	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	respondMessage(c, nil, "logged out")
}
