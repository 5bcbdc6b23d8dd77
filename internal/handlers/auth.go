package handlers

import (
	"net/http"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/services"
	"go.uber.org/zap"
)

// AuthHandler exposes the officer gate
type AuthHandler struct {
	auth   *services.AuthService
	logger *zap.SugaredLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req, false); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, expires, err := h.auth.Login(req.Key)
	if err != nil {
		status, message := statusFor(err)
		if status == http.StatusUnauthorized {
			h.logger.Warnw("Officer login rejected")
		} else {
			h.logger.Errorw("Officer login failed", "error", err)
		}
		respondError(w, status, message)
		return
	}

	h.logger.Infow("Officer logged in", "expires_at", expires)
	respondJSON(w, http.StatusOK, models.LoginResponse{Token: token, ExpiresAt: expires})
}
