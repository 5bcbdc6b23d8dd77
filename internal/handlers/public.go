package handlers

import (
	"net/http"
	"strings"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/services"
	"go.uber.org/zap"
)

// PublicHandler serves the unauthenticated status portal. Responses carry
// the reduced public projection only.
type PublicHandler struct {
	cases  *services.CaseService
	logger *zap.SugaredLogger
}

// NewPublicHandler creates a new public portal handler
func NewPublicHandler(cs *services.CaseService, logger *zap.SugaredLogger) *PublicHandler {
	return &PublicHandler{cases: cs, logger: logger}
}

// Lookup handles GET /api/v1/public/lookup?fileNumber=
func (h *PublicHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	fileNumber := r.URL.Query().Get("fileNumber")
	if strings.TrimSpace(fileNumber) == "" {
		respondError(w, http.StatusBadRequest, "fileNumber is required")
		return
	}

	view, ok := h.cases.PublicLookup(fileNumber)
	if !ok {
		respondError(w, http.StatusNotFound, "No record found for this file number")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Search handles GET /api/v1/public/search?q=
func (h *PublicHandler) Search(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cases.PublicSearch(r.URL.Query().Get("q")))
}
