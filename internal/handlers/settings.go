package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/services"
	"go.uber.org/zap"
)

// SettingsHandler handles the officer-editable settings and intake vocabularies
type SettingsHandler struct {
	settings *services.SettingsService
	vocab    *services.Vocabularies
	logger   *zap.SugaredLogger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(ss *services.SettingsService, vocab *services.Vocabularies, logger *zap.SugaredLogger) *SettingsHandler {
	return &SettingsHandler{settings: ss, vocab: vocab, logger: logger}
}

// GetDispatch handles GET /api/v1/settings/dispatch
func (h *SettingsHandler) GetDispatch(w http.ResponseWriter, r *http.Request) {
	url, err := h.settings.DispatchEndpoint(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to read dispatch endpoint", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to read settings")
		return
	}
	respondJSON(w, http.StatusOK, models.DispatchSettings{URL: url, Configured: url != ""})
}

// PutDispatch handles PUT /api/v1/settings/dispatch
// An empty url clears the endpoint.
func (h *SettingsHandler) PutDispatch(w http.ResponseWriter, r *http.Request) {
	var req models.DispatchSettings
	if err := decodeJSON(r, &req, false); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.settings.SetDispatchEndpoint(r.Context(), req.URL); err != nil {
		status, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Errorw("Failed to write dispatch endpoint", "error", err)
		}
		respondError(w, status, message)
		return
	}
	h.GetDispatch(w, r)
}

// Vocabulary handles GET /api/v1/vocabularies/{name}
func (h *SettingsHandler) Vocabulary(w http.ResponseWriter, r *http.Request) {
	v, err := h.vocab.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		status, message := statusFor(err)
		respondError(w, status, message)
		return
	}
	respondJSON(w, http.StatusOK, models.VocabularyList{Name: v.Name(), Options: v.Options()})
}

// AddVocabularyOption handles POST /api/v1/vocabularies/{name}
func (h *SettingsHandler) AddVocabularyOption(w http.ResponseWriter, r *http.Request) {
	v, err := h.vocab.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		status, message := statusFor(err)
		respondError(w, status, message)
		return
	}

	var req models.VocabularyOption
	if err := decodeJSON(r, &req, false); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	options, added, err := v.AddOption(r.Context(), req.Value)
	if err != nil {
		h.logger.Errorw("Failed to add vocabulary option", "vocabulary", v.Name(), "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save option")
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	respondJSON(w, status, models.VocabularyList{Name: v.Name(), Options: options, Added: added})
}
