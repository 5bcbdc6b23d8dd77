package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/services"
	"go.uber.org/zap"
)

// CaseHandler handles the officer dashboard endpoints
type CaseHandler struct {
	cases  *services.CaseService
	logger *zap.SugaredLogger
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(cs *services.CaseService, logger *zap.SugaredLogger) *CaseHandler {
	return &CaseHandler{cases: cs, logger: logger}
}

// List handles GET /api/v1/cases
// With ?q= it runs the dashboard search, otherwise it returns every case.
func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		respondJSON(w, http.StatusOK, h.cases.List())
		return
	}
	respondJSON(w, http.StatusOK, h.cases.Search(q))
}

// Create handles POST /api/v1/cases
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CaseIntake
	if err := decodeJSON(r, &req, false); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.cases.Register(r.Context(), req)
	if err != nil {
		h.fail(w, "Failed to register case", err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// Get handles GET /api/v1/cases/{id}
func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.cases.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Failed to get case", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// AddHearing handles POST /api/v1/cases/{id}/hearings
func (h *CaseHandler) AddHearing(w http.ResponseWriter, r *http.Request) {
	var req models.HearingRequest
	if err := decodeJSON(r, &req, false); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.cases.AddHearing(r.Context(), chi.URLParam(r, "id"), req.Date, req.Remarks)
	if err != nil {
		h.fail(w, "Failed to add hearing", err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// NextHearing handles GET /api/v1/cases/{id}/hearings/next
func (h *CaseHandler) NextHearing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	next, err := h.cases.NextHearing(id)
	if err != nil {
		h.fail(w, "Failed to resolve next hearing", err)
		return
	}
	respondJSON(w, http.StatusOK, models.NextHearingResponse{CaseID: id, Hearing: next})
}

// SetAmount handles PUT /api/v1/cases/{id}/amount
func (h *CaseHandler) SetAmount(w http.ResponseWriter, r *http.Request) {
	var req models.AmountRequest
	if err := decodeJSON(r, &req, false); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.cases.SetAmountRecovered(r.Context(), chi.URLParam(r, "id"), req.AmountRecovered)
	if err != nil {
		h.fail(w, "Failed to update amount", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// ToggleStatus handles POST /api/v1/cases/{id}/status/toggle
func (h *CaseHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	c, err := h.cases.ToggleStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Failed to toggle status", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Stats handles GET /api/v1/cases/stats
func (h *CaseHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cases.Stats())
}

func (h *CaseHandler) fail(w http.ResponseWriter, msg string, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Errorw(msg, "error", err)
	}
	respondError(w, status, message)
}
