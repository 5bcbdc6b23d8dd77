package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/services"
	"go.uber.org/zap"
)

// NoticeHandler renders joint meeting notices and dispatches them
type NoticeHandler struct {
	cases    *services.CaseService
	composer *services.NoticeComposer
	tracker  *services.DispatchTracker
	logger   *zap.SugaredLogger
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(cs *services.CaseService, composer *services.NoticeComposer, tracker *services.DispatchTracker, logger *zap.SugaredLogger) *NoticeHandler {
	return &NoticeHandler{cases: cs, composer: composer, tracker: tracker, logger: logger}
}

// Notice handles GET /api/v1/cases/{id}/notice
// ?hearingId= picks a hearing; ?format=html or Accept: text/html returns the
// printable page instead of the JSON document.
func (h *NoticeHandler) Notice(w http.ResponseWriter, r *http.Request) {
	c, hearing, ok := h.resolve(w, r, r.URL.Query().Get("hearingId"))
	if !ok {
		return
	}
	doc := h.composer.Compose(c, hearing)

	if !wantsHTML(r) {
		respondJSON(w, http.StatusOK, doc)
		return
	}

	page, err := services.RenderHTML(doc)
	if err != nil {
		h.logger.Errorw("Failed to render notice", "case_id", c.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to render notice")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// Dispatch handles POST /api/v1/cases/{id}/notice/dispatch
// The send runs in the background and 202 is returned with the pending
// status. With ?wait=true the handler blocks for the final result.
func (h *NoticeHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req models.NoticeRequest
	if err := decodeJSON(r, &req, true); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, hearing, ok := h.resolve(w, r, req.HearingID)
	if !ok {
		return
	}

	done, err := h.tracker.Start(r.Context(), c.ID, h.composer.BuildPayload(c, hearing))
	if err != nil {
		status, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Errorw("Failed to start dispatch", "case_id", c.ID, "error", err)
		}
		respondError(w, status, message)
		return
	}

	h.logger.Infow("Notice dispatch started", "case_id", c.ID, "file_number", c.FileNumber)

	if r.URL.Query().Get("wait") != "true" {
		respondJSON(w, http.StatusAccepted, h.tracker.Status(c.ID))
		return
	}

	select {
	case result := <-done:
		respondJSON(w, http.StatusOK, models.DispatchStatus{CaseID: c.ID, Outcome: result.Outcome, Result: &result})
	case <-r.Context().Done():
		respondJSON(w, http.StatusAccepted, h.tracker.Status(c.ID))
	}
}

// DispatchStatus handles GET /api/v1/cases/{id}/notice/dispatch
func (h *NoticeHandler) DispatchStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.cases.Get(id); err != nil {
		status, message := statusFor(err)
		respondError(w, status, message)
		return
	}
	respondJSON(w, http.StatusOK, h.tracker.Status(id))
}

func (h *NoticeHandler) resolve(w http.ResponseWriter, r *http.Request, hearingID string) (models.Case, *models.Hearing, bool) {
	c, err := h.cases.Get(chi.URLParam(r, "id"))
	if err != nil {
		status, message := statusFor(err)
		respondError(w, status, message)
		return models.Case{}, nil, false
	}

	hearing, err := h.composer.SelectHearing(c, strings.TrimSpace(hearingID))
	if err != nil {
		status, message := statusFor(err)
		respondError(w, status, message)
		return models.Case{}, nil, false
	}
	return c, hearing, true
}

func wantsHTML(r *http.Request) bool {
	if f := r.URL.Query().Get("format"); f != "" {
		return f == "html"
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
