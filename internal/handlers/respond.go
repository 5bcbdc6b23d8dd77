// Package handlers contains HTTP request handlers for the case record API.
// Handlers parse requests, call services, and return JSON responses.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/services"
)

// maxBodyBytes caps request bodies; a full intake is a few kilobytes
const maxBodyBytes = 1 << 20

// Helper: respond with JSON
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Helper: respond with error
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched
// when allowEmpty is set.
func decodeJSON(r *http.Request, dst interface{}, allowEmpty bool) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	return err
}

// statusFor maps service errors to HTTP status codes and client messages
func statusFor(err error) (int, string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, services.ErrCaseNotFound):
		return http.StatusNotFound, "Case not found"
	case errors.Is(err, services.ErrHearingNotFound):
		return http.StatusNotFound, "Hearing not found"
	case errors.Is(err, services.ErrNegativeAmount):
		return http.StatusBadRequest, services.ErrNegativeAmount.Error()
	case errors.Is(err, services.ErrInvalidEndpoint):
		return http.StatusBadRequest, services.ErrInvalidEndpoint.Error()
	case errors.Is(err, services.ErrUnknownVocabulary):
		return http.StatusNotFound, "Unknown vocabulary"
	case errors.Is(err, services.ErrNoEndpoint):
		return http.StatusPreconditionFailed, "No dispatch endpoint configured"
	case errors.Is(err, services.ErrDispatchInFlight):
		return http.StatusConflict, "A dispatch for this case is already in flight"
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid security credentials"
	}
	return http.StatusInternalServerError, "Internal server error"
}
