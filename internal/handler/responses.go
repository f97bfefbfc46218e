package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/musiclog/musiclog/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Data  interface{} `json:"data"`
	Count *int        `json:"count,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing more to do for the client.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondData sends a 200 data envelope
func respondData(w http.ResponseWriter, payload interface{}) {
	respondJSON(w, http.StatusOK, DataResponse{Data: payload})
}

// respondDataCount sends a data envelope with an item count
func respondDataCount(w http.ResponseWriter, status int, payload interface{}, count int) {
	respondJSON(w, status, DataResponse{Data: payload, Count: &count})
}

// mapIngestError maps ingestion validation errors to HTTP responses.
// Validation failures surface the fixed domain message; everything else is
// a generic server error so internals stay hidden.
func mapIngestError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidTimestamp):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, ErrMsgCreateEventFailed
	}
}
