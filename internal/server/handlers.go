package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/subtexthq/subtext/apimodels"
	"github.com/subtexthq/subtext/internal/analyzer"
)

const internalErrorMessage = "Internal server error"

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	defer r.Body.Close()

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		s.writeAnalysisError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req apimodels.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	defer r.Body.Close()

	result, err := s.analyzer.Compare(r.Context(), req)
	if err != nil {
		s.writeAnalysisError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found")
}

func (s *Server) handleThrottled(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
}

// writeAnalysisError maps pipeline failures to status codes: validation
// errors surface their own message as a 400, everything else is logged with
// full detail and reported as a generic 500.
func (s *Server) writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *analyzer.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	slog.Error("analysis request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
	)
	writeError(w, http.StatusInternalServerError, internalErrorMessage)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apimodels.ErrorResponse{Error: message})
}
