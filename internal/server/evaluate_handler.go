package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/quality"
)

// EvaluateRequest represents the quality evaluation request payload
type EvaluateRequest struct {
	Original string `json:"original"`
	Summary  string `json:"summary"`
}

// handleEvaluate handles POST /evaluate requests
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	if req.Summary == "" {
		writeError(w, http.StatusBadRequest, "summary cannot be empty")
		return
	}

	writeJSON(w, http.StatusOK, quality.Evaluate(req.Original, req.Summary))
}
