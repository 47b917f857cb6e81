// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/logger"
	"github.com/piyushdhoka/drdo-docxsummarizer/internal/prompt"
)

// SummarizeRequest represents the summarization request payload
type SummarizeRequest struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

// SummarizeResponse represents the summarization response payload
type SummarizeResponse struct {
	Summary string `json:"summary"`
	Style   string `json:"style"`
	Success bool   `json:"success"`
}

// handleSummarize handles POST /summarize requests
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text cannot be empty")
		return
	}

	style := prompt.ParseStyle(req.Style)
	if req.Style == "" {
		style = prompt.StyleBullet
	}

	summary, err := s.svc.Summarize(r.Context(), req.Text, style)
	if err != nil {
		logger.Errorf("summarization failed: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Summarization failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, SummarizeResponse{
		Summary: summary,
		Style:   string(style),
		Success: true,
	})
}
