package server

import (
	"net/http"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/logger"
)

// handleModels handles GET /models requests. Listing failures degrade
// to an empty list with an error field rather than a 5xx.
func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if s.models == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"models": []string{},
			"error":  "model listing is not configured",
		})
		return
	}

	models, err := s.models.ListModels(r.Context())
	if err != nil {
		logger.Warnf("failed to list models: %v", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"models": []string{},
			"error":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"models": models})
}
