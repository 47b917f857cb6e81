package server

import (
	"net/http"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/filetype"
	"github.com/piyushdhoka/drdo-docxsummarizer/internal/prompt"
)

// handleStyles handles GET /styles requests
func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string][]prompt.Info{
		"styles": prompt.Styles(),
	})
}

// handleFormats handles GET /formats requests
func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string][]filetype.Format{
		"formats": filetype.SupportedFormats(),
	})
}
