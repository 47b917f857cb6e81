// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/extractor"
	"github.com/piyushdhoka/drdo-docxsummarizer/internal/logger"
)

// ExtractResponse represents the extraction response payload
type ExtractResponse struct {
	FileInfo *extractor.FileInfo `json:"file_info,omitempty"`
	Text     string              `json:"text,omitempty"`
	Warning  string              `json:"warning,omitempty"`
	Error    string              `json:"error,omitempty"`
	Reason   string              `json:"error_reason,omitempty"`
	Success  bool                `json:"success"`
}

// handleExtract handles POST /extract multipart uploads. The upload is
// written to a temporary file which is removed on every exit path.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("upload exceeds the %d MB limit", s.maxUpload/(1024*1024)))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	if header.Size > s.maxUpload {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("upload exceeds the %d MB limit", s.maxUpload/(1024*1024)))
		return
	}

	// Materialize the upload under a unique name, keeping the original
	// extension so format detection works.
	tmpPath := filepath.Join(os.TempDir(),
		"upload-"+uuid.New().String()+filepath.Ext(header.Filename))
	tmp, err := os.Create(tmpPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			logger.Warnf("failed to remove temp file %s: %v", tmpPath, err)
		}
	}()

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
		return
	}
	tmp.Close()

	info, err := extractor.Info(tmpPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to inspect upload: %v", err))
		return
	}
	// Report the uploaded name, not the temp name.
	info.Name = header.Filename

	result := extractor.Extract(tmpPath)
	switch result.Kind {
	case extractor.KindSuccess:
		writeJSON(w, http.StatusOK, ExtractResponse{
			FileInfo: info,
			Text:     result.Text,
			Success:  true,
		})
	case extractor.KindWarning:
		writeJSON(w, http.StatusOK, ExtractResponse{
			FileInfo: info,
			Warning:  result.Message,
		})
	default:
		status := http.StatusInternalServerError
		if result.Reason == extractor.ReasonUnsupportedFormat {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, ExtractResponse{
			FileInfo: info,
			Error:    result.Message,
			Reason:   result.Reason.String(),
		})
	}
}
