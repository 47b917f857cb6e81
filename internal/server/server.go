// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package server is the HTTP surface over the summarization pipeline.
// Handlers are pass-through wrappers: all decision logic lives in the
// extractor, preprocess, prompt, quality, and summarizer packages.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/server/middleware"
	"github.com/piyushdhoka/drdo-docxsummarizer/internal/summarizer"
)

// ModelLister lists the models available to the configured credentials.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// Server holds the handler dependencies.
type Server struct {
	svc       *summarizer.Service
	models    ModelLister
	maxUpload int64 // bytes
}

// NewServer creates the HTTP server surface.
func NewServer(svc *summarizer.Service, models ModelLister, maxUploadMB int64) *Server {
	if maxUploadMB <= 0 {
		maxUploadMB = 50
	}
	return &Server{
		svc:       svc,
		models:    models,
		maxUpload: maxUploadMB * 1024 * 1024,
	}
}

// Routes builds the request mux with logging middleware applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/summarize", s.handleSummarize)
	mux.HandleFunc("/styles", s.handleStyles)
	mux.HandleFunc("/models", s.handleModels)
	mux.HandleFunc("/formats", s.handleFormats)
	mux.HandleFunc("/extract", s.handleExtract)
	mux.HandleFunc("/evaluate", s.handleEvaluate)

	return middleware.TrafficLogger(mux)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
