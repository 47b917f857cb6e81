// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package summarizer turns document text into a summary through an
// external model: preprocess, build the style prompt, generate.
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/preprocess"
	"github.com/piyushdhoka/drdo-docxsummarizer/internal/prompt"
)

// Generator is the external model boundary: an opaque, possibly-failing
// call that maps a prompt to generated text.
type Generator interface {
	Generate(ctx context.Context, promptText string) (string, error)
}

// Service runs the summarization pipeline against a Generator.
type Service struct {
	gen Generator
}

// NewService creates a summarization service.
func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Summarize cleans the text, builds the prompt for the requested style,
// and asks the generator for a summary.
func (s *Service) Summarize(ctx context.Context, text string, style prompt.Style) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text provided for summarization")
	}

	cleaned := preprocess.Clean(text)
	if cleaned == "" {
		return "", fmt.Errorf("text preprocessing resulted in empty content")
	}

	summary, err := s.gen.Generate(ctx, prompt.Build(cleaned, style))
	if err != nil {
		return "", fmt.Errorf("error generating summary: %w", err)
	}

	return strings.TrimSpace(summary), nil
}
