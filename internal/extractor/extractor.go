// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package extractor converts documents of the supported formats into
// plain text. Every extraction returns a tagged Result; extractors
// never propagate faults to the caller.
package extractor

import (
	"fmt"
	"os"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/filetype"
)

// Extract routes a file to the extractor for its detected format.
// Unsupported extensions are rejected before any extractor runs.
func Extract(path string) Result {
	if _, err := os.Stat(path); err != nil {
		return failure(ReasonExtractionFailure, fmt.Sprintf("file %q not found: %v", path, err))
	}

	ft := filetype.Detect(path)
	if !ft.Supported() {
		return failure(ReasonUnsupportedFormat,
			fmt.Sprintf("file format %q is not supported", ft))
	}

	switch ft {
	case filetype.PDF:
		return extractPDF(path)
	case filetype.DOCX:
		return extractDOCX(path)
	case filetype.TXT:
		return extractTXT(path)
	case filetype.HTML:
		return extractHTML(path)
	case filetype.Markdown:
		return extractMarkdown(path)
	default:
		return failure(ReasonUnsupportedFormat,
			fmt.Sprintf("no extractor for format %q", ft))
	}
}
