// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package filetype

import (
	"path/filepath"
	"strings"
)

// Type identifies a supported document format.
type Type string

const (
	PDF      Type = "pdf"
	DOCX     Type = "docx"
	TXT      Type = "txt"
	HTML     Type = "html"
	Markdown Type = "markdown"
	Unknown  Type = "unknown"
)

// Detect maps a file path to its document type based on extension.
// Detection is purely extension-based; file content is never inspected.
func Detect(path string) Type {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".pdf":
		return PDF
	case ".docx":
		return DOCX
	case ".txt":
		return TXT
	case ".html", ".htm":
		return HTML
	case ".md":
		return Markdown
	default:
		return Unknown
	}
}

// Supported reports whether the type has an extractor.
func (t Type) Supported() bool {
	return t != Unknown
}

func (t Type) String() string {
	return string(t)
}

// Format describes a supported format for display purposes.
type Format struct {
	ID          Type   `json:"id"`
	Description string `json:"description"`
}

// SupportedFormats returns all supported formats in a stable order.
func SupportedFormats() []Format {
	return []Format{
		{ID: PDF, Description: "Portable Document Format"},
		{ID: DOCX, Description: "Microsoft Word Document"},
		{ID: TXT, Description: "Plain Text File"},
		{ID: HTML, Description: "HTML Web Page"},
		{ID: Markdown, Description: "Markdown Document"},
	}
}
