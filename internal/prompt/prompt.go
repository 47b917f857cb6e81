// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package prompt builds the instruction text sent to the model for each
// summary style.
package prompt

import (
	"fmt"
	"strings"
)

// Style selects a summary prompt template.
type Style string

const (
	StyleBullet   Style = "bullet"
	StyleAbstract Style = "abstract"
	StyleDetailed Style = "detailed"
)

// ParseStyle normalizes a style string. Unrecognized values are kept
// as-is; Build falls back to the generic template for them rather than
// failing.
func ParseStyle(s string) Style {
	return Style(strings.ToLower(strings.TrimSpace(s)))
}

// Info describes a style for display.
type Info struct {
	ID          Style  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Styles returns the three supported styles in a stable order.
func Styles() []Info {
	return []Info{
		{ID: StyleBullet, Name: "Bullet Points", Description: "Key points in bullet format"},
		{ID: StyleAbstract, Name: "Abstract", Description: "3-4 line concise summary"},
		{ID: StyleDetailed, Name: "Detailed", Description: "Comprehensive narrative summary"},
	}
}

// Build returns the full prompt for the given text and style. The text
// is embedded verbatim; no truncation or chunking happens here.
func Build(text string, style Style) string {
	switch style {
	case StyleBullet:
		return fmt.Sprintf(`Please provide a comprehensive bullet-point summary of the following document.

Requirements:
- Extract the most important key points and main ideas
- Maintain logical flow and hierarchy
- Use clear, actionable bullet points
- Include relevant facts, figures, and conclusions
- Ensure accuracy and completeness

Document to summarize:
%s

Please provide a well-structured bullet-point summary:`, text)

	case StyleAbstract:
		return fmt.Sprintf(`Please write a professional abstract summary of the following document.

Requirements:
- 3-4 concise sentences capturing the essence
- Include main topic, key findings, methodology (if applicable), and conclusions
- Use academic/professional tone
- Maintain factual accuracy
- Highlight the most significant contributions or insights

Document to summarize:
%s

Please provide a professional abstract:`, text)

	case StyleDetailed:
		return fmt.Sprintf(`Please provide a comprehensive, detailed summary of the following document.

Requirements:
- Cover main arguments, supporting evidence, and conclusions
- Maintain the document's logical structure
- Include key examples, data points, and references
- Provide context and background information
- Ensure thorough understanding while maintaining clarity
- Highlight relationships between different sections/ideas

Document to summarize:
%s

Please provide a detailed summary:`, text)

	default:
		return fmt.Sprintf(`Please provide a comprehensive summary of the following document.

Requirements:
- Identify main themes and key points
- Maintain accuracy and completeness
- Use clear, professional language
- Highlight important conclusions and implications

Document to summarize:
%s

Please provide a summary:`, text)
	}
}
