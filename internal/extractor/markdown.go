// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package extractor

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Markdown syntax strippers, applied in order so later patterns operate
// on already-cleaned text.
var (
	mdHeaderRe = regexp.MustCompile(`#+\s+`)
	mdBoldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	mdItalicRe = regexp.MustCompile(`\*(.*?)\*`)
	mdCodeRe   = regexp.MustCompile("`(.*?)`")
	mdLinkRe   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// extractMarkdown reads a Markdown file as UTF-8 text and strips the
// markdown syntax, leaving plain text. No external parser is involved.
func extractMarkdown(path string) Result {
	content, err := os.ReadFile(path)
	if err != nil {
		return failure(ReasonExtractionFailure, fmt.Sprintf("failed to read Markdown file: %v", err))
	}

	return success(StripMarkdown(string(content)))
}

// StripMarkdown removes header markers, bold/italic markers, inline
// code backticks, and link syntax, in that order.
func StripMarkdown(text string) string {
	text = mdHeaderRe.ReplaceAllString(text, "")
	text = mdBoldRe.ReplaceAllString(text, "${1}")
	text = mdItalicRe.ReplaceAllString(text, "${1}")
	text = mdCodeRe.ReplaceAllString(text, "${1}")
	text = mdLinkRe.ReplaceAllString(text, "${1}")
	return strings.TrimSpace(text)
}
