// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package preprocess normalizes extracted document text before it is
// sent to the model. The pass order is fixed; Clean is not guaranteed
// to be a fixed point when re-applied (see the package tests, which pin
// the observed behavior).
package preprocess

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	noiseRe        = regexp.MustCompile(`[^\w\p{L}\p{N}\s.,!?;:\-()\[\]{}]`)
	ocrPipeRe      = regexp.MustCompile(`([\p{L}\p{N}_])\|([\p{L}\p{N}_])`)
	ocrZeroRe      = regexp.MustCompile(`([\p{L}\p{N}_])0([\p{L}\p{N}_])`)
	pageNumberRe   = regexp.MustCompile(`Page \d+`)
	leadingNumRe   = regexp.MustCompile(`(?m)^\d+\s*`)
	bulletRe       = regexp.MustCompile(`(?m)^\s*[•\-*]\s*`)
	blankLinesRe   = regexp.MustCompile(`\n\s*\n\s*\n+`)
	sentenceGapRe  = regexp.MustCompile(`([.!?])\s*([A-Z])`)
)

// Clean normalizes raw extracted text: whitespace collapse, noise
// stripping, narrow OCR fixups, page-number and bullet removal, and
// sentence spacing. Empty or whitespace-only input yields "".
func Clean(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	// Collapse all whitespace, newlines included, into single spaces.
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if text == "" {
		return ""
	}

	// Strip characters outside word chars, whitespace, and basic
	// punctuation.
	text = noiseRe.ReplaceAllString(text, "")

	// Narrow OCR repairs: | and 0 misread between word characters.
	// False positives on legitimate digits are an accepted tradeoff.
	text = ocrPipeRe.ReplaceAllString(text, "${1}l${2}")
	text = ocrZeroRe.ReplaceAllString(text, "${1}o${2}")

	// Page-number and header noise.
	text = pageNumberRe.ReplaceAllString(text, "")
	text = leadingNumRe.ReplaceAllString(text, "")

	// Leading bullet markers.
	text = bulletRe.ReplaceAllString(text, "")

	// At most one empty line between paragraphs.
	text = blankLinesRe.ReplaceAllString(text, "\n\n")

	// Single space after sentence-ending punctuation before a capital.
	text = sentenceGapRe.ReplaceAllString(text, "${1} ${2}")

	return strings.TrimSpace(text)
}
