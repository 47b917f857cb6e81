// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package extractor

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// extractTXT reads a plain text file as UTF-8, falling back to Latin-1
// when the bytes are not valid UTF-8. Content is passed through
// untransformed.
func extractTXT(path string) Result {
	content, err := os.ReadFile(path)
	if err != nil {
		return failure(ReasonExtractionFailure, fmt.Sprintf("failed to read text file: %v", err))
	}

	if utf8.Valid(content) {
		return success(string(content))
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return failure(ReasonExtractionFailure, fmt.Sprintf("failed to decode text file: %v", err))
	}
	return success(string(decoded))
}
