package extractor

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDOCX extracts paragraph text from a DOCX file in document
// order. Blank paragraphs are skipped; kept paragraphs are joined with
// one blank line between them.
func extractDOCX(path string) Result {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return failure(ReasonExtractionFailure, fmt.Sprintf("failed to open DOCX file: %v", err))
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return failure(ReasonExtractionFailure, fmt.Sprintf("failed to parse DOCX content: %v", err))
	}

	if len(paragraphs) == 0 {
		return warning("no text could be extracted from the DOCX file")
	}
	return success(strings.Join(paragraphs, "\n\n"))
}

// docxParagraphs walks the word/document.xml tokens and returns the
// trimmed text of each non-empty <w:p> element, in order.
func docxParagraphs(content string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []string
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				current.Reset()
			}
		case xml.CharData:
			if inParagraph {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				text := strings.TrimSpace(current.String())
				if text != "" {
					paragraphs = append(paragraphs, text)
				}
			}
		}
	}

	return paragraphs, nil
}

// docxInfo estimates page count from paragraph density, for display only.
func docxInfo(path string) (int, string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return 0, "", fmt.Errorf("failed to open DOCX file: %w", err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return 0, "", err
	}
	return len(paragraphs) / 20, "nguyenthenguyen/docx", nil
}
