package extractor

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractHTML extracts visible text from an HTML file. Script and style
// elements are removed entirely before extraction; all whitespace runs
// collapse to single spaces, preserving document order.
func extractHTML(path string) Result {
	file, err := os.Open(path)
	if err != nil {
		return failure(ReasonExtractionFailure, fmt.Sprintf("failed to open HTML file: %v", err))
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return failure(ReasonExtractionFailure, fmt.Sprintf("failed to parse HTML: %v", err))
	}

	doc.Find("script, style").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if text == "" {
		return warning("no text could be extracted from the HTML file")
	}
	return success(text)
}
