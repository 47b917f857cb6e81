// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package extractor

import (
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// pdfProvider is one PDF parsing backend. Providers are tried in order;
// the first to succeed serves the request.
type pdfProvider interface {
	name() string
	// pageTexts returns the text of every page, in document order.
	pageTexts(path string) ([]string, error)
	pageCount(path string) (int, error)
}

// pdfProviders lists the backends in priority order: the pure Go reader
// first, MuPDF as fallback. Both extraction and the info lookup walk
// this same list.
var pdfProviders = []pdfProvider{ledongthucProvider{}, fitzProvider{}}

// extractPDF extracts text from all pages, inserting a "--- Page N ---"
// marker before each non-empty page. A structurally valid PDF with no
// extractable text is a warning, not an error.
func extractPDF(path string) Result {
	var errs []string
	for _, p := range pdfProviders {
		pages, err := tryPageTexts(p, path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", p.name(), err))
			continue
		}

		var sb strings.Builder
		for i, pageText := range pages {
			pageText = strings.TrimSpace(pageText)
			if pageText == "" {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n--- Page %d ---\n", i+1))
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}

		text := strings.TrimSpace(sb.String())
		if text == "" {
			return warning("no text could be extracted; the file might be image-based or corrupted")
		}
		return success(text)
	}

	return failure(ReasonExtractionFailure,
		fmt.Sprintf("all PDF backends failed (%s)", strings.Join(errs, "; ")))
}

// pdfInfo returns the page count and the backend that served it, trying
// providers in the same order as extraction. Used for display only.
func pdfInfo(path string) (int, string, error) {
	var errs []string
	for _, p := range pdfProviders {
		n, err := p.pageCount(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", p.name(), err))
			continue
		}
		return n, p.name(), nil
	}
	return 0, "", fmt.Errorf("all PDF backends failed (%s)", strings.Join(errs, "; "))
}

// tryPageTexts shields callers from parser panics on malformed input.
func tryPageTexts(p pdfProvider, path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return p.pageTexts(path)
}

// ledongthucProvider reads PDFs with the pure Go ledongthuc/pdf library.
type ledongthucProvider struct{}

func (ledongthucProvider) name() string { return "ledongthuc/pdf" }

func (ledongthucProvider) open(path string) (*os.File, *pdf.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return f, r, nil
}

func (p ledongthucProvider) pageTexts(path string) ([]string, error) {
	f, r, err := p.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := r.NumPage()
	pages := make([]string, 0, numPages)
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= numPages; i++ {
		pg := r.Page(i)
		if pg.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		for _, name := range pg.Fonts() {
			if _, ok := fonts[name]; ok {
				continue
			}
			fnt := pg.Font(name)
			fonts[name] = &fnt
		}
		text, err := pg.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func (p ledongthucProvider) pageCount(path string) (int, error) {
	f, r, err := p.open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return r.NumPage(), nil
}

// fitzProvider reads PDFs with go-fitz (MuPDF). Kept as fallback since
// MuPDF handles documents the pure Go reader chokes on; its absence at
// build time surfaces as an open error here, never as a crash.
type fitzProvider struct{}

func (fitzProvider) name() string { return "go-fitz" }

func (fitzProvider) pageTexts(path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for i := 0; i < numPages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			// Keep page order intact; a bad page contributes nothing.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func (fitzProvider) pageCount(path string) (int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()
	return doc.NumPage(), nil
}
