package extractor

import (
	"math"
	"os"
	"path/filepath"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/filetype"
)

// FileInfo describes an uploaded file for display and validation. It
// has no effect on extraction beyond the Supported gate.
type FileInfo struct {
	Name      string        `json:"file_name"`
	SizeMB    float64       `json:"file_size_mb"`
	Type      filetype.Type `json:"file_type"`
	Supported bool          `json:"supported"`
	PageCount int           `json:"page_count,omitempty"`
	Extractor string        `json:"extractor,omitempty"`
}

// Info builds a FileInfo for the given path. Returns nil with the stat
// error when the path does not exist.
func Info(path string) (*FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	ft := filetype.Detect(path)
	info := &FileInfo{
		Name:      filepath.Base(path),
		SizeMB:    math.Round(float64(st.Size())/(1024*1024)*100) / 100,
		Type:      ft,
		Supported: ft.Supported(),
	}

	// Format-specific detail is best effort; failures leave the
	// descriptive fields empty rather than failing the lookup.
	switch ft {
	case filetype.PDF:
		if pages, provider, err := pdfInfo(path); err == nil {
			info.PageCount = pages
			info.Extractor = provider
		}
	case filetype.DOCX:
		if pages, extractor, err := docxInfo(path); err == nil {
			info.PageCount = pages
			info.Extractor = extractor
		}
	}

	return info, nil
}
