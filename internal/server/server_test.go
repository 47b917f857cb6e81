package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/piyushdhoka/drdo-docxsummarizer/internal/summarizer"
)

type fakeGenerator struct {
	response string
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, promptText string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeLister struct {
	models []string
	err    error
}

func (f *fakeLister) ListModels(ctx context.Context) ([]string, error) {
	return f.models, f.err
}

func newTestServer(gen *fakeGenerator, lister ModelLister) http.Handler {
	return NewServer(summarizer.NewService(gen), lister, 50).Routes()
}

func TestHandleHealth(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "ok"}, nil)

	for _, path := range []string{"/", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}

		var resp map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("invalid JSON from %s: %v", path, err)
		}
		if resp["status"] != "healthy" {
			t.Errorf("GET %s status = %q", path, resp["status"])
		}
	}
}

func TestHandleSummarize(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "A fine summary."}, nil)

	body, _ := json.Marshal(SummarizeRequest{Text: "Document body to summarize.", Style: "abstract"})
	req := httptest.NewRequest(http.MethodPost, "/summarize", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp SummarizeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Summary != "A fine summary." {
		t.Errorf("summary = %q", resp.Summary)
	}
	if resp.Style != "abstract" {
		t.Errorf("style = %q, want abstract", resp.Style)
	}
}

func TestHandleSummarizeEmptyText(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "unused"}, nil)

	for _, text := range []string{"", "   "} {
		body, _ := json.Marshal(SummarizeRequest{Text: text, Style: "bullet"})
		req := httptest.NewRequest(http.MethodPost, "/summarize", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("text %q: status = %d, want 400", text, rec.Code)
		}
	}
}

func TestHandleSummarizeGenerationFailure(t *testing.T) {
	h := newTestServer(&fakeGenerator{err: fmt.Errorf("model down")}, nil)

	body, _ := json.Marshal(SummarizeRequest{Text: "Some text.", Style: "bullet"})
	req := httptest.NewRequest(http.MethodPost, "/summarize", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Summarization failed") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleSummarizeMethodGuard(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "unused"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/summarize", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleStyles(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "unused"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/styles", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Styles []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"styles"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Styles) != 3 {
		t.Errorf("got %d styles, want 3", len(resp.Styles))
	}
}

func TestHandleModels(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "unused"}, &fakeLister{models: []string{"gpt-4o-mini"}})

	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "gpt-4o-mini") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleModelsFailureDegrades(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "unused"}, &fakeLister{err: fmt.Errorf("auth failed")})

	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with error field", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "auth failed") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleEvaluate(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "unused"}, nil)

	body, _ := json.Marshal(EvaluateRequest{
		Original: strings.Repeat("word ", 100),
		Summary:  strings.Repeat("word ", 20),
	})
	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		QualityScore     int     `json:"quality_score"`
		CompressionRatio float64 `json:"compression_ratio"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.CompressionRatio != 0.2 {
		t.Errorf("compression_ratio = %v, want 0.2", resp.CompressionRatio)
	}
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestHandleExtract(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "unused"}, nil)

	buf, contentType := multipartUpload(t, "notes.txt", []byte("Uploaded file content."))
	req := httptest.NewRequest(http.MethodPost, "/extract", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp ExtractResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Errorf("expected success, got %+v", resp)
	}
	if resp.Text != "Uploaded file content." {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.FileInfo == nil || resp.FileInfo.Name != "notes.txt" {
		t.Errorf("file_info = %+v", resp.FileInfo)
	}
}

func TestHandleExtractUnsupported(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "unused"}, nil)

	buf, contentType := multipartUpload(t, "archive.tar", []byte("binary blob"))
	req := httptest.NewRequest(http.MethodPost, "/extract", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp ExtractResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Reason != "unsupported_format" {
		t.Errorf("error_reason = %q", resp.Reason)
	}
}

func TestHandleExtractMissingFile(t *testing.T) {
	h := newTestServer(&fakeGenerator{response: "unused"}, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("other", "value")
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/extract", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
