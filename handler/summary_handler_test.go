package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"meetsum/service"
	"meetsum/types"
)

type fakeAIService struct {
	summary        string
	err            error
	calls          int
	gotTranscript  string
	gotInstruction string
}

func (f *fakeAIService) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	f.calls++
	f.gotTranscript = transcript
	f.gotInstruction = instruction
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

func newSummaryRouter(ai service.AIService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewSummaryHandler(service.NewExtractService(), ai)
	router.POST("/generate_summary", h.HandleGenerateSummary)
	return router
}

// multipartBody builds a /generate_summary request body, optionally leaving
// out the file or the prompt field.
func multipartBody(t *testing.T, filename, content, prompt string, includeFile, includePrompt bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if includeFile {
		fw, err := w.CreateFormFile("transcript", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if includePrompt {
		if err := w.WriteField("prompt", prompt); err != nil {
			t.Fatalf("write prompt field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestHandleGenerateSummary(t *testing.T) {
	ai := &fakeAIService{summary: "A summary"}
	router := newSummaryRouter(ai)

	body, contentType := multipartBody(t, "notes.txt", "Hello world", "Summarize in one word", true, true)
	req := httptest.NewRequest(http.MethodPost, "/generate_summary", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var resp types.SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Summary != "A summary" {
		t.Errorf("summary = %q, want %q", resp.Summary, "A summary")
	}
	if ai.calls != 1 {
		t.Errorf("provider calls = %d, want 1", ai.calls)
	}
	if ai.gotTranscript != "Hello world" {
		t.Errorf("transcript = %q, want %q", ai.gotTranscript, "Hello world")
	}
	if ai.gotInstruction != "Summarize in one word" {
		t.Errorf("instruction = %q, want %q", ai.gotInstruction, "Summarize in one word")
	}
}

func TestHandleGenerateSummaryMissingFields(t *testing.T) {
	tests := []struct {
		name          string
		includeFile   bool
		includePrompt bool
	}{
		{name: "missing transcript", includeFile: false, includePrompt: true},
		{name: "missing prompt", includeFile: true, includePrompt: false},
		{name: "missing both", includeFile: false, includePrompt: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &fakeAIService{summary: "unused"}
			router := newSummaryRouter(ai)

			body, contentType := multipartBody(t, "notes.txt", "Hello world", "Summarize", tt.includeFile, tt.includePrompt)
			req := httptest.NewRequest(http.MethodPost, "/generate_summary", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if ai.calls != 0 {
				t.Errorf("provider calls = %d, want 0", ai.calls)
			}
		})
	}
}

func TestHandleGenerateSummaryUnsupportedExtension(t *testing.T) {
	ai := &fakeAIService{summary: "unused"}
	router := newSummaryRouter(ai)

	body, contentType := multipartBody(t, "recording.mp3", "audio bytes", "Summarize", true, true)
	req := httptest.NewRequest(http.MethodPost, "/generate_summary", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp types.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Only .txt, .pdf, .docx files allowed" {
		t.Errorf("error = %q", resp.Error)
	}
	if ai.calls != 0 {
		t.Errorf("provider calls = %d, want 0", ai.calls)
	}
}

func TestHandleGenerateSummaryInvalidUTF8(t *testing.T) {
	ai := &fakeAIService{summary: "unused"}
	router := newSummaryRouter(ai)

	body, contentType := multipartBody(t, "notes.txt", string([]byte{0xff, 0xfe, 0xfd}), "Summarize", true, true)
	req := httptest.NewRequest(http.MethodPost, "/generate_summary", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if ai.calls != 0 {
		t.Errorf("provider calls = %d, want 0", ai.calls)
	}
}

func TestHandleGenerateSummaryProviderFailure(t *testing.T) {
	ai := &fakeAIService{err: types.NewAppError(types.ErrProvider, "upstream unavailable", nil)}
	router := newSummaryRouter(ai)

	body, contentType := multipartBody(t, "notes.txt", "Hello world", "Summarize", true, true)
	req := httptest.NewRequest(http.MethodPost, "/generate_summary", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	msg, ok := resp["error"].(string)
	if !ok || msg == "" {
		t.Errorf("error field = %v, want non-empty string", resp["error"])
	}
	if _, ok := resp["summary"]; ok {
		t.Error("response carries a summary field alongside the error")
	}
}
