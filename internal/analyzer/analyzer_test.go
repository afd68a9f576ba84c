package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/danuarta/certificate-analyzer-api/internal/utils"
)

func TestIsDeprecated(t *testing.T) {
	if !IsDeprecated(errors.New("model gemini-old has been deprecated")) {
		t.Error("expected deprecated error to match")
	}
	if IsDeprecated(errors.New("quota exceeded")) {
		t.Error("unrelated error must not match")
	}
	if IsDeprecated(nil) {
		t.Error("nil must not match")
	}
}

func TestIsNotFound(t *testing.T) {
	err := &APIError{StatusCode: http.StatusNotFound, Message: "models/gemini-old is not found"}
	if !IsNotFound(err) {
		t.Errorf("expected 404 APIError to match, got %v", err)
	}
	if IsNotFound(errors.New("connection refused")) {
		t.Error("unrelated error must not match")
	}
}

type geminiStub struct {
	mu     sync.Mutex
	calls  []string
	status map[string]int
	text   string
}

func (s *geminiStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Path shape: /models/<model>:generateContent
		model := strings.TrimPrefix(r.URL.Path, "/models/")
		model = strings.TrimSuffix(model, ":generateContent")

		s.mu.Lock()
		s.calls = append(s.calls, model)
		status := s.status[model]
		s.mu.Unlock()

		if status != 0 && status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprintf(w, `{"error":{"code":%d,"message":"models/%s is not available","status":"NOT_FOUND"}}`, status, model)
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": s.text}}}},
			},
		})
	}
}

func newTestAnalyzer(t *testing.T, stub *geminiStub) (Analyzer, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	return NewGeminiAnalyzer(client, "gemini-1.5-flash", utils.NewLogger("error")), srv
}

func TestAnalyzeSuccess(t *testing.T) {
	stub := &geminiStub{status: map[string]int{}, text: "hello"}
	llm, _ := newTestAnalyzer(t, stub)

	text, err := llm.Analyze(context.Background(), "gemini-1.5-pro", "summarize", nil)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if text != "hello" {
		t.Errorf("text = %q, want %q", text, "hello")
	}
	if len(stub.calls) != 1 || stub.calls[0] != "gemini-1.5-pro" {
		t.Errorf("calls = %v, want single call to gemini-1.5-pro", stub.calls)
	}
}

func TestAnalyzeFallsBackOnNotFound(t *testing.T) {
	stub := &geminiStub{
		status: map[string]int{"gemini-old": http.StatusNotFound},
		text:   "from fallback",
	}
	llm, _ := newTestAnalyzer(t, stub)

	text, err := llm.Analyze(context.Background(), "gemini-old", "summarize", nil)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if text != "from fallback" {
		t.Errorf("text = %q, want fallback response", text)
	}
	if len(stub.calls) != 2 || stub.calls[1] != "gemini-1.5-flash" {
		t.Errorf("calls = %v, want retry against gemini-1.5-flash", stub.calls)
	}
}

func TestAnalyzeDoesNotFallBackOnOtherErrors(t *testing.T) {
	stub := &geminiStub{
		status: map[string]int{"gemini-1.5-pro": http.StatusInternalServerError},
	}
	llm, _ := newTestAnalyzer(t, stub)

	_, err := llm.Analyze(context.Background(), "gemini-1.5-pro", "summarize", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(stub.calls) != 1 {
		t.Errorf("calls = %v, want no fallback attempt", stub.calls)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("error = %v, want APIError with status 500", err)
	}
}

func TestAnalyzeFallbackFailurePropagates(t *testing.T) {
	stub := &geminiStub{
		status: map[string]int{
			"gemini-old":       http.StatusNotFound,
			"gemini-1.5-flash": http.StatusInternalServerError,
		},
	}
	llm, _ := newTestAnalyzer(t, stub)

	_, err := llm.Analyze(context.Background(), "gemini-old", "summarize", nil)
	if err == nil {
		t.Fatal("expected fallback failure to propagate")
	}
	if len(stub.calls) != 2 {
		t.Errorf("calls = %v, want exactly one fallback attempt", stub.calls)
	}
}

func TestGenerateContentSendsInlineImage(t *testing.T) {
	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MIMEType string `json:"mime_type"`
					Data     string `json:"data"`
				} `json:"inline_data"`
			} `json:"parts"`
		} `json:"contents"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "ok"}}}},
			},
		})
	}))
	defer srv.Close()

	client, err := NewClient("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), "gemini-1.5-flash", "describe", &InlineImage{
		Data: []byte{0xFF, 0xD8, 0xFF},
	})
	if err != nil {
		t.Fatalf("GenerateContent returned error: %v", err)
	}

	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 2 {
		t.Fatalf("unexpected request shape: %+v", gotBody)
	}

	img := gotBody.Contents[0].Parts[0].InlineData
	if img == nil {
		t.Fatal("first part must carry inline image data")
	}
	if img.MIMEType != "image/jpeg" {
		t.Errorf("mime type defaulted to %q, want image/jpeg", img.MIMEType)
	}
	if img.Data == "" {
		t.Error("inline data must be base64 encoded bytes")
	}
	if gotBody.Contents[0].Parts[1].Text != "describe" {
		t.Errorf("prompt part = %q", gotBody.Contents[0].Parts[1].Text)
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Error("expected error for empty API key")
	}
}
