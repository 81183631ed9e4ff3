package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrasekit/wordgate/internal/model"
)

func TestParseAdvice_PlainJSON(t *testing.T) {
	raw := `[{"word": "cat", "recommendation": "safe", "reason": "common animal"},
	{"word": "dog", "recommendation": "unsure"}]`

	advice, err := parseAdvice(raw, []string{"cat", "dog"})
	if err != nil {
		t.Fatalf("parseAdvice failed: %v", err)
	}

	if len(advice) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(advice))
	}
	if advice[0].Word != "cat" || advice[0].Recommendation != "safe" {
		t.Errorf("unexpected first entry: %+v", advice[0])
	}
}

func TestParseAdvice_CodeFence(t *testing.T) {
	raw := "```json\n[{\"word\": \"cat\", \"recommendation\": \"safe\"}]\n```"

	advice, err := parseAdvice(raw, []string{"cat"})
	if err != nil {
		t.Fatalf("parseAdvice failed: %v", err)
	}
	if len(advice) != 1 {
		t.Errorf("expected 1 entry, got %d", len(advice))
	}
}

func TestParseAdvice_DropsDisallowedWords(t *testing.T) {
	// Advice for words outside the request allowlist must be discarded
	raw := `[{"word": "cat", "recommendation": "safe"},
	{"word": "hallucinated", "recommendation": "unsafe"}]`

	advice, err := parseAdvice(raw, []string{"cat"})
	if err != nil {
		t.Fatalf("parseAdvice failed: %v", err)
	}
	if len(advice) != 1 || advice[0].Word != "cat" {
		t.Errorf("expected only allowlisted words, got %+v", advice)
	}
}

func TestParseAdvice_DropsUnknownRecommendations(t *testing.T) {
	raw := `[{"word": "cat", "recommendation": "banish"}]`

	advice, err := parseAdvice(raw, []string{"cat"})
	if err != nil {
		t.Fatalf("parseAdvice failed: %v", err)
	}
	if len(advice) != 0 {
		t.Errorf("expected unknown recommendation dropped, got %+v", advice)
	}
}

func TestParseAdvice_Malformed(t *testing.T) {
	if _, err := parseAdvice("not json at all", []string{"cat"}); err == nil {
		t.Error("expected error for malformed response")
	}
}

func TestOllamaProvider_Review(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("expected path /api/generate, got %s", r.URL.Path)
		}

		var apiReq ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !strings.Contains(apiReq.Prompt, "cat") {
			t.Errorf("expected word in prompt, got %q", apiReq.Prompt)
		}

		resp := ollamaResponse{
			Model:           "llama3.1",
			Response:        `[{"word": "cat", "recommendation": "safe", "reason": "household pet"}]`,
			Done:            true,
			PromptEvalCount: 10,
			EvalCount:       20,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llama3.1", Timeout: 5})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	resp, err := provider.Review(context.Background(), ReviewRequest{
		POS:   model.POSNoun,
		Words: []string{"cat"},
	})
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if len(resp.Advice) != 1 || resp.Advice[0].Recommendation != "safe" {
		t.Errorf("unexpected advice: %+v", resp.Advice)
	}
	if resp.TokensUsed != 30 {
		t.Errorf("unexpected token usage: %d", resp.TokensUsed)
	}
}

func TestOllamaProvider_Review_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llama3.1", Timeout: 5})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	_, err = provider.Review(context.Background(), ReviewRequest{
		POS:   model.POSNoun,
		Words: []string{"cat"},
	})
	if err == nil {
		t.Fatal("expected error for API failure")
	}
	if !strings.Contains(err.Error(), "model not found") {
		t.Errorf("expected API error message surfaced, got %v", err)
	}
}

func TestNewProvider(t *testing.T) {
	if p, err := NewProvider(Config{Provider: ""}); err != nil || p != nil {
		t.Errorf("expected disabled provider for empty name, got %v, %v", p, err)
	}

	if _, err := NewProvider(Config{Provider: "unknown"}); err == nil {
		t.Error("expected error for unknown provider")
	}

	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("expected error for openai without API key")
	}

	p, err := NewProvider(Config{Provider: "ollama"})
	if err != nil || p == nil {
		t.Errorf("expected ollama provider, got %v, %v", p, err)
	}
}
