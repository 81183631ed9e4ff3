package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrasekit/wordgate/internal/model"
)

// Provider defines the interface for LLM triage providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Review produces advisory safe/unsafe recommendations for pending words
	Review(ctx context.Context, req ReviewRequest) (*ReviewResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ReviewRequest contains the input for a triage review
type ReviewRequest struct {
	// POS is the part of speech the words belong to
	POS model.POS

	// Words is the STRICT allowlist of words under review.
	// Advice for any word not in this list is discarded.
	Words []string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ReviewResponse contains the advisory output. It is never written back
// to the word lists; promotion out of pending happens elsewhere.
type ReviewResponse struct {
	Advice     []WordAdvice
	Model      string
	TokensUsed int
}

// WordAdvice is a single advisory recommendation
type WordAdvice struct {
	Word           string `json:"word"`
	Recommendation string `json:"recommendation"` // "safe", "unsafe", or "unsure"
	Reason         string `json:"reason,omitempty"`
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// BuildPrompt constructs the default triage prompt
func BuildPrompt(pos model.POS, words []string) string {
	return fmt.Sprintf(`You are reviewing candidate words for a family-friendly word list. Each word is tagged as a %s and is awaiting review.

CRITICAL RULES:
1. Only review words from this list, exactly as written:
%s

2. For each word, recommend "safe" (fine for all audiences), "unsafe" (profanity, slurs, sexual or violent content, or otherwise inappropriate), or "unsure".
3. This is advisory only; do not assume your recommendation is applied.
4. Respond with a JSON array only, no prose, one object per word:
[{"word": "...", "recommendation": "safe|unsafe|unsure", "reason": "..."}]`,
		pos, "- "+strings.Join(words, "\n- "))
}

// parseAdvice parses the model's JSON response, tolerating markdown code
// fences, and drops advice for any word outside the allowlist or with an
// unknown recommendation.
func parseAdvice(raw string, allowed []string) ([]WordAdvice, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var advice []WordAdvice
	if err := json.Unmarshal([]byte(text), &advice); err != nil {
		return nil, fmt.Errorf("parse advice: %w", err)
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, w := range allowed {
		allowedSet[w] = true
	}

	var kept []WordAdvice
	for _, a := range advice {
		if !allowedSet[a.Word] {
			continue
		}
		switch a.Recommendation {
		case "safe", "unsafe", "unsure":
			kept = append(kept, a)
		}
	}

	return kept, nil
}
