package model

import "time"

// Config holds the complete wordgate configuration
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Notify  NotifyConfig  `yaml:"notify"`
	Output  OutputConfig  `yaml:"output"`
	LLM     LLMConfig     `yaml:"llm"`
}

// StorageConfig controls where the word-list files live
type StorageConfig struct {
	// Dir is the directory holding one _<pos>.json file per POS tag
	Dir string `yaml:"dir"`
}

// NotifyConfig configures the GitHub issue-comment notifier.
// Notification fires only when a batch is rejected for invalid words.
type NotifyConfig struct {
	// Repository in "owner/name" form (GITHUB_REPOSITORY)
	Repository string `yaml:"repository"`

	// IssueNumber is the issue to comment on (GITHUB_ISSUE_NUMBER)
	IssueNumber int `yaml:"issue_number"`

	// Token is the API token (GITHUB_TOKEN); never written to config files
	Token string `yaml:"-"`

	// BaseURL overrides the GitHub API endpoint (for GHE or tests)
	BaseURL string `yaml:"base_url"`

	// Timeout for a single API request
	Timeout time.Duration `yaml:"timeout"`

	// RequestsPerSecond and Burst throttle outbound API calls
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`

	// Proxy settings (fall back to environment when empty)
	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
}

// OutputConfig controls run output
type OutputConfig struct {
	Verbose  bool   `yaml:"verbose"`
	JSONPath string `yaml:"json_path"` // Optional JSON report destination
}

// LLMConfig configures the optional triage advisor
type LLMConfig struct {
	// Provider name: "openai", "ollama", or "" (disabled)
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey for OpenAI; never written to config files
	APIKey string `yaml:"-"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url"`

	// Timeout for API requests, in seconds
	Timeout int `yaml:"timeout"`

	// MaxTokens limits the response length
	MaxTokens int `yaml:"max_tokens"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir: "Sources/PhraseKit/Resources",
		},
		Notify: NotifyConfig{
			BaseURL:           "https://api.github.com",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 1,
			Burst:             3,
		},
		Output: OutputConfig{},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}
