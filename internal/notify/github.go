package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phrasekit/wordgate/internal/model"
	"github.com/phrasekit/wordgate/internal/util"
	"golang.org/x/time/rate"
)

const notifyMaxRetries = 3

// notifySleepFunc is the sleep function used between retries (injectable for tests)
var notifySleepFunc = time.Sleep

// GitHubNotifier posts the failure message as a comment on a GitHub issue
type GitHubNotifier struct {
	endpoint   string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewGitHubNotifier creates a notifier for the configured repository and
// issue. Repository, issue number, and token are all required.
func NewGitHubNotifier(cfg model.NotifyConfig) (*GitHubNotifier, error) {
	if cfg.Repository == "" {
		return nil, fmt.Errorf("notify: repository is required")
	}
	if cfg.IssueNumber <= 0 {
		return nil, fmt.Errorf("notify: issue number is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("notify: token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 3
	}

	return &GitHubNotifier{
		endpoint: fmt.Sprintf("%s/repos/%s/issues/%d/comments",
			strings.TrimSuffix(baseURL, "/"), cfg.Repository, cfg.IssueNumber),
		token: cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
			},
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// Notify posts the message as an issue comment, retrying transient
// failures with exponential backoff.
func (n *GitHubNotifier) Notify(ctx context.Context, message string) error {
	var lastErr error
	for attempt := 0; attempt < notifyMaxRetries; attempt++ {
		if err := n.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}

		retryable, err := n.post(ctx, message)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
		if attempt < notifyMaxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			notifySleepFunc(backoff)
		}
	}
	return lastErr
}

// post executes a single comment creation request. The bool return
// indicates whether a failure is worth retrying.
func (n *GitHubNotifier) post(ctx context.Context, message string) (bool, error) {
	payload, err := json.Marshal(map[string]string{"body": message})
	if err != nil {
		return false, fmt.Errorf("marshal comment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+n.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return isRetryableNetworkError(err.Error()), fmt.Errorf("post comment: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return false, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	err = fmt.Errorf("post comment: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))

	// Retry on 5xx server errors and 429 rate limit
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return true, err
	}
	return false, err
}

// isRetryableNetworkError checks error strings for transient network failures
func isRetryableNetworkError(errMsg string) bool {
	s := strings.ToLower(errMsg)
	return strings.Contains(s, "timeout") ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "connection reset")
}
