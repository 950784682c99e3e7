package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kitsunebi/disaster-info-api/internal/observability"
)

// claudeClient calls the Anthropic Messages endpoint.
type claudeClient struct {
	apiKey     string
	model      string
	version    string
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
}

func (c *claudeClient) complete(ctx context.Context, prompt string, maxTokens int, timeout time.Duration) (string, error) {
	payload, err := json.Marshal(claudeRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  []claudeMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal claude request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("anthropic-version", c.version)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.AIRequestSeconds.WithLabelValues("claude").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.AIRequests.WithLabelValues("claude", "error").Inc()
		return "", fmt.Errorf("claude request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.AIRequests.WithLabelValues("claude", "error").Inc()
		return "", fmt.Errorf("claude API error: status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var claudeResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&claudeResp); err != nil {
		c.metrics.AIRequests.WithLabelValues("claude", "error").Inc()
		return "", fmt.Errorf("decode claude response: %w", err)
	}

	if len(claudeResp.Content) == 0 {
		c.metrics.AIRequests.WithLabelValues("claude", "empty").Inc()
		return "", fmt.Errorf("claude returned no content")
	}

	c.metrics.AIRequests.WithLabelValues("claude", "success").Inc()
	return strings.TrimSpace(claudeResp.Content[0].Text), nil
}

// Anthropic API wire types.

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []claudeContentBlock `json:"content"`
}

type claudeContentBlock struct {
	Text string `json:"text"`
}
