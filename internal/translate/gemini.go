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

// geminiClient calls the Gemini generateContent endpoint.
type geminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
}

func (c *geminiClient) complete(ctx context.Context, prompt string, maxTokens int, timeout time.Duration) (string, error) {
	temperature := 0.1
	if maxTokens > 500 {
		temperature = 0.2
	}

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: maxTokens,
			Temperature:     temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.AIRequestSeconds.WithLabelValues("gemini").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.AIRequests.WithLabelValues("gemini", "error").Inc()
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.AIRequests.WithLabelValues("gemini", "error").Inc()
		return "", fmt.Errorf("gemini API error: status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		c.metrics.AIRequests.WithLabelValues("gemini", "error").Inc()
		return "", fmt.Errorf("decode gemini response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		c.metrics.AIRequests.WithLabelValues("gemini", "empty").Inc()
		return "", fmt.Errorf("gemini returned no candidates")
	}

	c.metrics.AIRequests.WithLabelValues("gemini", "success").Inc()
	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}

// Gemini API wire types.

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}
