// Package advisor fetches natural-language summaries of the financial
// state from a text-generation API. The advisor is display-only: every
// failure degrades to a fixed fallback string and nothing here ever
// touches the book.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"
	requestTimeout = 30 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// Fallback texts shown when the advisory call fails or returns nothing.
const (
	DailyFallback    = "The analyst is offline right now. Your numbers are still up to date below."
	StrategyFallback = "Could not generate a plan right now. Try again in a moment."
)

var (
	// ErrNoAPIKey indicates the client was constructed without a key.
	ErrNoAPIKey = errors.New("advisor: no API key configured")
	// ErrEmptyResponse indicates the API answered with no usable text.
	ErrEmptyResponse = errors.New("advisor: empty response")
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "advisor").Logger()

// Client calls the generateContent endpoint.
type Client struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client. Returns nil when the key is empty; a nil
// client is the signal to skip fetching and show fallbacks immediately.
func NewClient(apiKey, model, baseURL string) *Client {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

// DailyUpdate returns a 2-3 line status update for the given snapshot
// digest, or DailyFallback on any failure.
func (c *Client) DailyUpdate(ctx context.Context, digest Digest) string {
	return c.generateOr(ctx, dailyPrompt(digest), DailyFallback)
}

// StrategyPlan returns a debt-payoff and goal plan for the snapshot
// digest, or StrategyFallback on any failure.
func (c *Client) StrategyPlan(ctx context.Context, digest Digest) string {
	return c.generateOr(ctx, strategyPrompt(digest), StrategyFallback)
}

// generateOr wraps Generate with the degrade-to-fallback policy.
func (c *Client) generateOr(ctx context.Context, prompt, fallback string) string {
	if c == nil {
		return fallback
	}
	text, err := c.Generate(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Msg("advisory call failed")
		return fallback
	}
	return text
}

// request/response shapes for the generateContent wire format.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends one prompt and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("advisor: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("advisor: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("advisor: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("advisor: reading response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("advisor: parsing response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
