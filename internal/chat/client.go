package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/hamzabencheikh/portfolio-backend/config"
)

// ErrRateLimited reports that the generative API refused the call with 429.
var ErrRateLimited = errors.New("chat provider rate limited")

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient wraps the generativelanguage v1beta generateContent endpoint.
// Outbound calls are smoothed through Throttle because the free tier starts
// returning 429 on short bursts.
type GeminiClient struct {
	BaseURL  string
	Model    string
	APIKey   string
	HTTP     *http.Client
	Throttle *rate.Limiter
}

func NewGemini(cfg config.ChatConfig) *GeminiClient {
	return &GeminiClient{
		BaseURL:  defaultBaseURL,
		Model:    cfg.Model,
		APIKey:   cfg.GeminiAPIKey,
		HTTP:     &http.Client{Timeout: 60 * time.Second},
		Throttle: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends one prompt and returns the first candidate's text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.Throttle != nil {
		if err := c.Throttle.Wait(ctx); err != nil {
			return "", fmt.Errorf("gemini throttle: %w", err)
		}
	}

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 200,
		},
	}

	b, _ := json.Marshal(body)
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("gemini error (status %d): %s", resp.StatusCode, detail)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini decode: %w", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
