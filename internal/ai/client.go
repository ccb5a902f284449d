package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	applog "celebra/internal/log"
	"celebra/models"
)

const (
	defaultModel       = "gpt-4.1-mini"
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultTemperature = 0.7
	defaultTimeout     = 20 * time.Second
)

const systemInstruction = `You are a helpful assistant for a hospitality display system.
Your goal is to write short, warm, and professional celebration messages.
Do not use emojis.
Keep the tone joyful but elegant.
Maximum length: 40 words.`

// Config describes how the message generator should be initialised.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Client generates celebration messages through the OpenAI Chat Completions
// API. A client without an API key is valid and always answers with the
// deterministic fallback, so the staff form works in any environment.
type Client struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	httpClient  *http.Client
}

// NewClient builds a Client, applying defaults for zero values.
func NewClient(cfg Config) *Client {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	temp := cfg.Temperature
	if temp <= 0 {
		temp = defaultTemperature
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	return &Client{
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       model,
		baseURL:     strings.TrimRight(baseURL, "/"),
		temperature: temp,
		httpClient:  httpClient,
	}
}

// GenerateMessage produces a short celebration message for the guest. One
// attempt, no retries; every failure path yields a deterministic fallback
// rather than an error, per the signage contract that nothing here may break
// the staff form.
func (c *Client) GenerateMessage(ctx context.Context, guestName string, occasion models.Occasion) string {
	guestName = strings.TrimSpace(guestName)

	if c == nil || c.apiKey == "" {
		applog.Debug(ctx, "message generator not configured, using fallback", "occasion", occasion)
		return FallbackMessage(occasion)
	}

	prompt := fmt.Sprintf("Write a celebration message for a guest named %q for their %s.", guestName, occasion)
	content, err := c.performChatCompletion(ctx, prompt)
	if err != nil {
		applog.Error(ctx, "message generation failed, using fallback", "error", err)
		return ExtendedFallbackMessage(occasion)
	}
	if content == "" {
		return "Wishing you a wonderful celebration filled with joy and happiness."
	}
	return content
}

// FallbackMessage is the deterministic text used when no generator is
// configured.
func FallbackMessage(occasion models.Occasion) string {
	return fmt.Sprintf("Wishing you a very happy %s!", strings.ToLower(string(occasion)))
}

// ExtendedFallbackMessage is the deterministic text used when a generation
// attempt fails mid-flight.
func ExtendedFallbackMessage(occasion models.Occasion) string {
	return fmt.Sprintf("Wishing you a very happy %s! We hope you have a wonderful time celebrating with us.", strings.ToLower(string(occasion)))
}

func (c *Client) performChatCompletion(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model":       c.model,
		"temperature": c.temperature,
		"messages": []map[string]string{
			{"role": "system", "content": systemInstruction},
			{"role": "user", "content": prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: call openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("ai: openai returned status %s", resp.Status)
	}

	var responseData struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&responseData); err != nil {
		return "", fmt.Errorf("ai: decode response: %w", err)
	}

	if len(responseData.Choices) == 0 {
		return "", errors.New("ai: openai returned no choices")
	}

	return strings.TrimSpace(responseData.Choices[0].Message.Content), nil
}
