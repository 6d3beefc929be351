package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"finance-dashboard/config"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// generateTimeout bounds one outbound call. The remote model is the slowest
// dependency in the system; a hung call must not hold a request forever.
const generateTimeout = 60 * time.Second

const canaryPrompt = "Say 'Hello' if you can read this."

// Client talks to the Gemini generateContent REST endpoint. Construct it
// once at startup and pass it where needed.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient builds the gateway client. A missing credential is a startup
// error: the process must refuse to run without it.
func NewClient(cfg config.AIConfig) (*Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY not found in environment variables")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	logger.Info().Str("model", model).Msg("gemini client initialized")

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.GeminiAPIKey,
		model:      model,
		httpClient: &http.Client{},
	}, nil
}

// Generate sends the prompt to the model and returns the reply text. When a
// system instruction is given it is prepended to the prompt, separated by a
// blank line. No retries: a failed call fails the whole request.
func (c *Client) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	fullPrompt := prompt
	if systemInstruction != "" {
		fullPrompt = systemInstruction + "\n\n" + prompt
	}

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: fullPrompt}}}},
	}

	body, err := c.sendRequest(ctx, payload)
	if err != nil {
		logger.Error().Err(err).Msg("gemini API error")
		return "", fmt.Errorf("failed to generate AI response: %w", err)
	}

	text, err := extractText(body)
	if err != nil {
		logger.Error().Err(err).Msg("gemini API error")
		return "", fmt.Errorf("failed to generate AI response: %w", err)
	}

	logger.Info().Int("chars", len(text)).Msg("generated response")
	return text, nil
}

// TestConnection sends a fixed canary and reports healthy only when the
// lowercased reply contains "hello". Any failure is unhealthy, never an
// error.
func (c *Client) TestConnection(ctx context.Context) bool {
	text, err := c.Generate(ctx, canaryPrompt, "")
	if err != nil {
		logger.Error().Err(err).Msg("connection test failed")
		return false
	}
	return strings.Contains(strings.ToLower(text), "hello")
}

func (c *Client) sendRequest(ctx context.Context, payload generateRequest) ([]byte, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	reqCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	raw, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini API connection error: %w", err)
	}
	defer raw.Body.Close()

	body, err := io.ReadAll(raw.Body)
	if err != nil {
		return nil, err
	}

	if raw.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error: %d - %s", raw.StatusCode, string(body))
	}

	return body, nil
}

func extractText(body []byte) (string, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("gemini API error: %d - %s", resp.Error.Code, resp.Error.Message)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned empty response")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
