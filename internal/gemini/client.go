package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"sflix-catalog-service/internal/config"
)

var (
	// ErrNoCredential is returned when the client has no API key.
	ErrNoCredential = errors.New("gemini API key not configured")
	// ErrEmptyResponse is returned when the response carries no generated text.
	ErrEmptyResponse = errors.New("gemini response has no text")
	// ErrBlocked is returned when the prompt was rejected by safety filters.
	ErrBlocked = errors.New("gemini blocked the prompt")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini API returned status %d: %s", e.Code, e.Body)
}

// Client is the Gemini generateContent REST client.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// NewClient creates a new Gemini API client.
func NewClient(cfg config.GeminiConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ---- Request Types ----

// GenerateRequest asks the model for JSON conforming to Schema.
type GenerateRequest struct {
	Prompt      string
	Schema      Schema
	Temperature float64
}

// Schema is an OpenAPI-subset response schema as accepted by the API.
type Schema map[string]any

type generateContentBody struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   Schema  `json:"responseSchema,omitempty"`
	Temperature      float64 `json:"temperature"`
}

// ---- Client Methods ----

// Configured reports whether the client has a credential.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GenerateJSON runs a structured-output generation and returns the raw JSON
// text produced by the model.
func (c *Client) GenerateJSON(ctx context.Context, req GenerateRequest) (string, error) {
	if !c.Configured() {
		return "", ErrNoCredential
	}

	body, err := json.Marshal(generateContentBody{
		Contents: []content{{Role: "user", Parts: []part{{Text: req.Prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   req.Schema,
			Temperature:      req.Temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	slog.Debug("calling gemini generateContent", "model", c.model, "temperature", req.Temperature)

	raw, err := c.doPost(ctx, url, body)
	if err != nil {
		return "", err
	}

	if reason := gjson.GetBytes(raw, "promptFeedback.blockReason"); reason.Exists() {
		return "", fmt.Errorf("%w: %s", ErrBlocked, reason.String())
	}
	text := gjson.GetBytes(raw, "candidates.0.content.parts.0.text")
	if !text.Exists() || text.String() == "" {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}

func (c *Client) doPost(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
