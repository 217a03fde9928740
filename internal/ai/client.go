// Package ai talks to the structured-extraction service: a generative-text
// model that turns page content into candidate job records. The service is
// treated as an untrusted, occasionally malformed text generator.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotConfigured means no usable provider credentials are set. Callers
// degrade to a no-op rather than failing the run.
var ErrNotConfigured = errors.New("ai provider not configured")

const (
	geminiDefaultURL = "https://generativelanguage.googleapis.com"
	openAIDefaultURL = "https://api.openai.com"
	ollamaDefaultURL = "http://localhost:11434"
)

// Client calls one of the supported text-generation providers.
type Client struct {
	Provider string // gemini, openai, ollama
	APIKey   string
	Model    string
	BaseURL  string // provider endpoint, overridable in tests
	HTTP     *http.Client
}

// NewClient validates provider configuration and fills in defaults.
func NewClient(provider, apiKey, model, baseURL string, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{Provider: provider, APIKey: apiKey, Model: model, BaseURL: baseURL, HTTP: httpClient}

	switch provider {
	case "gemini":
		if apiKey == "" {
			return nil, ErrNotConfigured
		}
		if c.Model == "" {
			c.Model = "gemini-1.5-pro"
		}
		if c.BaseURL == "" {
			c.BaseURL = geminiDefaultURL
		}
	case "openai":
		if apiKey == "" {
			return nil, ErrNotConfigured
		}
		if c.Model == "" {
			c.Model = "gpt-4"
		}
		if c.BaseURL == "" {
			c.BaseURL = openAIDefaultURL
		}
	case "ollama":
		if c.Model == "" {
			c.Model = "llama3.2"
		}
		if c.BaseURL == "" {
			c.BaseURL = ollamaDefaultURL
		}
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", provider)
	}

	return c, nil
}

// Generate sends a prompt and returns the model's text response.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	switch c.Provider {
	case "gemini":
		return c.generateWithGemini(ctx, prompt)
	case "openai":
		return c.generateWithOpenAI(ctx, prompt)
	case "ollama":
		return c.generateWithOllama(ctx, prompt)
	default:
		return "", fmt.Errorf("unsupported ai provider: %s", c.Provider)
	}
}

func (c *Client) generateWithGemini(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	body, err := c.post(ctx, url, nil, reqBody)
	if err != nil {
		return "", err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	candidates, ok := result["candidates"].([]interface{})
	if !ok || len(candidates) == 0 {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}
	candidate, ok := candidates[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}
	content, ok := candidate["content"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}
	parts, ok := content["parts"].([]interface{})
	if !ok || len(parts) == 0 {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}
	part, ok := parts[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}
	text, ok := part["text"].(string)
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}

	return strings.TrimSpace(text), nil
}

func (c *Client) generateWithOpenAI(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": c.Model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": 0.2,
	}

	headers := map[string]string{"Authorization": "Bearer " + c.APIKey}
	body, err := c.post(ctx, c.BaseURL+"/v1/chat/completions", headers, reqBody)
	if err != nil {
		return "", err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	choices, ok := result["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", fmt.Errorf("unexpected response format from OpenAI")
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response format from OpenAI")
	}
	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response format from OpenAI")
	}
	content, ok := message["content"].(string)
	if !ok {
		return "", fmt.Errorf("unexpected response format from OpenAI")
	}

	return strings.TrimSpace(content), nil
}

func (c *Client) generateWithOllama(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":  c.Model,
		"prompt": prompt,
		"stream": false,
	}

	body, err := c.post(ctx, c.BaseURL+"/api/generate", nil, reqBody)
	if err != nil {
		return "", err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	response, ok := result["response"].(string)
	if !ok {
		return "", fmt.Errorf("unexpected response format from Ollama")
	}

	return strings.TrimSpace(response), nil
}

func (c *Client) post(ctx context.Context, url string, headers map[string]string, reqBody interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s API error: %s", c.Provider, string(body))
	}
	return body, nil
}
