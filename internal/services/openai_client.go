package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"avoqado-web/internal/config"
	"avoqado-web/internal/models"
)

const maxCompletionResponseBytes = 1024 * 1024

var (
	ErrAIUnauthorized  = errors.New("AI provider rejected the API key")
	ErrAIEmptyResponse = errors.New("AI provider returned no choices")
)

type openAIClient struct {
	apiKey      string
	endpoint    string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	MaxTokens   int                     `json:"max_tokens"`
	Temperature float64                 `json:"temperature"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// NewOpenAIClient creates a client for any OpenAI-compatible /chat/completions endpoint
func NewOpenAIClient(cfg config.AIConfig) AIClientInterface {
	return &openAIClient{
		apiKey:      cfg.APIKey,
		endpoint:    cfg.Endpoint,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *openAIClient) Provider() string {
	return config.AIProviderOpenAI
}

func (c *openAIClient) Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage) (string, error) {
	payload := chatCompletionRequest{
		Model:       c.model,
		Messages:    make([]chatCompletionMessage, 0, len(messages)+1),
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	if systemPrompt != "" {
		payload.Messages = append(payload.Messages, chatCompletionMessage{Role: models.ChatRoleSystem, Content: systemPrompt})
	}
	for _, msg := range messages {
		payload.Messages = append(payload.Messages, chatCompletionMessage{Role: msg.Role, Content: msg.Content})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxCompletionResponseBytes)

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrAIUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(limited, 512))
		return "", fmt.Errorf("completion request returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(limited).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", ErrAIEmptyResponse
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
