package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"avoqado-web/internal/config"
	"avoqado-web/internal/models"

	"google.golang.org/genai"
)

var ErrAIKeyRequired = errors.New("AI API key is required")

type genaiClient struct {
	client      *genai.Client
	model       string
	maxTokens   int32
	temperature float32
}

// NewGenAIClient creates a Gemini completion client
func NewGenAIClient(ctx context.Context, cfg config.AIConfig) (AIClientInterface, error) {
	if cfg.APIKey == "" {
		return nil, ErrAIKeyRequired
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &genaiClient{
		client:      client,
		model:       cfg.Model,
		maxTokens:   int32(cfg.MaxTokens),
		temperature: float32(cfg.Temperature),
	}, nil
}

func (c *genaiClient) Provider() string {
	return config.AIProviderGemini
}

func (c *genaiClient) Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage) (string, error) {
	generateConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: c.maxTokens,
		Temperature:     genai.Ptr(c.temperature),
	}
	if systemPrompt != "" {
		generateConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, toGenAIContents(messages), generateConfig)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrAIEmptyResponse
	}

	return text, nil
}

// toGenAIContents maps chat turns onto Gemini roles; system turns are dropped
// because Gemini takes them as a separate instruction
func toGenAIContents(messages []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case models.ChatRoleUser:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		case models.ChatRoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		}
	}
	return contents
}
