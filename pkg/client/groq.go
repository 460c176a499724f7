package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const groqModel = "llama-3.1-8b-instant"

// GroqClient calls the Groq OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	*BaseClient
	baseURL string
	apiKey  string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewGroqClient(baseURL, apiKey string, config ClientConfig, logger *zap.Logger) *GroqClient {
	return &GroqClient{
		BaseClient: NewBaseClient("groq", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Complete sends one user prompt and returns the model's reply text.
func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatCompletionRequest{
		Model:       groqModel,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	data, err := c.PostJSONWithRetry(ctx, c.baseURL+"/chat/completions", payload, headers)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return "", fmt.Errorf("failed to parse completion response: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
