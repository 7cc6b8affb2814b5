package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const defaultOllamaBaseURL = "http://localhost:11434"

// OllamaClient talks to a local Ollama server.
type OllamaClient struct {
	client  *ollama.LLM
	model   string
	baseURL string
}

// NewOllamaClient creates a client for the given model. An empty
// baseURL falls back to the local Ollama default.
func NewOllamaClient(model, baseURL string) (*OllamaClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("ollama model is required")
	}
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	client, err := ollama.New(
		ollama.WithModel(model),
		ollama.WithServerURL(baseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ollama client: %w", err)
	}

	return &OllamaClient{client: client, model: model, baseURL: baseURL}, nil
}

// Chat sends the conversation and returns the raw text reply.
func (c *OllamaClient) Chat(ctx context.Context, messages []Message) (string, error) {
	reply, err := c.generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	return reply, nil
}

// ChatJSON asks the model for a JSON reply and decodes it into result.
func (c *OllamaClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	reply, err := c.generate(ctx, messages, llms.WithJSONMode())
	if err != nil {
		return fmt.Errorf("ollama chat json: %w", err)
	}
	return decodeJSON(reply, result)
}

func (c *OllamaClient) generate(ctx context.Context, messages []Message, extra ...llms.CallOption) (string, error) {
	opts := append([]llms.CallOption{llms.WithModel(c.model)}, extra...)
	resp, err := c.client.GenerateContent(ctx, chatHistory(messages), opts...)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Content, nil
}

// chatHistory converts messages to the langchaingo content form.
// Unknown roles are sent as human turns.
func chatHistory(messages []Message) []llms.MessageContent {
	history := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		kind := llms.ChatMessageTypeHuman
		switch msg.Role {
		case RoleSystem:
			kind = llms.ChatMessageTypeSystem
		case RoleAssistant:
			kind = llms.ChatMessageTypeAI
		}
		history = append(history, llms.TextParts(kind, msg.Content))
	}
	return history
}
