package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultLMStudioBaseURL = "http://localhost:1234/v1"

// LMStudioClient talks to LM Studio's OpenAI-compatible local server.
type LMStudioClient struct {
	client  openai.Client
	model   string
	baseURL string
}

// NewLMStudioClient creates a client for the given model. An empty
// baseURL falls back to the local LM Studio default.
func NewLMStudioClient(model, baseURL string) (*LMStudioClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("lm studio model is required")
	}
	if baseURL == "" {
		baseURL = defaultLMStudioBaseURL
	}

	// LM Studio ignores the key but the SDK requires one.
	apiKey := os.Getenv("LMSTUDIO_API_KEY")
	if apiKey == "" {
		apiKey = "lm-studio"
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &LMStudioClient{client: client, model: model, baseURL: baseURL}, nil
}

// Chat sends the conversation and returns the raw text reply.
func (c *LMStudioClient) Chat(ctx context.Context, messages []Message) (string, error) {
	reply, err := completeChat(ctx, c.client, c.model, messages)
	if err != nil {
		return "", fmt.Errorf("lm studio chat completion: %w", err)
	}
	return reply, nil
}

// ChatJSON sends the conversation and decodes the reply into result.
func (c *LMStudioClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	reply, err := c.Chat(ctx, messages)
	if err != nil {
		return err
	}
	return decodeJSON(reply, result)
}
