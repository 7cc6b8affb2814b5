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

// OpenAIClient talks to the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a client for the given model. The API key is
// read from the OPENAI_API_KEY environment variable; baseURL overrides
// the API endpoint when set.
func NewOpenAIClient(model, baseURL string) (*OpenAIClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("openai model is required")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIClient{client: openai.NewClient(opts...), model: model}, nil
}

// Chat sends the conversation and returns the raw text reply.
func (c *OpenAIClient) Chat(ctx context.Context, messages []Message) (string, error) {
	reply, err := completeChat(ctx, c.client, c.model, messages)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	return reply, nil
}

// ChatJSON sends the conversation and decodes the reply into result.
func (c *OpenAIClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	reply, err := c.Chat(ctx, messages)
	if err != nil {
		return err
	}
	return decodeJSON(reply, result)
}

// completeChat runs one chat completion round against an
// OpenAI-compatible endpoint.
func completeChat(ctx context.Context, client openai.Client, model string, messages []Message) (string, error) {
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    model,
		Messages: openaiHistory(messages),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// openaiHistory converts messages to the openai-go union form.
// Unknown roles are sent as user turns.
func openaiHistory(messages []Message) []openai.ChatCompletionMessageParamUnion {
	history := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			history[i] = openai.SystemMessage(msg.Content)
		case RoleAssistant:
			history[i] = openai.AssistantMessage(msg.Content)
		default:
			history[i] = openai.UserMessage(msg.Content)
		}
	}
	return history
}
