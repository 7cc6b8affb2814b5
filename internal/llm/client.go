// Package llm provides interfaces and implementations for LLM-assisted
// task capture and prioritization.
package llm

import "context"

// Role identifies the author of a chat message.
type Role string

// Chat roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a chat exchange.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func systemMsg(content string) Message    { return Message{Role: RoleSystem, Content: content} }
func userMsg(content string) Message      { return Message{Role: RoleUser, Content: content} }
func assistantMsg(content string) Message { return Message{Role: RoleAssistant, Content: content} }

// Client is a chat-capable LLM provider.
type Client interface {
	// Chat sends the conversation and returns the raw text reply.
	Chat(ctx context.Context, messages []Message) (string, error)

	// ChatJSON sends the conversation and decodes the reply as JSON
	// into result, tolerating markdown fences around the payload.
	ChatJSON(ctx context.Context, messages []Message, result any) error
}
