package llm

import (
	"testing"

	"github.com/tmc/langchaingo/llms"
)

func TestNewOllamaClient_DefaultBaseURL(t *testing.T) {
	client, err := NewOllamaClient("llama3", "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if client.baseURL != defaultOllamaBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, defaultOllamaBaseURL)
	}
}

func TestNewOllamaClient_EmptyModel(t *testing.T) {
	_, err := NewOllamaClient("", "")
	if err == nil {
		t.Fatal("expected error for empty model")
	}

	_, err = NewOllamaClient("   ", "")
	if err == nil {
		t.Fatal("expected error for blank model")
	}
}

func TestChatHistoryRoles(t *testing.T) {
	history := chatHistory([]Message{
		systemMsg("rules"),
		userMsg("notes"),
		assistantMsg("draft"),
		{Role: "tool", Content: "odd"},
	})

	want := []llms.ChatMessageType{
		llms.ChatMessageTypeSystem,
		llms.ChatMessageTypeHuman,
		llms.ChatMessageTypeAI,
		llms.ChatMessageTypeHuman,
	}
	if len(history) != len(want) {
		t.Fatalf("len = %d, want %d", len(history), len(want))
	}
	for i, kind := range want {
		if history[i].Role != kind {
			t.Errorf("message %d role = %q, want %q", i, history[i].Role, kind)
		}
	}
}
