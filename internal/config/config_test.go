package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !strings.HasSuffix(cfg.Files.Todo, "todo.txt") {
		t.Errorf("expected todo file ending in todo.txt, got %s", cfg.Files.Todo)
	}
	if !strings.HasSuffix(cfg.Files.Done, "done.txt") {
		t.Errorf("expected done file ending in done.txt, got %s", cfg.Files.Done)
	}
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("expected provider ollama, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.BaseURL != "http://localhost:11434" {
		t.Errorf("expected base_url http://localhost:11434, got %s", cfg.LLM.BaseURL)
	}
	if cfg.UI.Theme != "squire" {
		t.Errorf("expected theme squire, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("expected default provider, got %s", cfg.LLM.Provider)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[files]
todo = "/tmp/tasks/todo.txt"
done = "/tmp/tasks/done.txt"

[llm]
provider = "lmstudio"
model = "qwen2.5"
base_url = "http://localhost:1234/v1"

[storage]
journal_path = "/tmp/tasks/journal.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Files.Todo != "/tmp/tasks/todo.txt" {
		t.Errorf("expected todo /tmp/tasks/todo.txt, got %s", cfg.Files.Todo)
	}
	if cfg.Files.Done != "/tmp/tasks/done.txt" {
		t.Errorf("expected done /tmp/tasks/done.txt, got %s", cfg.Files.Done)
	}
	if cfg.LLM.Provider != "lmstudio" {
		t.Errorf("expected provider lmstudio, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "qwen2.5" {
		t.Errorf("expected model qwen2.5, got %s", cfg.LLM.Model)
	}
	if cfg.Storage.JournalPath != "/tmp/tasks/journal.db" {
		t.Errorf("expected journal_path /tmp/tasks/journal.db, got %s", cfg.Storage.JournalPath)
	}
	// Sections absent from the file keep their defaults
	if cfg.UI.Theme != "squire" {
		t.Errorf("expected default theme squire, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[files]
todo = "/tmp/file-todo.txt"
done = "/tmp/file-done.txt"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set env vars
	t.Setenv("ROCIN_TODO_FILE", "/tmp/env-todo.txt")
	t.Setenv("ROCIN_LLM_MODEL", "mistral")
	t.Setenv("ROCIN_UI_THEME", "hidalgo")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Files.Todo != "/tmp/env-todo.txt" {
		t.Errorf("expected todo /tmp/env-todo.txt from env, got %s", cfg.Files.Todo)
	}
	// File value should be kept when no env override
	if cfg.Files.Done != "/tmp/file-done.txt" {
		t.Errorf("expected done /tmp/file-done.txt from file, got %s", cfg.Files.Done)
	}
	// Env should override default
	if cfg.LLM.Model != "mistral" {
		t.Errorf("expected model mistral from env, got %s", cfg.LLM.Model)
	}
	if cfg.UI.Theme != "hidalgo" {
		t.Errorf("expected theme hidalgo from env, got %s", cfg.UI.Theme)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "empty todo file",
			mutate: func(c *Config) { c.Files.Todo = "" },
		},
		{
			name:   "empty done file",
			mutate: func(c *Config) { c.Files.Done = "" },
		},
		{
			name: "todo and done collide",
			mutate: func(c *Config) {
				c.Files.Todo = "/tmp/same.txt"
				c.Files.Done = "/tmp/same.txt"
			},
		},
		{
			name:   "empty journal path",
			mutate: func(c *Config) { c.Storage.JournalPath = "" },
		},
		{
			name:   "empty theme",
			mutate: func(c *Config) { c.UI.Theme = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/todo.txt", filepath.Join(home, "todo.txt")},
		{"/absolute/path.txt", "/absolute/path.txt"},
		{"relative/path.txt", "relative/path.txt"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.Files.Todo = "/tmp/roundtrip/todo.txt"
	cfg.Files.Done = "/tmp/roundtrip/done.txt"
	cfg.LLM.Provider = "openai"
	cfg.UI.Theme = "parchment"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Files.Todo != "/tmp/roundtrip/todo.txt" {
		t.Errorf("expected todo /tmp/roundtrip/todo.txt, got %s", loaded.Files.Todo)
	}
	if loaded.LLM.Provider != "openai" {
		t.Errorf("expected provider openai, got %s", loaded.LLM.Provider)
	}
	if loaded.UI.Theme != "parchment" {
		t.Errorf("expected theme parchment, got %s", loaded.UI.Theme)
	}
}
