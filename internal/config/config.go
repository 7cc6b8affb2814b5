// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Files   FilesConfig   `toml:"files"`
	LLM     LLMConfig     `toml:"llm"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// FilesConfig holds the task file locations.
type FilesConfig struct {
	Todo string `toml:"todo"` // active task list
	Done string `toml:"done"` // archive for completed tasks
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider string `toml:"provider"` // "ollama", "openai", "lmstudio"
	Model    string `toml:"model"`    // e.g., "llama3.2"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// StorageConfig holds the completion journal settings.
type StorageConfig struct {
	JournalPath string `toml:"journal_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "squire", "hidalgo", "parchment"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Todo: defaultFilePath("todo.txt"),
			Done: defaultFilePath("done.txt"),
		},
		LLM: LLMConfig{
			Provider: "ollama",
			Model:    "llama3.2",
			BaseURL:  "http://localhost:11434",
		},
		Storage: StorageConfig{
			JournalPath: defaultJournalPath(),
		},
		UI: UIConfig{
			Theme: "squire",
		},
	}
}

// defaultFilePath returns the default location of a task file.
func defaultFilePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, "todo", name)
}

// defaultJournalPath returns the default journal database path.
func defaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "journal.db"
	}
	return filepath.Join(home, ".local", "share", "rocin", "journal.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rocin", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Files.Todo = expandPath(cfg.Files.Todo)
	cfg.Files.Done = expandPath(cfg.Files.Done)
	cfg.Storage.JournalPath = expandPath(cfg.Storage.JournalPath)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	// File overrides
	if v := os.Getenv("ROCIN_TODO_FILE"); v != "" {
		cfg.Files.Todo = v
	}
	if v := os.Getenv("ROCIN_DONE_FILE"); v != "" {
		cfg.Files.Done = v
	}

	// LLM overrides
	if v := os.Getenv("ROCIN_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("ROCIN_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("ROCIN_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	// Storage overrides
	if v := os.Getenv("ROCIN_JOURNAL_PATH"); v != "" {
		cfg.Storage.JournalPath = v
	}

	// UI overrides
	if v := os.Getenv("ROCIN_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Files.Todo == "" {
		return errors.New("files.todo must be set")
	}
	if c.Files.Done == "" {
		return errors.New("files.done must be set")
	}
	if c.Files.Todo == c.Files.Done {
		return errors.New("files.todo and files.done must differ")
	}
	if c.Storage.JournalPath == "" {
		return errors.New("storage.journal_path must be set")
	}
	if c.UI.Theme == "" {
		return errors.New("ui.theme must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
