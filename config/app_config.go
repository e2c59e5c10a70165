// Package config — AI provider and dataset configuration.
//
// Settings are stored in ~/.nessie/config.json alongside connection
// profiles. API keys can also be set via environment variables
// (OPENAI_API_KEY, ANTHROPIC_API_KEY, ...). A .env file in the working
// directory is honored for development setups.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// AIConfig holds the AI provider selection and credentials.
type AIConfig struct {
	Provider  string          `json:"provider"` // "openai", "anthropic", "gemini", "ollama", "warehouse", "placeholder"
	OpenAI    OpenAIConfig    `json:"openai"`
	Anthropic AnthropicConfig `json:"anthropic"`
	Gemini    GeminiConfig    `json:"gemini"`
	Ollama    OllamaConfig    `json:"ollama"`
	Warehouse WarehouseConfig `json:"warehouse"`
}

// OpenAIConfig holds OpenAI-specific settings.
type OpenAIConfig struct {
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model"`
}

// AnthropicConfig holds Anthropic-specific settings.
type AnthropicConfig struct {
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model"`
}

// GeminiConfig holds Google Gemini-specific settings.
type GeminiConfig struct {
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model"`
}

// OllamaConfig holds Ollama-specific settings.
type OllamaConfig struct {
	Host  string `json:"host"`
	Model string `json:"model"`
}

// WarehouseConfig holds settings for the in-warehouse completion
// function (the model is invoked through a SQL call on the same
// session that runs the generated queries).
type WarehouseConfig struct {
	Function string `json:"function"` // e.g. "ai.complete"
	Model    string `json:"model"`
}

// TableConfig describes the dataset the assistant is grounded on.
type TableConfig struct {
	// QualifiedName is the three-part catalog.schema.table identifier.
	QualifiedName string `json:"qualified_name"`

	// Description is free text injected into the schema context.
	Description string `json:"description"`

	// MetadataQuery optionally returns (variable_name, definition)
	// pairs appended to the schema context. Empty means none.
	MetadataQuery string `json:"metadata_query,omitempty"`
}

// AppConfig is the top-level config file structure (~/.nessie/config.json).
type AppConfig struct {
	AI    AIConfig    `json:"ai"`
	Table TableConfig `json:"table"`
}

// DefaultAIConfig returns sensible defaults.
func DefaultAIConfig() AIConfig {
	return AIConfig{
		Provider: "placeholder",
		OpenAI: OpenAIConfig{
			Model: "gpt-4o",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet-4-20250514",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		Ollama: OllamaConfig{
			Host:  "http://localhost:11434",
			Model: "llama3.2",
		},
		Warehouse: WarehouseConfig{
			Function: "ai.complete",
			Model:    "llama3-70b",
		},
	}
}

// DefaultTableConfig points at the loss-run dataset.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		QualifiedName: "dw_lakehouse.loss_run.claim_facts",
		Description: "Loss run insurance data. Loss run data is used in the insurance " +
			"industry to track claims history over a certain period. It includes details " +
			"about each claim, such as the date of the incident, claim amount, status, " +
			"and other relevant information.",
	}
}

// LoadAppConfig reads ~/.nessie/config.json; returns defaults if not found.
func LoadAppConfig() (*AppConfig, error) {
	// Development convenience, same as the server-side tooling.
	_ = godotenv.Load()

	cfg := defaultAppConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	path := filepath.Join(homeDir, ".nessie", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv lets env vars override file config.
func applyEnv(cfg *AppConfig) {
	if envKey := os.Getenv("OPENAI_API_KEY"); envKey != "" {
		cfg.AI.OpenAI.APIKey = envKey
	}
	if envKey := os.Getenv("ANTHROPIC_API_KEY"); envKey != "" {
		cfg.AI.Anthropic.APIKey = envKey
	}
	if envKey := os.Getenv("GEMINI_API_KEY"); envKey != "" {
		cfg.AI.Gemini.APIKey = envKey
	}
	if envHost := os.Getenv("OLLAMA_HOST"); envHost != "" {
		cfg.AI.Ollama.Host = envHost
	}
	if envTable := os.Getenv("NESSIE_TABLE"); envTable != "" {
		cfg.Table.QualifiedName = envTable
	}
	if envProvider := os.Getenv("NESSIE_AI_PROVIDER"); envProvider != "" {
		cfg.AI.Provider = envProvider
	}
}

// SaveAppConfig writes the config to ~/.nessie/config.json.
func SaveAppConfig(cfg *AppConfig) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	dir := filepath.Join(homeDir, ".nessie")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0600)
}

func defaultAppConfig() *AppConfig {
	return &AppConfig{
		AI:    DefaultAIConfig(),
		Table: DefaultTableConfig(),
	}
}
