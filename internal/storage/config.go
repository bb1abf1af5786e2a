// Package storage persists AiNux state under the user's home directory:
// the yaml configuration and the command history log.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ConfigFileName = "config"
	ConfigFileType = "yaml"
	AinuxDirName   = ".ainux"

	// APIKeyEnv is the environment variable checked when the config file
	// carries no key.
	APIKeyEnv = "GEMINI_API_KEY"
)

var config *Config

// Config holds the application configuration.
type Config struct {
	LLM      LLMConfig      `mapstructure:"llm"`
	Executor ExecutorConfig `mapstructure:"executor"`
	History  HistoryConfig  `mapstructure:"history"`
}

// LLMConfig holds the Gemini settings.
type LLMConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	BaseURL         string  `mapstructure:"base_url"`
	Temperature     float64 `mapstructure:"temperature"`
	MaxOutputTokens int     `mapstructure:"max_output_tokens"`
	MaxRetries      int     `mapstructure:"max_retries"`
	Timeout         int     `mapstructure:"timeout"`
	Summarize       bool    `mapstructure:"summarize"`
}

// ExecutorConfig holds command execution settings.
type ExecutorConfig struct {
	Timeout      int    `mapstructure:"timeout"`
	ConfirmToken string `mapstructure:"confirm_token"`
}

// HistoryConfig holds history log settings.
type HistoryConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxRecords int  `mapstructure:"max_records"`
}

// GetConfigDir returns the ainux config directory path.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, AinuxDirName), nil
}

// InitConfig initializes the configuration. Missing config files are fine:
// defaults apply, and the API key falls back to a .env file or the process
// environment.
func InitConfig() (*Config, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	// Create config directory if not exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(configDir)

	// LLM defaults
	v.SetDefault("llm.enabled", true)
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("llm.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.max_output_tokens", 100)
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("llm.timeout", 30)
	v.SetDefault("llm.summarize", false)

	// Executor defaults
	v.SetDefault("executor.timeout", 30)
	v.SetDefault("executor.confirm_token", "YES")

	// History defaults
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.max_records", 200)

	// Read config file (ignore if not exists)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = lookupAPIKey(configDir)
	}

	config = &cfg
	return config, nil
}

// GetConfig returns the loaded config.
func GetConfig() *Config {
	return config
}

// SaveConfig saves the current config to file.
func SaveConfig(cfg *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(configDir)

	v.Set("llm.enabled", cfg.LLM.Enabled)
	v.Set("llm.api_key", cfg.LLM.APIKey)
	v.Set("llm.model", cfg.LLM.Model)
	v.Set("llm.base_url", cfg.LLM.BaseURL)
	v.Set("llm.temperature", cfg.LLM.Temperature)
	v.Set("llm.max_output_tokens", cfg.LLM.MaxOutputTokens)
	v.Set("llm.max_retries", cfg.LLM.MaxRetries)
	v.Set("llm.timeout", cfg.LLM.Timeout)
	v.Set("llm.summarize", cfg.LLM.Summarize)

	v.Set("executor.timeout", cfg.Executor.Timeout)
	v.Set("executor.confirm_token", cfg.Executor.ConfirmToken)

	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.max_records", cfg.History.MaxRecords)

	configPath := filepath.Join(configDir, ConfigFileName+"."+ConfigFileType)
	return v.WriteConfigAs(configPath)
}

// lookupAPIKey checks a .env file next to the config, then the working
// directory, then the process environment.
func lookupAPIKey(configDir string) string {
	for _, path := range []string{filepath.Join(configDir, ".env"), ".env"} {
		if vars, err := godotenv.Read(path); err == nil {
			if key := vars[APIKeyEnv]; key != "" {
				return key
			}
		}
	}
	return os.Getenv(APIKeyEnv)
}
