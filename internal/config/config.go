package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	AIProvider   string `mapstructure:"ai_provider"` // gemini, openai, ollama
	GeminiKey    string `mapstructure:"gemini_key"`
	OpenAIKey    string `mapstructure:"openai_key"`
	OllamaURL    string `mapstructure:"ollama_url"`
	DefaultModel string `mapstructure:"default_model"`

	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds"`
	ScrapeDelaySeconds  int `mapstructure:"scrape_delay_seconds"`
	WatchIntervalHours  int `mapstructure:"watch_interval_hours"`
}

var AppConfig *Config

// Initialize loads or creates the configuration file
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".jobbi")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	viper.SetDefault("ai_provider", "gemini")
	viper.SetDefault("gemini_key", "")
	viper.SetDefault("openai_key", "")
	viper.SetDefault("ollama_url", "http://localhost:11434")
	viper.SetDefault("default_model", "")
	viper.SetDefault("fetch_timeout_seconds", 15)
	viper.SetDefault("scrape_delay_seconds", 1)
	viper.SetDefault("watch_interval_hours", 6)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# Jobbi Configuration
# AI Provider: gemini, openai, ollama
ai_provider: gemini
default_model: ""
ollama_url: http://localhost:11434

# API Keys (keep this file secure!)
gemini_key: ""
openai_key: ""

# Tuning
fetch_timeout_seconds: 15
scrape_delay_seconds: 1
watch_interval_hours: 6
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".jobbi", "config.yaml")
}

// APIKey returns the key for the configured provider, empty for ollama.
func (c *Config) APIKey() string {
	switch c.AIProvider {
	case "gemini":
		return c.GeminiKey
	case "openai":
		return c.OpenAIKey
	}
	return ""
}
