// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the summarizer server configuration.
type Config struct {
	Server      ServerConfig `mapstructure:"server"`
	LLM         LLMConfig    `mapstructure:"llm"`
	MaxUploadMB int64        `mapstructure:"max_upload_mb"`
	LogFile     string       `mapstructure:"log_file"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LLMConfig holds the external model settings. The API key lives here
// and is handed to the generator explicitly; the core pipeline never
// touches it.
type LLMConfig struct {
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	Temperature     float64 `mapstructure:"temperature"`
	TopP            float64 `mapstructure:"top_p"`
	MaxOutputTokens int64   `mapstructure:"max_output_tokens"`
}

// LoadConfig loads configuration from an optional yaml file plus
// environment overrides (SUMMARIZER_LLM_API_KEY etc., and the plain
// OPENAI_API_KEY for the key itself).
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Set default values
	v.SetDefault("server.port", 8080)
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.top_p", 0.8)
	v.SetDefault("llm.max_output_tokens", 2048)
	v.SetDefault("max_upload_mb", 50)
	v.SetDefault("log_file", "summarizer.log")

	v.SetEnvPrefix("SUMMARIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("llm.api_key", "SUMMARIZER_LLM_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
