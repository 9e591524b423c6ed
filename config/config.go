// Package config loads runtime configuration from a YAML file and the
// environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/fwojciec/edugen"
)

// Provider selects the model backend.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// Config holds the runtime settings shared by all commands.
type Config struct {
	Provider       Provider `mapstructure:"provider"`
	GeminiAPIKey   string   `mapstructure:"gemini_api_key"`
	OpenAIAPIKey   string   `mapstructure:"openai_api_key"`
	Model          string   `mapstructure:"model"`
	EmbeddingModel string   `mapstructure:"embedding_model"`
	OutputDir      string   `mapstructure:"output_dir"`
	TopK           int      `mapstructure:"top_k"`
	PointScale     int      `mapstructure:"point_scale"`
	Verbose        bool     `mapstructure:"verbose"`
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return edugen.Errorf(edugen.EINVALID, "unknown provider %q", c.Provider)
	}
	if c.TopK <= 0 {
		return edugen.Errorf(edugen.EINVALID, "top_k must be positive")
	}
	if c.PointScale < edugen.MinPointScale || c.PointScale > edugen.MaxPointScale {
		return edugen.Errorf(edugen.EINVALID, "point_scale must be between %d and %d", edugen.MinPointScale, edugen.MaxPointScale)
	}
	return nil
}

// Load reads configuration from the given file, or from edugen.yaml in
// the working directory and ~/.config/edugen when the path is empty.
// Environment variables prefixed with EDUGEN_ override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("edugen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "edugen"))
		}
	}

	v.SetEnvPrefix("EDUGEN")
	v.AutomaticEnv()

	v.SetDefault("provider", string(ProviderGemini))
	v.SetDefault("output_dir", "out")
	v.SetDefault("top_k", 4)
	v.SetDefault("point_scale", 4)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, edugen.Errorf(edugen.EINVALID, "read config: %v", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, edugen.Errorf(edugen.EINVALID, "parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
