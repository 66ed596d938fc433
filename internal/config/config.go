package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port     int    `yaml:"port"`
		LogLevel string `yaml:"logLevel"`
	} `yaml:"server"`

	OpenAI struct {
		APIKey      string `yaml:"apiKey"`
		BaseURL     string `yaml:"baseURL"`
		TextModel   string `yaml:"textModel"`
		VisionModel string `yaml:"visionModel"`
		// token caps for the description-only and screenshot-aware prompts
		BasicMaxTokens    int `yaml:"basicMaxTokens"`
		ExtendedMaxTokens int `yaml:"extendedMaxTokens"`
	} `yaml:"openai"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 5000
	cfg.Server.LogLevel = "info"
	cfg.OpenAI.BaseURL = "https://api.chatanywhere.tech/v1"
	cfg.OpenAI.TextModel = "gpt-3.5-turbo-ca"
	cfg.OpenAI.VisionModel = "gpt-4o-ca"
	cfg.OpenAI.BasicMaxTokens = 500
	cfg.OpenAI.ExtendedMaxTokens = 1000
	return &cfg
}

// Load reads the optional YAML file at path, then a .env file if present,
// then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// config file is optional
	default:
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	setString(&c.Server.LogLevel, "LOG_LEVEL")
	setString(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")
	setString(&c.OpenAI.TextModel, "OPENAI_TEXT_MODEL")
	setString(&c.OpenAI.VisionModel, "OPENAI_VISION_MODEL")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	if c.OpenAI.TextModel == "" || c.OpenAI.VisionModel == "" {
		return errors.New("openai text and vision models must be set")
	}
	if c.OpenAI.BasicMaxTokens <= 0 || c.OpenAI.ExtendedMaxTokens <= 0 {
		return errors.New("openai token caps must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
