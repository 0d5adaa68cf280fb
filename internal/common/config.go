package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for ClearText
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	Clients     ClientsConfig  `toml:"clients"`
	Glossary    GlossaryConfig `toml:"glossary"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Gemini    GeminiConfig    `toml:"gemini"`
	Wikipedia WikipediaConfig `toml:"wikipedia"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the per-call timeout
func (c *GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// WikipediaConfig holds encyclopedia lookup configuration
type WikipediaConfig struct {
	BaseURL   string `toml:"base_url"`
	Language  string `toml:"language"`
	UserAgent string `toml:"user_agent"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the HTTP timeout
func (c *WikipediaConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// ResolveBaseURL returns the configured base URL, or the language edition's host.
func (c *WikipediaConfig) ResolveBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	lang := c.Language
	if lang == "" {
		lang = "en"
	}
	return fmt.Sprintf("https://%s.wikipedia.org", lang)
}

// GlossaryConfig holds glossary generation settings
type GlossaryConfig struct {
	MaxDefinitionLength int    `toml:"max_definition_length"`
	LookupTimeout       string `toml:"lookup_timeout"`
}

// GetLookupTimeout parses and returns the per-term lookup timeout
func (c *GlossaryConfig) GetLookupTimeout() time.Duration {
	d, err := time.ParseDuration(c.LookupTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Clients: ClientsConfig{
			Gemini: GeminiConfig{
				Model:   "gemini-2.0-flash",
				Timeout: "60s",
			},
			Wikipedia: WikipediaConfig{
				Language:  "en",
				UserAgent: "ClearText/1.0 (https://github.com/bobmcallan/cleartext)",
				RateLimit: 5,
				Timeout:   "30s",
			},
		},
		Glossary: GlossaryConfig{
			MaxDefinitionLength: 500,
			LookupTimeout:       "10s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// A .env file in the working directory is loaded first when present.
func LoadConfig(paths ...string) (*Config, error) {
	// Missing .env is normal outside development
	_ = godotenv.Load()

	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("CLEARTEXT_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("CLEARTEXT_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("CLEARTEXT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("CLEARTEXT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	for _, name := range []string{"GEMINI_API_KEY", "CLEARTEXT_GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			config.Clients.Gemini.APIKey = v
			break
		}
	}

	if v := os.Getenv("CLEARTEXT_GEMINI_MODEL"); v != "" {
		config.Clients.Gemini.Model = v
	}
	if v := os.Getenv("CLEARTEXT_WIKIPEDIA_LANGUAGE"); v != "" {
		config.Clients.Wikipedia.Language = v
	}
	if v := os.Getenv("CLEARTEXT_WIKIPEDIA_USER_AGENT"); v != "" {
		config.Clients.Wikipedia.UserAgent = v
	}
}

// ValidateRequired returns the names of required settings that are missing.
func (c *Config) ValidateRequired() []string {
	var missing []string
	if strings.TrimSpace(c.Clients.Gemini.APIKey) == "" {
		missing = append(missing, "clients.gemini.api_key (GEMINI_API_KEY)")
	}
	return missing
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// MaskSecret keeps the last four characters of a secret for display.
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
