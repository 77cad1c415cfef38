package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	Host           string        `mapstructure:"host"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type OpenAIConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	APIEndpoint string `mapstructure:"endpoint"`
	Model       string `mapstructure:"model"`
	APIVersion  string `mapstructure:"api_version"`
}

type CORSConfig struct {
	// AllowedOrigins is a comma-separated origin allow-list
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// Origins splits the configured allow-list into individual origins.
func (c CORSConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.request_timeout", "60s")

	v.SetDefault("openai.provider", "openai")
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.endpoint", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.api_version", "2023-05-15")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000")

	v.SetDefault("ratelimit.requests", 50)
	v.SetDefault("ratelimit.window", "15m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
