// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/subtexthq/subtext/internal/analyzer"
	"github.com/subtexthq/subtext/internal/config"
	"github.com/subtexthq/subtext/internal/llm"
	"github.com/subtexthq/subtext/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	provider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	analyzer := analyzer.New(provider)

	srv := server.New(*cfg, analyzer)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
