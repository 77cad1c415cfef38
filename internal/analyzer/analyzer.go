package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/subtexthq/subtext/apimodels"
	"github.com/subtexthq/subtext/internal/llm"
)

// Per-endpoint completion budgets.
const (
	analyzeMaxTokens int64 = 1000
	compareMaxTokens int64 = 1200
)

type Analyzer struct {
	provider llm.Provider
}

func New(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Analyze runs the single-message pipeline: validate, build the analysis
// prompt, make one model call, extract the confidence label.
func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalyzeRequest) (*apimodels.AnalysisResponse, error) {
	if err := validateMessage(req.Message); err != nil {
		return nil, err
	}

	prompt := buildAnalysisPrompt(req.Message, req.Context)
	return a.complete(ctx, prompt, analyzeMaxTokens)
}

// Compare runs the multi-message pipeline with the comparison prompt.
func (a *Analyzer) Compare(ctx context.Context, req apimodels.CompareRequest) (*apimodels.AnalysisResponse, error) {
	if err := validateMessages(req.Messages); err != nil {
		return nil, err
	}

	prompt := buildComparisonPrompt(req.Messages, req.Context)
	return a.complete(ctx, prompt, compareMaxTokens)
}

func (a *Analyzer) complete(ctx context.Context, prompt string, maxTokens int64) (*apimodels.AnalysisResponse, error) {
	resp, err := a.provider.Complete(ctx, prompt, llm.WithMaxTokens(maxTokens))
	if err != nil {
		return nil, fmt.Errorf("model completion failed: %w", err)
	}

	slog.Debug("model completion finished",
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"total_tokens", resp.Usage.TotalTokens,
	)

	return &apimodels.AnalysisResponse{
		Analysis:        resp.Content,
		ConfidenceLevel: ExtractConfidence(resp.Content),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}, nil
}
