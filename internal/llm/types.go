package llm

import "context"

type Provider interface {
	// Complete sends a single user prompt to the model and returns its answer
	Complete(ctx context.Context, prompt string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

// WithMaxTokens caps the completion length for one call.
func WithMaxTokens(n int64) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature overrides the sampling temperature for one call.
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = t
	}
}

type Response struct {
	Content string
	Usage   Usage
}
