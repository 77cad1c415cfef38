package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtexthq/subtext/apimodels"
	"github.com/subtexthq/subtext/internal/analyzer"
	"github.com/subtexthq/subtext/internal/config"
	"github.com/subtexthq/subtext/internal/llm"
)

type stubProvider struct {
	resp *llm.Response
	err  error

	calls      int
	lastPrompt string
}

func (s *stubProvider) Complete(_ context.Context, prompt string, opts ...llm.Option) (*llm.Response, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newTestServer(stub *stubProvider) *Server {
	cfg := config.Config{
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           "0",
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		CORS:      config.CORSConfig{AllowedOrigins: "*"},
		RateLimit: config.RateLimitConfig{Requests: 100, Window: time.Minute},
	}
	return New(cfg, analyzer.New(stub))
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&stubProvider{})

	rec := doJSON(t, s.Handler(), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body apimodels.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Status)
	assert.NotEmpty(t, body.Timestamp)
}

func TestHandleAnalyze(t *testing.T) {
	stub := &stubProvider{resp: &llm.Response{
		Content: "1. **Overall Tone**: casual\n4. **Confidence Level**: High\n7. **Bottom Line**: low stakes",
	}}
	s := newTestServer(stub)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/analyze",
		`{"message":"hey, you free tonight?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body apimodels.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, stub.resp.Content, body.Analysis)
	assert.Equal(t, "High", body.ConfidenceLevel)
	assert.NotEmpty(t, body.Timestamp)
	assert.Equal(t, 1, stub.calls)
}

func TestHandleAnalyzeValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing message",
			body:    `{}`,
			wantErr: "message is required",
		},
		{
			name:    "message too long",
			body:    fmt.Sprintf(`{"message":%q}`, strings.Repeat("a", 5001)),
			wantErr: "at most 5000 characters",
		},
		{
			name:    "message not a string",
			body:    `{"message":42}`,
			wantErr: "Invalid request body",
		},
		{
			name:    "malformed json",
			body:    `{"message":`,
			wantErr: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubProvider{}
			s := newTestServer(stub)

			rec := doJSON(t, s.Handler(), http.MethodPost, "/api/analyze", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body apimodels.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Error, tt.wantErr)
			assert.Zero(t, stub.calls, "gateway must not be called for invalid input")
		})
	}
}

func TestHandleCompareValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing messages", body: `{}`},
		{name: "one message", body: `{"messages":["hi"]}`},
		{name: "eleven messages", body: `{"messages":["a","a","a","a","a","a","a","a","a","a","a"]}`},
		{name: "empty entry", body: `{"messages":["hi",""]}`},
		{name: "oversized entry", body: fmt.Sprintf(`{"messages":["hi",%q]}`, strings.Repeat("a", 2001))},
		{name: "messages not a sequence", body: `{"messages":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubProvider{}
			s := newTestServer(stub)

			rec := doJSON(t, s.Handler(), http.MethodPost, "/api/compare", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, stub.calls)
		})
	}
}

func TestHandleComparePromptNumbering(t *testing.T) {
	stub := &stubProvider{resp: &llm.Response{Content: "Overall Assessment: fine"}}
	s := newTestServer(stub)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/compare",
		`{"messages":["hi","hi there","sure, see you then"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, stub.lastPrompt, "Message 1: hi\nMessage 2: hi there\nMessage 3: sure, see you then")
	assert.NotContains(t, stub.lastPrompt, "Message 4:")
}

func TestHandleAnalyzeGatewayFailure(t *testing.T) {
	stub := &stubProvider{err: errors.New("api key sk-secret rejected by upstream")}
	s := newTestServer(stub)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/analyze", `{"message":"hello"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body apimodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)
	assert.NotContains(t, rec.Body.String(), "sk-secret", "upstream error detail must not leak")
}

func TestHandleNotFound(t *testing.T) {
	s := newTestServer(&stubProvider{})

	rec := doJSON(t, s.Handler(), http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body apimodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Endpoint not found", body.Error)
}

func TestRateLimit(t *testing.T) {
	stub := &stubProvider{resp: &llm.Response{Content: "Confidence Level: Low"}}
	cfg := config.Config{
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           "0",
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		CORS:      config.CORSConfig{AllowedOrigins: "*"},
		RateLimit: config.RateLimitConfig{Requests: 2, Window: time.Minute},
	}
	s := New(cfg, analyzer.New(stub))

	for i := 0; i < 2; i++ {
		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/analyze", `{"message":"hello"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/analyze", `{"message":"hello"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body apimodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "Too many requests")
}
