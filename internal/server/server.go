package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/subtexthq/subtext/internal/analyzer"
	"github.com/subtexthq/subtext/internal/config"
)

type Server struct {
	cfg      config.ServerConfig
	server   *http.Server
	analyzer *analyzer.Analyzer
}

func New(cfg config.Config, analyzer *analyzer.Analyzer) *Server {
	s := &Server{
		cfg:      cfg.Server,
		analyzer: analyzer,
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(s.loggingMiddleware)
	router.Use(s.recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.Origins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	router.Get("/health", s.handleHealth)

	// API routes, throttled per client IP
	router.Route("/api", func(r chi.Router) {
		r.Use(httprate.Limit(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Window,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(s.handleThrottled),
		))
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/compare", s.handleCompare)
	})

	router.NotFound(s.handleNotFound)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// Handler exposes the routing tree, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap the response writer to capture the status code
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		slog.Info("HTTP request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
		)
	})
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil && rec != http.ErrAbortHandler {
				slog.Error("panic while handling request",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
				)
				writeError(w, http.StatusInternalServerError, internalErrorMessage)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) Run() error {
	// Create a channel to listen for errors coming from the listener
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("Starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	// Create channel for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("Starting shutdown", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}

// Custom response writer to capture status code
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	return rw.ResponseWriter.Write(b)
}
