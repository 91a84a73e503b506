package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mindwell/mindtext"
)

// Server is the HTTP front end for the text analyzers
type Server struct {
	config       *Config
	router       *chi.Mux
	httpSrv      *http.Server
	startTime    time.Time
	sentiment    *mindtext.SentimentAnalyzer
	mentalHealth *mindtext.MentalHealthAnalyzer
}

// New creates a new HTTP server instance
func New(config *Config) (*Server, error) {
	if config.MaxTextLength <= 0 {
		return nil, fmt.Errorf("max text length must be positive, got %d", config.MaxTextLength)
	}

	mhOpts := []mindtext.AnalyzerOption{}
	if config.LexiconPath != "" {
		lex, err := mindtext.LoadExternalLexicon(mindtext.WellnessLexicon(), config.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
		slog.Info("[Server] External lexicon loaded",
			slog.String("path", config.LexiconPath),
			slog.Int("words", lex.Size()))
		mhOpts = append(mhOpts, mindtext.UsingLexicon(lex))
	}

	srv := &Server{
		config:       config,
		router:       chi.NewRouter(),
		startTime:    time.Now(),
		sentiment:    mindtext.NewSentimentAnalyzer(),
		mentalHealth: mindtext.NewMentalHealthAnalyzer(mhOpts...),
	}

	srv.setupMiddleware()
	srv.setupRoutes()

	srv.httpSrv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      srv.router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures HTTP middleware stack
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	if s.config.EnableLogging {
		s.router.Use(requestLogger)
	}

	if s.config.EnableCORS {
		s.router.Use(s.corsMiddleware)
	}

	s.router.Use(s.requestSizeLimitMiddleware)

	if s.config.RequestTimeout > 0 {
		s.router.Use(middleware.Timeout(s.config.RequestTimeout))
	}
}

// setupRoutes configures HTTP routes
func (s *Server) setupRoutes() {
	s.router.Get("/_health", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SetHeader("Content-Type", "application/json"))

		r.Post("/language", s.handleLanguage)
		r.Post("/sentiment", s.handleSentiment)
		r.Post("/sentiment/sentences", s.handleSentences)
		r.Post("/mental-health", s.handleMentalHealth)

		r.Post("/word-frequency", s.handleWordFrequency)
		r.Get("/word-frequency/{polarity}", s.handleReviewWordFrequency)

		r.Route("/dataset", func(r chi.Router) {
			r.Get("/overview", s.handleDatasetOverview)
			r.Get("/categories", s.handleCategoryDistribution)
			r.Get("/languages", s.handleLanguageDistribution)
		})

		r.Get("/crisis-resources/{lang}", s.handleCrisisResources)
		r.Get("/model/accuracy", s.handleModelAccuracy)
	})
}

// requestLogger logs one line per request through the default slog logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		slog.Info("[Server] Request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// corsMiddleware handles CORS headers
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.config.AllowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestSizeLimitMiddleware limits request body size
func (s *Server) requestSizeLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)
		next.ServeHTTP(w, r)
	})
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	slog.Info("[Server] Starting",
		slog.String("addr", s.httpSrv.Addr),
		slog.Int("max_text_length", s.config.MaxTextLength))

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		slog.Info("[Server] Shutdown requested")
		return s.Shutdown()
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("[Server] Shutdown complete", slog.Duration("uptime", time.Since(s.startTime)))
	return nil
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("[Server] Encoding JSON response", slog.Any("error", err))
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	writeJSON(w, statusCode, map[string]any{
		"ok":      false,
		"error":   errorType,
		"message": message,
		"code":    statusCode,
	})
}

// writeSuccess writes a success response
func writeSuccess(w http.ResponseWriter, result any) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"result": result,
	})
}
