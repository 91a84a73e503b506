package server

import (
	"time"

	"github.com/mindwell/mindtext/internal/config"
)

// Config holds server configuration settings
type Config struct {
	Host           string        // Server host address
	Port           int           // Server port
	ReadTimeout    time.Duration // HTTP read timeout
	WriteTimeout   time.Duration // HTTP write timeout
	IdleTimeout    time.Duration // HTTP idle timeout
	RequestTimeout time.Duration // Per-request handler deadline
	MaxRequestSize int64         // Maximum request body size in bytes
	MaxTextLength  int           // Longest accepted text, in characters
	EnableCORS     bool          // Enable CORS middleware
	AllowedOrigin  string        // CORS allowed origin
	EnableLogging  bool          // Enable request logging
	LexiconPath    string        // Optional external lexicon for the mental-health analyzer
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return FromConfig(config.Default())
}

// FromConfig maps the loaded application config onto server settings.
func FromConfig(c *config.Config) *Config {
	return &Config{
		Host:           c.Host,
		Port:           c.Port,
		ReadTimeout:    c.ReadTimeout,
		WriteTimeout:   c.WriteTimeout,
		IdleTimeout:    c.IdleTimeout,
		RequestTimeout: c.RequestTimeout,
		MaxRequestSize: c.MaxRequestSize,
		MaxTextLength:  c.MaxTextLength,
		EnableCORS:     c.AllowedOrigin != "",
		AllowedOrigin:  c.AllowedOrigin,
		EnableLogging:  true,
		LexiconPath:    c.LexiconPath,
	}
}
