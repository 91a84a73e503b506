package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/subosito/gotenv"
)

// Prefix is prepended to every environment variable the service reads.
const Prefix = "MINDTEXT_"

// Config holds runtime settings for the CLI and the HTTP server.
type Config struct {
	Env            string
	Host           string
	Port           int
	LogLevel       string
	MaxTextLength  int   // Longest accepted input, in characters
	MaxRequestSize int64 // Request body limit in bytes
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
	AllowedOrigin  string
	LexiconPath    string // Optional external lexicon merged into the wellness lexicon
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Env:            "development",
		Host:           "localhost",
		Port:           8080,
		LogLevel:       "info",
		MaxTextLength:  1000,
		MaxRequestSize: 1 << 20,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		RequestTimeout: 10 * time.Second,
		AllowedOrigin:  "*",
	}
}

// EnvFile returns the dotenv path for an environment name.
func EnvFile(env string) string {
	return "config/envs/.env." + env
}

// Load reads the dotenv file for env and overlays MINDTEXT_* variables on
// the defaults. Variables already set in the process win over the file. A
// missing file is not an error.
func Load(env string) (*Config, error) {
	cfg, err := LoadFile(EnvFile(env))
	if err != nil {
		return nil, err
	}
	cfg.Env = env
	return cfg, nil
}

// LoadFile is Load with an explicit dotenv path.
func LoadFile(path string) (*Config, error) {
	fileEnv, err := gotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		slog.Warn("[Config] No .env file found, using OS environment", slog.String("path", path))
		fileEnv = gotenv.Env{}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(Prefix + key); ok {
			return v, true
		}
		v, ok := fileEnv[Prefix+key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.apply(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"ENV":            &c.Env,
		"HOST":           &c.Host,
		"LOG_LEVEL":      &c.LogLevel,
		"ALLOWED_ORIGIN": &c.AllowedOrigin,
		"LEXICON_PATH":   &c.LexiconPath,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"PORT":            &c.Port,
		"MAX_TEXT_LENGTH": &c.MaxTextLength,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", Prefix, key, err)
			}
			*dst = n
		}
	}

	if v, ok := lookup("MAX_REQUEST_SIZE"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sMAX_REQUEST_SIZE: %w", Prefix, err)
		}
		c.MaxRequestSize = n
	}

	durations := map[string]*time.Duration{
		"READ_TIMEOUT":    &c.ReadTimeout,
		"WRITE_TIMEOUT":   &c.WriteTimeout,
		"IDLE_TIMEOUT":    &c.IdleTimeout,
		"REQUEST_TIMEOUT": &c.RequestTimeout,
	}
	for key, dst := range durations {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", Prefix, key, err)
			}
			*dst = d
		}
	}

	return c.Validate()
}

// Validate reports settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.MaxTextLength <= 0 {
		return fmt.Errorf("max text length must be positive, got %d", c.MaxTextLength)
	}
	if c.MaxRequestSize <= 0 {
		return fmt.Errorf("max request size must be positive, got %d", c.MaxRequestSize)
	}
	return nil
}
