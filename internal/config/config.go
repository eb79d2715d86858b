package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Page sources.
const (
	SourceDir       = "dir"
	SourcePathstore = "pathstore"
)

type Config struct {
	Port string

	// Page source
	PagesSource string
	ContentDir  string

	// Pathstore connection
	PathstoreURL    string
	PathstoreAPIKey string
	PathstorePrefix string

	// Auth
	DocnavAPIKey string

	// Index
	ReloadInterval  time.Duration
	SuppressMissing bool
	StatsWindow     time.Duration

	// Auth token note
	SessionCookie string
	AppURL        string
	DocsURL       string

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		PagesSource: envOr("PAGES_SOURCE", SourceDir),
		ContentDir:  envOr("CONTENT_DIR", "./docs"),

		PathstoreURL:    envOr("PATHSTORE_URL", "http://localhost:8080"),
		PathstoreAPIKey: os.Getenv("PATHSTORE_API_KEY"),
		PathstorePrefix: envOr("PATHSTORE_PREFIX", "docs/pages"),

		DocnavAPIKey: os.Getenv("DOCNAV_API_KEY"),

		ReloadInterval:  envDuration("RELOAD_INTERVAL", 1*time.Minute),
		SuppressMissing: envBool("SUPPRESS_MISSING", false),
		StatsWindow:     envDuration("STATS_WINDOW", 1*time.Hour),

		SessionCookie: envOr("SESSION_COOKIE", "session"),
		AppURL:        envOr("APP_URL", "https://sentry.io"),
		DocsURL:       envOr("DOCS_URL", "https://docs.sentry.io"),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.ReloadInterval < 0 {
		cfg.ReloadInterval = 0
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.PagesSource {
	case SourceDir:
		if c.ContentDir == "" {
			return fmt.Errorf("CONTENT_DIR is required for the dir page source")
		}
	case SourcePathstore:
		if c.PathstoreAPIKey == "" {
			return fmt.Errorf("PATHSTORE_API_KEY is required for the pathstore page source")
		}
	default:
		return fmt.Errorf("PAGES_SOURCE must be %q or %q, got %q", SourceDir, SourcePathstore, c.PagesSource)
	}
	if c.DocnavAPIKey == "" {
		return fmt.Errorf("DOCNAV_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
