package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "PAGES_SOURCE", "CONTENT_DIR", "RELOAD_INTERVAL", "SESSION_COOKIE", "STATS_WINDOW"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("expected port 8090, got %q", cfg.Port)
	}
	if cfg.PagesSource != SourceDir {
		t.Errorf("expected dir source, got %q", cfg.PagesSource)
	}
	if cfg.ReloadInterval != time.Minute {
		t.Errorf("expected 1m reload interval, got %v", cfg.ReloadInterval)
	}
	if cfg.SessionCookie != "session" {
		t.Errorf("expected session cookie name, got %q", cfg.SessionCookie)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PAGES_SOURCE", "pathstore")
	t.Setenv("RELOAD_INTERVAL", "-5s")
	t.Setenv("SUPPRESS_MISSING", "true")
	t.Setenv("STATS_WINDOW", "not-a-duration")

	cfg := Load()
	if cfg.PagesSource != SourcePathstore {
		t.Errorf("expected pathstore source, got %q", cfg.PagesSource)
	}
	if cfg.ReloadInterval != 0 {
		t.Errorf("expected negative interval to disable reloads, got %v", cfg.ReloadInterval)
	}
	if !cfg.SuppressMissing {
		t.Error("expected SuppressMissing")
	}
	if cfg.StatsWindow != time.Hour {
		t.Errorf("expected fallback stats window, got %v", cfg.StatsWindow)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"dir ok", Config{PagesSource: SourceDir, ContentDir: "docs", DocnavAPIKey: "k"}, ""},
		{"dir missing", Config{PagesSource: SourceDir, DocnavAPIKey: "k"}, "CONTENT_DIR"},
		{"pathstore ok", Config{PagesSource: SourcePathstore, PathstoreAPIKey: "p", DocnavAPIKey: "k"}, ""},
		{"pathstore no key", Config{PagesSource: SourcePathstore, DocnavAPIKey: "k"}, "PATHSTORE_API_KEY"},
		{"unknown source", Config{PagesSource: "s3", DocnavAPIKey: "k"}, "PAGES_SOURCE"},
		{"no api key", Config{PagesSource: SourceDir, ContentDir: "docs"}, "DOCNAV_API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}
