package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gaizette/internal/types"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should fall back to defaults, got error: %v", err)
	}
	if cfg.Digest.Title != "gAIzette" {
		t.Errorf("default title = %q, want gAIzette", cfg.Digest.Title)
	}
	if cfg.Digest.Output != "news.html" {
		t.Errorf("default output = %q, want news.html", cfg.Digest.Output)
	}
	if cfg.Ollama.FeaturedCount != 4 {
		t.Errorf("default featured_count = %d, want 4", cfg.Ollama.FeaturedCount)
	}
	if cfg.Fetch.TimeoutDuration() != 15*time.Second {
		t.Errorf("default fetch timeout = %v, want 15s", cfg.Fetch.TimeoutDuration())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[digest]
title = "Morning Wire"
output = "out/wire.html"
feed_output = "out/wire.xml"

[fetch]
timeout = "5s"
max_per_feed = 10

[ollama]
host = "http://127.0.0.1:9999"
model = "llama3"
featured_count = 2
candidate_limit = 6
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Digest.Title != "Morning Wire" {
		t.Errorf("title = %q", cfg.Digest.Title)
	}
	if cfg.Digest.FeedOutput != "out/wire.xml" {
		t.Errorf("feed_output = %q", cfg.Digest.FeedOutput)
	}
	if cfg.Fetch.MaxPerFeed != 10 {
		t.Errorf("max_per_feed = %d", cfg.Fetch.MaxPerFeed)
	}
	if cfg.Ollama.Model != "llama3" {
		t.Errorf("model = %q", cfg.Ollama.Model)
	}
	if cfg.Fetch.TimeoutDuration() != 5*time.Second {
		t.Errorf("fetch timeout = %v", cfg.Fetch.TimeoutDuration())
	}
	// Settings not mentioned in the file keep their defaults.
	if cfg.Files.Feeds != "feeds.txt" {
		t.Errorf("feeds path = %q, want default", cfg.Files.Feeds)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[fetch]\ntimeout = \"soon\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
	if !types.IsConfigError(err) {
		t.Errorf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[digest\ntitle ="), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !types.IsConfigError(err) {
		t.Errorf("expected ConfigError, got %v", err)
	}
}

func TestCandidateLimitNeverBelowFeaturedCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ollama]\nfeatured_count = 5\ncandidate_limit = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ollama.CandidateLimit < cfg.Ollama.FeaturedCount {
		t.Errorf("candidate_limit %d < featured_count %d", cfg.Ollama.CandidateLimit, cfg.Ollama.FeaturedCount)
	}
}
