package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"gaizette/internal/types"
)

type Config struct {
	Digest DigestConfig `toml:"digest"`
	Files  FilesConfig  `toml:"files"`
	Fetch  FetchConfig  `toml:"fetch"`
	Ollama OllamaConfig `toml:"ollama"`
}

type DigestConfig struct {
	Title        string `toml:"title"`
	Output       string `toml:"output"`
	FeedOutput   string `toml:"feed_output"`
	TemplatePath string `toml:"template"`
}

type FilesConfig struct {
	Feeds  string `toml:"feeds"`
	Topics string `toml:"topics"`
}

type FetchConfig struct {
	Timeout     string `toml:"timeout"`
	MaxPerFeed  int    `toml:"max_per_feed"`
	timeoutSpan time.Duration
}

type OllamaConfig struct {
	Enabled        bool   `toml:"enabled"`
	Host           string `toml:"host"`
	Model          string `toml:"model"`
	Timeout        string `toml:"timeout"`
	FeaturedCount  int    `toml:"featured_count"`
	CandidateLimit int    `toml:"candidate_limit"`
	Blurbs         bool   `toml:"blurbs"`
	timeoutSpan    time.Duration
}

func (f FetchConfig) TimeoutDuration() time.Duration  { return f.timeoutSpan }
func (o OllamaConfig) TimeoutDuration() time.Duration { return o.timeoutSpan }

// Default returns the built-in configuration used when no config.toml
// exists.
func Default() *Config {
	cfg := &Config{
		Digest: DigestConfig{
			Title:  "gAIzette",
			Output: "news.html",
		},
		Files: FilesConfig{
			Feeds:  "feeds.txt",
			Topics: "topics.txt",
		},
		Fetch: FetchConfig{
			Timeout:    "15s",
			MaxPerFeed: 50,
		},
		Ollama: OllamaConfig{
			Enabled:        true,
			Host:           "http://localhost:11434",
			Model:          "gemma3:12b",
			Timeout:        "90s",
			FeaturedCount:  4,
			CandidateLimit: 12,
		},
	}
	// Defaults are always valid.
	if err := validate(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the TOML app config. A missing file is not an error: the
// built-in defaults apply. Anything else wrong with the file is a
// ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, types.NewConfigError(path, "failed to read config file", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, types.NewConfigError(path, "failed to parse config", err)
	}

	if err := validate(cfg); err != nil {
		return nil, types.NewConfigError(path, "invalid config", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Digest.Title == "" {
		cfg.Digest.Title = "gAIzette"
	}
	if cfg.Digest.Output == "" {
		cfg.Digest.Output = "news.html"
	}
	if cfg.Files.Feeds == "" {
		cfg.Files.Feeds = "feeds.txt"
	}
	if cfg.Files.Topics == "" {
		cfg.Files.Topics = "topics.txt"
	}

	if cfg.Fetch.Timeout == "" {
		cfg.Fetch.Timeout = "15s"
	}
	span, err := time.ParseDuration(cfg.Fetch.Timeout)
	if err != nil {
		return fmt.Errorf("invalid fetch timeout: %w", err)
	}
	cfg.Fetch.timeoutSpan = span

	if cfg.Fetch.MaxPerFeed <= 0 {
		cfg.Fetch.MaxPerFeed = 50
	}

	if cfg.Ollama.Host == "" {
		cfg.Ollama.Host = "http://localhost:11434"
	}
	if cfg.Ollama.Model == "" {
		cfg.Ollama.Model = "gemma3:12b"
	}
	if cfg.Ollama.Timeout == "" {
		cfg.Ollama.Timeout = "90s"
	}
	span, err = time.ParseDuration(cfg.Ollama.Timeout)
	if err != nil {
		return fmt.Errorf("invalid ollama timeout: %w", err)
	}
	cfg.Ollama.timeoutSpan = span

	if cfg.Ollama.FeaturedCount <= 0 {
		cfg.Ollama.FeaturedCount = 4
	}
	if cfg.Ollama.CandidateLimit < cfg.Ollama.FeaturedCount {
		cfg.Ollama.CandidateLimit = 3 * cfg.Ollama.FeaturedCount
	}

	return nil
}
