package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gaizette/internal/config"
	"gaizette/internal/curator"
	"gaizette/internal/digest"
	"gaizette/internal/platforms"
	"gaizette/internal/processors/filters"
	"gaizette/internal/render"
	"gaizette/internal/sources"
	"gaizette/internal/targets/feedfile"
	"gaizette/internal/types"
)

// Pipeline is the whole run: load files, fetch, dedupe, filter, sort,
// select featured stories, render. Strictly sequential; per-feed and
// inference failures degrade the output instead of aborting it.
type Pipeline struct {
	cfg      *config.Config
	fetcher  *sources.Fetcher
	curator  *curator.Curator
	renderer *render.Renderer
	now      func() time.Time
}

func NewPipeline(cfg *config.Config) (*Pipeline, error) {
	renderer, err := render.NewRenderer(cfg.Digest.TemplatePath)
	if err != nil {
		return nil, err
	}

	var cur *curator.Curator
	if cfg.Ollama.Enabled {
		llm, err := platforms.NewOllamaPlatform(cfg.Ollama.Host, cfg.Ollama.Model, cfg.Ollama.TimeoutDuration())
		if err != nil {
			return nil, types.NewConfigError("ollama", "invalid inference settings", err)
		}
		cur = curator.New(llm, cfg.Ollama.FeaturedCount, cfg.Ollama.CandidateLimit)
	}

	return &Pipeline{
		cfg:      cfg,
		fetcher:  sources.NewFetcher(cfg.Fetch.TimeoutDuration(), cfg.Fetch.MaxPerFeed),
		curator:  cur,
		renderer: renderer,
		now:      time.Now,
	}, nil
}

// WithClock fixes the generated-at timestamp source.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Run executes one digest build. The returned error is fatal; anything
// recoverable has already been logged and degraded.
func (p *Pipeline) Run(ctx context.Context) error {
	feedList, err := config.LoadFeeds(p.cfg.Files.Feeds)
	if err != nil {
		return err
	}
	topics, err := config.LoadTopics(p.cfg.Files.Topics)
	if err != nil {
		return err
	}
	if topics.Empty() {
		slog.Warn("no topics configured, digest will be empty", "path", p.cfg.Files.Topics)
	}

	var all []*types.Article
	failed := 0
	for _, src := range feedList {
		articles, err := p.fetcher.Fetch(ctx, src)
		if err != nil {
			slog.Warn("skipping feed", "source", src.Name, "error", err)
			failed++
			continue
		}
		all = append(all, articles...)
	}
	if failed == len(feedList) {
		return fmt.Errorf("all %d configured feeds failed", failed)
	}

	all = filters.Dedupe(all)
	matched := filters.NewTopicFilter(topics).Apply(all)
	slog.Info("topic filter applied", "fetched", len(all), "matched", len(matched))

	d := digest.New(p.cfg.Digest.Title, topics, p.now(), matched)

	if p.curator != nil && len(d.Articles) > 0 {
		if err := p.curator.Select(ctx, d.Articles, topics); err != nil {
			slog.Warn("featured selection failed, publishing all stories as regular", "error", err)
		} else if p.cfg.Ollama.Blurbs {
			p.curator.WriteBlurbs(ctx, d.Featured())
		}
	}

	if err := p.renderer.Render(d, p.cfg.Digest.Output); err != nil {
		return err
	}

	if p.cfg.Digest.FeedOutput != "" {
		if err := feedfile.Write(d, p.cfg.Digest.FeedOutput); err != nil {
			return err
		}
	}

	return nil
}
