package curator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"gaizette/internal/types"
)

// Generator is the slice of the model platform the curator needs.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Curator asks the model to pick the most newsworthy subset of the
// freshest filtered articles and marks the winners as featured.
type Curator struct {
	llm            Generator
	featuredCount  int
	candidateLimit int
}

func New(llm Generator, featuredCount, candidateLimit int) *Curator {
	if featuredCount <= 0 {
		featuredCount = 4
	}
	if candidateLimit < featuredCount {
		candidateLimit = 3 * featuredCount
	}
	return &Curator{
		llm:            llm,
		featuredCount:  featuredCount,
		candidateLimit: candidateLimit,
	}
}

// Select marks up to featuredCount articles as featured, recording the
// model's ranking. Articles must already be sorted newest-first; only
// the first candidateLimit are offered to the model. Any failure comes
// back as an InferenceError and leaves the articles untouched, so the
// caller can fall back to an all-regular digest.
func (c *Curator) Select(ctx context.Context, articles []*types.Article, topics types.TopicSet) error {
	if len(articles) == 0 {
		return nil
	}

	candidates := articles
	if len(candidates) > c.candidateLimit {
		candidates = candidates[:c.candidateLimit]
	}

	want := c.featuredCount
	if want > len(candidates) {
		want = len(candidates)
	}

	raw, err := c.llm.Generate(ctx, buildSelectionPrompt(candidates, topics, want))
	if err != nil {
		return types.NewInferenceError("generate", err)
	}

	picks := parseSelection(raw, len(candidates))
	if len(picks) == 0 {
		return types.NewInferenceError("parse", errors.New("no valid story numbers in model response"))
	}
	if len(picks) > want {
		picks = picks[:want]
	}

	for rank, idx := range picks {
		candidates[idx-1].Featured = true
		candidates[idx-1].FeaturedRank = rank + 1
	}

	slog.Info("featured stories selected", "requested", want, "selected", len(picks))
	return nil
}

func buildSelectionPrompt(candidates []*types.Article, topics types.TopicSet, want int) string {
	var sb strings.Builder
	sb.WriteString("You are the front-page editor of a small news digest.\n")
	if !topics.Empty() {
		sb.WriteString("Topics of interest: ")
		sb.WriteString(strings.Join(topics.Keywords, ", "))
		sb.WriteString("\n")
	}
	sb.WriteString("Candidate stories:\n")
	for i, a := range candidates {
		summary := a.Summary
		if len(summary) > 200 {
			summary = summary[:200]
		}
		fmt.Fprintf(&sb, "%d. %s — %s (%s)\n", i+1, a.Title, summary, a.Source)
	}
	fmt.Fprintf(&sb,
		"\nPick the %d most newsworthy stories. Respond with ONLY a JSON array of story numbers, most newsworthy first, for example: [3, 1, 4, 2]\n",
		want)
	return sb.String()
}

// parseSelection pulls story numbers out of the model's response. The
// response is never trusted: numbers outside 1..n and repeats are
// dropped. Prefers the first JSON array in the text (models tend to
// wrap it in prose or code fences); falls back to scanning bare
// integers.
func parseSelection(raw string, n int) []int {
	picks := parseJSONArray(raw)
	if picks == nil {
		picks = parseBareInts(raw)
	}

	seen := make(map[int]bool, len(picks))
	valid := picks[:0]
	for _, p := range picks {
		if p < 1 || p > n || seen[p] {
			slog.Warn("dropping invalid story number from model response", "number", p, "candidates", n)
			continue
		}
		seen[p] = true
		valid = append(valid, p)
	}
	return valid
}

func parseJSONArray(raw string) []int {
	start := strings.IndexByte(raw, '[')
	if start < 0 {
		return nil
	}
	end := strings.IndexByte(raw[start:], ']')
	if end < 0 {
		return nil
	}

	var picks []int
	if err := json.Unmarshal([]byte(raw[start:start+end+1]), &picks); err != nil {
		return nil
	}
	return picks
}

func parseBareInts(raw string) []int {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return !unicode.IsDigit(r)
	})

	picks := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		picks = append(picks, v)
	}
	return picks
}
