package curator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gaizette/internal/types"
)

type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func candidates(n int) []*types.Article {
	arts := make([]*types.Article, n)
	for i := range arts {
		arts[i] = &types.Article{
			Title:     "story",
			Published: time.Date(2025, 5, n-i, 0, 0, 0, 0, time.UTC),
		}
	}
	return arts
}

func TestSelectMarksFeaturedInModelOrder(t *testing.T) {
	llm := &fakeGenerator{response: "[3, 1]"}
	c := New(llm, 2, 10)

	arts := candidates(5)
	if err := c.Select(context.Background(), arts, types.TopicSet{Keywords: []string{"ai"}}); err != nil {
		t.Fatalf("Select: %v", err)
	}

	if !arts[2].Featured || arts[2].FeaturedRank != 1 {
		t.Errorf("story 3 should be featured rank 1, got featured=%v rank=%d", arts[2].Featured, arts[2].FeaturedRank)
	}
	if !arts[0].Featured || arts[0].FeaturedRank != 2 {
		t.Errorf("story 1 should be featured rank 2, got featured=%v rank=%d", arts[0].Featured, arts[0].FeaturedRank)
	}
	for _, i := range []int{1, 3, 4} {
		if arts[i].Featured {
			t.Errorf("story %d should not be featured", i+1)
		}
	}
}

func TestSelectParsesWrappedResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []int // expected featured indices (0-based)
	}{
		{"code fence", "```json\n[2, 4]\n```", []int{1, 3}},
		{"prose around array", "Sure! The most newsworthy are: [1, 2] — enjoy.", []int{0, 1}},
		{"bare numbers", "I pick stories 2 and 3.", []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&fakeGenerator{response: tt.response}, 2, 10)
			arts := candidates(5)
			if err := c.Select(context.Background(), arts, types.TopicSet{}); err != nil {
				t.Fatalf("Select: %v", err)
			}
			for i, a := range arts {
				wantFeatured := false
				for _, w := range tt.want {
					if w == i {
						wantFeatured = true
					}
				}
				if a.Featured != wantFeatured {
					t.Errorf("story %d featured = %v, want %v", i+1, a.Featured, wantFeatured)
				}
			}
		})
	}
}

func TestSelectDropsInvalidNumbers(t *testing.T) {
	// 99 and 0 are out of range, 2 repeats; only 2 and 1 survive.
	c := New(&fakeGenerator{response: "[99, 2, 0, 2, 1]"}, 4, 10)
	arts := candidates(3)
	if err := c.Select(context.Background(), arts, types.TopicSet{}); err != nil {
		t.Fatalf("Select: %v", err)
	}

	if !arts[1].Featured || arts[1].FeaturedRank != 1 {
		t.Errorf("story 2 should be rank 1, got %+v", arts[1])
	}
	if !arts[0].Featured || arts[0].FeaturedRank != 2 {
		t.Errorf("story 1 should be rank 2, got %+v", arts[0])
	}
	if arts[2].Featured {
		t.Error("story 3 was never selected")
	}
}

func TestSelectCapsAtFeaturedCount(t *testing.T) {
	c := New(&fakeGenerator{response: "[1, 2, 3, 4, 5]"}, 2, 10)
	arts := candidates(5)
	if err := c.Select(context.Background(), arts, types.TopicSet{}); err != nil {
		t.Fatalf("Select: %v", err)
	}

	featured := 0
	for _, a := range arts {
		if a.Featured {
			featured++
		}
	}
	if featured != 2 {
		t.Errorf("featured %d stories, want cap of 2", featured)
	}
}

func TestSelectOnlyOffersCandidateLimit(t *testing.T) {
	llm := &fakeGenerator{response: "[1]"}
	c := New(llm, 1, 3)
	arts := candidates(10)
	if err := c.Select(context.Background(), arts, types.TopicSet{}); err != nil {
		t.Fatalf("Select: %v", err)
	}

	// The prompt should number exactly 3 candidates.
	if !strings.Contains(llm.prompt, "3. ") {
		t.Errorf("prompt should include candidate 3:\n%s", llm.prompt)
	}
	if strings.Contains(llm.prompt, "4. ") {
		t.Errorf("prompt should not include candidate 4:\n%s", llm.prompt)
	}
}

func TestSelectGeneratorFailure(t *testing.T) {
	c := New(&fakeGenerator{err: errors.New("connection refused")}, 4, 10)
	arts := candidates(3)
	err := c.Select(context.Background(), arts, types.TopicSet{})
	if !types.IsInferenceError(err) {
		t.Fatalf("expected InferenceError, got %v", err)
	}
	for i, a := range arts {
		if a.Featured {
			t.Errorf("story %d marked featured after failed selection", i+1)
		}
	}
}

func TestSelectUnparseableResponse(t *testing.T) {
	c := New(&fakeGenerator{response: "I cannot help with that."}, 4, 10)
	err := c.Select(context.Background(), candidates(3), types.TopicSet{})
	if !types.IsInferenceError(err) {
		t.Fatalf("expected InferenceError for unparseable response, got %v", err)
	}
}

func TestSelectEmptyInput(t *testing.T) {
	c := New(&fakeGenerator{response: "[1]"}, 4, 10)
	if err := c.Select(context.Background(), nil, types.TopicSet{}); err != nil {
		t.Errorf("empty input should be a no-op, got %v", err)
	}
}
