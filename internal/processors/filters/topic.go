package filters

import (
	"strings"

	"golang.org/x/text/cases"

	"gaizette/internal/types"
)

var folder = cases.Fold()

// TopicFilter keeps articles whose title or summary contains at least
// one configured keyword. Matching is Unicode case-insensitive
// substring containment; an empty topic set matches nothing.
type TopicFilter struct {
	folded []string
}

func NewTopicFilter(topics types.TopicSet) *TopicFilter {
	folded := make([]string, 0, len(topics.Keywords))
	for _, kw := range topics.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		folded = append(folded, folder.String(kw))
	}
	return &TopicFilter{folded: folded}
}

func (t *TopicFilter) Matches(a *types.Article) bool {
	if len(t.folded) == 0 {
		return false
	}
	text := folder.String(a.Title + " " + a.Summary)
	for _, kw := range t.folded {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Apply returns the articles that match, preserving input order.
func (t *TopicFilter) Apply(articles []*types.Article) []*types.Article {
	matched := make([]*types.Article, 0, len(articles))
	for _, a := range articles {
		if t.Matches(a) {
			matched = append(matched, a)
		}
	}
	return matched
}
