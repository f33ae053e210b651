package filters

import (
	"crypto/sha256"
	"fmt"
	"log/slog"

	"gaizette/internal/types"
)

// Dedupe drops articles whose canonical link was already seen, so a
// story syndicated by several feeds appears once. Articles without a
// link fall back to the title. First occurrence wins, preserving input
// order.
func Dedupe(articles []*types.Article) []*types.Article {
	seen := make(map[string]bool, len(articles))
	unique := make([]*types.Article, 0, len(articles))

	for _, a := range articles {
		key := a.Link
		if key == "" {
			key = a.Title
		}
		h := fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
		if seen[h] {
			slog.Debug("dropping duplicate article", "title", a.Title, "link", a.Link, "source", a.Source)
			continue
		}
		seen[h] = true
		unique = append(unique, a)
	}

	return unique
}
