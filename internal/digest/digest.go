package digest

import (
	"sort"
	"time"

	"gaizette/internal/types"
)

// Digest is the final article set in presentation order: the featured
// subset in the model's chosen order, everything else chronologically.
// Every filtered article lands in exactly one of the two sections.
type Digest struct {
	Title       string
	Topics      []string
	GeneratedAt time.Time
	Articles    []*types.Article
}

// SortByRecency stable-sorts articles by publication date, newest
// first. Undated articles carry the zero-time sentinel and therefore
// sort last.
func SortByRecency(articles []*types.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Published.After(articles[j].Published)
	})
}

// Featured returns the curated subset in selection-rank order.
func (d *Digest) Featured() []*types.Article {
	featured := make([]*types.Article, 0)
	for _, a := range d.Articles {
		if a.Featured {
			featured = append(featured, a)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].FeaturedRank < featured[j].FeaturedRank
	})
	return featured
}

// Regular returns the non-featured articles in chronological order.
func (d *Digest) Regular() []*types.Article {
	regular := make([]*types.Article, 0)
	for _, a := range d.Articles {
		if !a.Featured {
			regular = append(regular, a)
		}
	}
	return regular
}

// New assembles a digest from already filtered articles, fixing the
// chronological order of the backing collection.
func New(title string, topics types.TopicSet, generatedAt time.Time, articles []*types.Article) *Digest {
	SortByRecency(articles)
	return &Digest{
		Title:       title,
		Topics:      topics.Keywords,
		GeneratedAt: generatedAt,
		Articles:    articles,
	}
}
