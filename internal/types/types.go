package types

import "time"

// FeedSource is one configured feed: where to fetch it and how to label
// articles that came from it. Immutable once loaded.
type FeedSource struct {
	URL  string
	Name string
}

// Article is one normalized feed entry. Created by the fetcher, never
// mutated afterwards except for the featured fields set by the curator.
type Article struct {
	ID        string
	Title     string
	Link      string
	Summary   string
	Source    string
	Published time.Time

	Featured     bool
	FeaturedRank int
	Blurb        string
}

// HasDate reports whether the entry carried a parseable publication
// date. Undated articles keep the zero time so they sort last.
func (a *Article) HasDate() bool {
	return !a.Published.IsZero()
}

// TopicSet is the ordered list of keywords used to filter articles.
type TopicSet struct {
	Keywords []string
}

func (t TopicSet) Empty() bool {
	return len(t.Keywords) == 0
}
