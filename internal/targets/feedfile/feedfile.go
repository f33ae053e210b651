// Package feedfile exports the digest as an RSS or Atom document, so
// the curated output can itself be consumed by a feed reader.
package feedfile

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gorilla/feeds"

	"gaizette/internal/digest"
	"gaizette/internal/types"
)

// Write serializes the digest to path. The extension picks the format:
// ".atom" emits Atom, anything else RSS 2.0. Featured stories come
// first, in selection order.
func Write(d *digest.Digest, path string) error {
	feed := &feeds.Feed{
		Title:       d.Title,
		Link:        &feeds.Link{Href: "http://localhost/"},
		Description: "Topic-filtered news digest from " + d.Title,
		Created:     d.GeneratedAt,
	}

	for _, a := range d.Featured() {
		feed.Items = append(feed.Items, convertToFeedItem(a))
	}
	for _, a := range d.Regular() {
		feed.Items = append(feed.Items, convertToFeedItem(a))
	}

	var out string
	var err error
	if filepath.Ext(path) == ".atom" {
		out, err = feed.ToAtom()
	} else {
		out, err = feed.ToRss()
	}
	if err != nil {
		return types.NewRenderError(path, err)
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return types.NewRenderError(path, err)
	}

	slog.Info("feed export written", "path", path, "items", len(feed.Items))
	return nil
}

func convertToFeedItem(a *types.Article) *feeds.Item {
	description := a.Summary
	if a.Blurb != "" {
		description = a.Blurb
	}

	return &feeds.Item{
		Id:          a.ID,
		Title:       a.Title,
		Link:        &feeds.Link{Href: a.Link},
		Description: description,
		Author:      &feeds.Author{Name: a.Source},
		Created:     a.Published,
	}
}
