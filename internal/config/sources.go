package config

import (
	"bufio"
	"net/url"
	"os"
	"strings"

	"gaizette/internal/types"
)

// LoadFeeds reads the line-oriented feed list. Each line is
// "URL | Display Name"; the name is optional. Blank lines and lines
// starting with '#' are skipped. Lines are not validated beyond that:
// an unusable URL surfaces later as a per-feed fetch failure and the
// run carries on with the remaining feeds.
func LoadFeeds(path string) ([]types.FeedSource, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	feeds := make([]types.FeedSource, 0, len(lines))
	for _, line := range lines {
		rawURL, name, _ := strings.Cut(line, "|")
		rawURL = strings.TrimSpace(rawURL)
		name = strings.TrimSpace(name)

		if name == "" {
			if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
				name = u.Host
			} else {
				name = rawURL
			}
		}

		feeds = append(feeds, types.FeedSource{URL: rawURL, Name: name})
	}

	if len(feeds) == 0 {
		return nil, types.NewConfigError(path, "no feeds configured", nil)
	}

	return feeds, nil
}

// LoadTopics reads the line-oriented topic keyword list. An empty file
// yields an empty TopicSet: the run proceeds and simply matches
// nothing.
func LoadTopics(path string) (types.TopicSet, error) {
	lines, err := readLines(path)
	if err != nil {
		return types.TopicSet{}, err
	}
	return types.TopicSet{Keywords: lines}, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.NewConfigError(path, "failed to open file", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, types.NewConfigError(path, "failed to read file", err)
	}
	return lines, nil
}
