package types

import (
	"errors"
	"fmt"
)

// ConfigError is fatal: the run cannot proceed without usable
// configuration.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func NewConfigError(path, reason string, err error) *ConfigError {
	return &ConfigError{Path: path, Reason: reason, Err: err}
}

func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// FeedFetchError marks a per-feed failure. The pipeline logs it and
// skips the feed; it only becomes fatal when every feed fails.
type FeedFetchError struct {
	Source string
	URL    string
	Err    error
}

func (e *FeedFetchError) Error() string {
	return fmt.Sprintf("feed %s (%s): %v", e.Source, e.URL, e.Err)
}

func (e *FeedFetchError) Unwrap() error { return e.Err }

func NewFeedFetchError(source, url string, err error) *FeedFetchError {
	return &FeedFetchError{Source: source, URL: url, Err: err}
}

func IsFeedFetchError(err error) bool {
	var fe *FeedFetchError
	return errors.As(err, &fe)
}

// InferenceError marks a failed or unusable model call. The pipeline
// recovers by publishing the digest with no featured stories.
type InferenceError struct {
	Stage string
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference %s: %v", e.Stage, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

func NewInferenceError(stage string, err error) *InferenceError {
	return &InferenceError{Stage: stage, Err: err}
}

func IsInferenceError(err error) bool {
	var ie *InferenceError
	return errors.As(err, &ie)
}

// RenderError is fatal: the output artifact could not be produced.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func NewRenderError(path string, err error) *RenderError {
	return &RenderError{Path: path, Err: err}
}

func IsRenderError(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}
