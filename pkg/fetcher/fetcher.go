// Package fetcher defines the interface for downloading remote datasets.
package fetcher

import (
	"context"
	"errors"
	"time"
)

// Fetcher abstracts how a remote file is retrieved.
type Fetcher interface {
	// Fetch retrieves the content at url.
	Fetch(ctx context.Context, url string) (Content, error)

	// Type returns a string identifying the fetcher type (e.g., "static").
	Type() string
}

// Content represents a fetched file.
type Content struct {
	URL         string
	Body        []byte
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// ErrEmptyBody indicates the server answered without content.
var ErrEmptyBody = errors.New("empty response body")
