package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/jmylchreest/tweetprep/internal/logger"
)

// StaticConfig holds configuration for the static fetcher.
type StaticConfig struct {
	UserAgent string
	Timeout   time.Duration
	// MaxBodySize limits the downloaded size in bytes. Zero takes the
	// default limit, a negative value disables it.
	MaxBodySize int
}

const defaultUserAgent = "tweetprep/1.0 (dataset download)"

// DefaultStaticConfig returns sensible defaults.
func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		UserAgent:   defaultUserAgent,
		Timeout:     60 * time.Second,
		MaxBodySize: 64 << 20,
	}
}

// StaticFetcher downloads files with a plain HTTP GET through Colly.
// It implements the Fetcher interface.
type StaticFetcher struct {
	config StaticConfig
}

// NewStatic creates a new static fetcher. Zero fields take their defaults.
func NewStatic(cfg StaticConfig) *StaticFetcher {
	def := DefaultStaticConfig()
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = def.MaxBodySize
	}
	return &StaticFetcher{config: cfg}
}

// Fetch retrieves url. Non-2xx responses and empty bodies are errors.
func (f *StaticFetcher) Fetch(ctx context.Context, url string) (Content, error) {
	logger.Debug("static fetch starting", "url", url)

	result := Content{
		URL:       url,
		FetchedAt: time.Now(),
	}

	c := colly.NewCollector(
		colly.UserAgent(f.config.UserAgent),
		colly.MaxBodySize(max(f.config.MaxBodySize, 0)),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(f.config.Timeout)

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.Body = r.Body
		logger.Debug("static fetch response received",
			"status", r.StatusCode,
			"content_type", result.ContentType,
			"body_size", len(r.Body))
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	if err := c.Visit(url); err != nil {
		if fetchErr != nil {
			return result, fetchErr
		}
		return result, fmt.Errorf("failed to visit URL: %w", err)
	}
	if fetchErr != nil {
		return result, fetchErr
	}
	if len(result.Body) == 0 {
		return result, fmt.Errorf("%s: %w", url, ErrEmptyBody)
	}

	logger.Debug("static fetch complete", "url", url, "bytes", len(result.Body))
	return result, nil
}

// Type returns the fetcher type.
func (f *StaticFetcher) Type() string {
	return "static"
}
