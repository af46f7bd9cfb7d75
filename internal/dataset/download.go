package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/jmylchreest/tweetprep/internal/logger"
	"github.com/jmylchreest/tweetprep/pkg/fetcher"
)

// DefaultURLs are public CSV exports of tweet sentiment datasets.
var DefaultURLs = []string{
	"https://raw.githubusercontent.com/vineetdhanawat/twitter-sentiment-analysis/master/datasets/Sentiment%20Analysis%20Dataset.csv",
	"https://raw.githubusercontent.com/Vasistareddy/sentiment_analysis/master/data/tweet.csv",
}

// TextColumns are the column names recognised as the tweet text.
var TextColumns = []string{"text", "tweet", "SentimentText", "Text"}

// Download acceptance thresholds.
const (
	downloadMaxRows   = 50000
	downloadMinLength = 30
	downloadMinTexts  = 100
)

// ErrNoDataset is returned when no URL produced a usable dataset.
var ErrNoDataset = errors.New("no usable dataset downloaded")

// Download tries each URL in order and returns the texts of the first CSV
// that has a text column and more than 100 texts longer than 30 characters.
// Rows without text are skipped.
func Download(ctx context.Context, f fetcher.Fetcher, urls []string) ([]string, error) {
	var errs []error
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		texts, err := downloadOne(ctx, f, url)
		if err != nil {
			logger.Warn("dataset download failed", "url", url, "error", err)
			errs = append(errs, err)
			continue
		}

		logger.Info("dataset downloaded", "url", url, "texts", len(texts))
		return texts, nil
	}
	if len(errs) == 0 {
		return nil, ErrNoDataset
	}
	return nil, fmt.Errorf("%w: %w", ErrNoDataset, errors.Join(errs...))
}

func downloadOne(ctx context.Context, f fetcher.Fetcher, url string) ([]string, error) {
	content, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	texts, err := Read(bytes.NewReader(content.Body),
		WithColumns(TextColumns...),
		WithSkipInvalid(),
		WithMaxRows(downloadMaxRows),
		WithMinLength(downloadMinLength),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	if len(texts) <= downloadMinTexts {
		return nil, fmt.Errorf("%s: only %d usable texts", url, len(texts))
	}
	return texts, nil
}
