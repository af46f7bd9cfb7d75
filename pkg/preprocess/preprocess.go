// Package preprocess runs a cleaner and a feature extractor over batches of
// raw messages and times each batch.
package preprocess

import (
	"errors"
	"fmt"
	"time"

	"github.com/jmylchreest/tweetprep/internal/logger"
	"github.com/jmylchreest/tweetprep/pkg/cleaner"
	"github.com/jmylchreest/tweetprep/pkg/features"
	"github.com/jmylchreest/tweetprep/pkg/lexicon"
)

// Variant names.
const (
	VariantBaseline  = "baseline"
	VariantOptimized = "optimized"
)

var (
	// ErrInvalidInputKind is returned when a text value is missing (a null or
	// absent cell) where a string is required.
	ErrInvalidInputKind = errors.New("invalid input kind: text value is missing")

	// ErrUnknownVariant is returned by NewVariant for an unrecognized name.
	ErrUnknownVariant = errors.New("unknown variant")
)

// Record is the result of processing one raw text. Records are created once
// and never modified.
type Record struct {
	Original string              `json:"original" yaml:"original"`
	Cleaned  string              `json:"cleaned" yaml:"cleaned"`
	Features features.FeatureSet `json:"features" yaml:"features"`
}

// Pipeline applies a cleaner then an extractor to every text of a batch.
// A Pipeline holds no mutable state; it is safe to share when its cleaner
// and extractor are.
type Pipeline struct {
	cleaner   cleaner.Cleaner
	extractor features.Extractor
}

// New creates a pipeline from any cleaner and extractor.
func New(c cleaner.Cleaner, e features.Extractor) *Pipeline {
	return &Pipeline{cleaner: c, extractor: e}
}

// NewBaseline creates the unoptimized pipeline.
func NewBaseline(lex *lexicon.Lexicon) *Pipeline {
	return New(cleaner.NewBaseline(), features.NewBaseline(lex))
}

// NewOptimized creates the optimized pipeline. Both arguments may be shared
// with other pipelines; nil values are replaced by defaults.
func NewOptimized(lex *lexicon.Lexicon, p *cleaner.Patterns) *Pipeline {
	return New(cleaner.NewOptimized(p), features.NewOptimized(lex))
}

// NewVariant creates the named variant. Pre-stages, if any, run before the
// variant's cleaner.
func NewVariant(name string, lex *lexicon.Lexicon, p *cleaner.Patterns, prestages ...cleaner.Cleaner) (*Pipeline, error) {
	if name != VariantBaseline && name != VariantOptimized {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}

	// A variant pairs the cleaner and extractor of the same name.
	c, err := cleaner.New(name, p)
	if err != nil {
		return nil, err
	}
	e, err := features.New(name, lex)
	if err != nil {
		return nil, err
	}

	if len(prestages) > 0 {
		stages := append(append([]cleaner.Cleaner{}, prestages...), c)
		c = cleaner.NewChain(stages...)
	}
	return New(c, e), nil
}

// Cleaner returns the pipeline's cleaner.
func (p *Pipeline) Cleaner() cleaner.Cleaner {
	return p.cleaner
}

// Extractor returns the pipeline's extractor.
func (p *Pipeline) Extractor() features.Extractor {
	return p.extractor
}

// Name identifies the cleaner and extractor pair.
func (p *Pipeline) Name() string {
	return p.cleaner.Name() + "+" + p.extractor.Name()
}

// Process cleans one text and extracts its features.
func (p *Pipeline) Process(text string) (Record, error) {
	cleaned, err := p.cleaner.Clean(text)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Original: text,
		Cleaned:  cleaned,
		Features: p.extractor.Extract(cleaned),
	}, nil
}

// ProcessBatch processes texts in order and returns one record per text
// with the wall-clock duration of the whole batch. A failing text aborts
// the batch.
func (p *Pipeline) ProcessBatch(texts []string) ([]Record, time.Duration, error) {
	records := make([]Record, 0, len(texts))

	start := time.Now()
	for i, text := range texts {
		rec, err := p.Process(text)
		if err != nil {
			return nil, time.Since(start), fmt.Errorf("text %d: %w", i, err)
		}
		records = append(records, rec)
	}
	elapsed := time.Since(start)

	logger.Debug("batch processed",
		"pipeline", p.Name(),
		"texts", len(texts),
		"elapsed", elapsed)

	return records, elapsed, nil
}
