// Package features computes simple lexical features of cleaned text.
package features

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/tweetprep/pkg/lexicon"
)

// FeatureSet holds the features of one cleaned text.
// When WordCount is zero every other field is zero as well.
type FeatureSet struct {
	WordCount     int     `json:"word_count" yaml:"word_count" validate:"gte=0"`
	CharCount     int     `json:"char_count" yaml:"char_count" validate:"gte=0"`
	AvgWordLength float64 `json:"avg_word_length" yaml:"avg_word_length" validate:"gte=0"`
	StopWordRatio float64 `json:"stop_word_ratio" yaml:"stop_word_ratio" validate:"gte=0,lte=1"`
}

// IsZero reports whether fs is the degenerate all-zero set.
func (fs FeatureSet) IsZero() bool {
	return fs == FeatureSet{}
}

// Extractor computes a FeatureSet from cleaned text.
type Extractor interface {
	Extract(cleaned string) FeatureSet

	// Name returns the extractor type for logging/debugging.
	Name() string
}

// Tokenize splits cleaned text on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Extractor names.
const (
	NameBaseline  = "baseline"
	NameOptimized = "optimized"
)

// ErrUnknownExtractor is returned by New for an unrecognized name.
var ErrUnknownExtractor = errors.New("unknown extractor")

// New returns the extractor registered under name.
func New(name string, lex *lexicon.Lexicon) (Extractor, error) {
	switch name {
	case NameBaseline:
		return NewBaseline(lex), nil
	case NameOptimized:
		return NewOptimized(lex), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtractor, name)
	}
}
