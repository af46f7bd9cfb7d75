package features

import (
	"unicode/utf8"

	"github.com/jmylchreest/tweetprep/pkg/lexicon"
)

// OptimizedExtractor computes word count, summed token length and stop-word
// count in a single traversal. Results equal BaselineExtractor's exactly.
type OptimizedExtractor struct {
	lex *lexicon.Lexicon
}

// NewOptimized creates the single-pass extractor. A nil lexicon means
// lexicon.Default().
func NewOptimized(lex *lexicon.Lexicon) *OptimizedExtractor {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &OptimizedExtractor{lex: lex}
}

// Extract computes the features of cleaned text.
func (e *OptimizedExtractor) Extract(cleaned string) FeatureSet {
	tokens := Tokenize(cleaned)
	n := len(tokens)
	if n == 0 {
		return FeatureSet{}
	}

	totalLen, stopCount := 0, 0
	for _, tok := range tokens {
		totalLen += utf8.RuneCountInString(tok)
		if e.lex.Contains(tok) {
			stopCount++
		}
	}

	return FeatureSet{
		WordCount:     n,
		CharCount:     utf8.RuneCountInString(cleaned),
		AvgWordLength: float64(totalLen) / float64(n),
		StopWordRatio: float64(stopCount) / float64(n),
	}
}

// Name returns the extractor type.
func (e *OptimizedExtractor) Name() string {
	return NameOptimized
}
