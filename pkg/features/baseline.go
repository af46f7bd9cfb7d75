package features

import (
	"unicode/utf8"

	"github.com/jmylchreest/tweetprep/pkg/lexicon"
)

// BaselineExtractor computes each feature with its own traversal of the
// tokens.
type BaselineExtractor struct {
	lex *lexicon.Lexicon
}

// NewBaseline creates the reference extractor. A nil lexicon means
// lexicon.Default().
func NewBaseline(lex *lexicon.Lexicon) *BaselineExtractor {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &BaselineExtractor{lex: lex}
}

// Extract computes the features of cleaned text.
func (e *BaselineExtractor) Extract(cleaned string) FeatureSet {
	tokens := Tokenize(cleaned)
	if len(tokens) == 0 {
		return FeatureSet{}
	}

	wordCount := len(tokens)
	charCount := utf8.RuneCountInString(cleaned)

	totalLen := 0
	for _, tok := range tokens {
		totalLen += utf8.RuneCountInString(tok)
	}
	avgWordLength := float64(totalLen) / float64(wordCount)

	stopCount := 0
	for _, tok := range tokens {
		if e.lex.Contains(tok) {
			stopCount++
		}
	}
	stopWordRatio := float64(stopCount) / float64(wordCount)

	return FeatureSet{
		WordCount:     wordCount,
		CharCount:     charCount,
		AvgWordLength: avgWordLength,
		StopWordRatio: stopWordRatio,
	}
}

// Name returns the extractor type.
func (e *BaselineExtractor) Name() string {
	return NameBaseline
}
