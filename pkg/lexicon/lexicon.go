// Package lexicon holds the stop-word set used by feature extraction.
// A Lexicon is built once and shared read-only by every extractor.
package lexicon

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultStopWords are the most frequent French and English function words.
var DefaultStopWords = []string{
	"le", "la", "de", "et", "un", "une", "les", "des",
	"the", "be", "to", "of", "and", "a", "in", "that",
	"is", "it", "for", "on", "with", "as", "was", "are",
}

// ErrEmptyLexicon is returned when a stop-word file contains no usable words.
var ErrEmptyLexicon = errors.New("lexicon has no stop words")

// Lexicon is an immutable stop-word set.
type Lexicon struct {
	words map[string]struct{}
}

// Option configures a Lexicon.
type Option func(*builder)

type builder struct {
	extra   []string
	exclude []string
}

// WithExtra adds words on top of the base set.
func WithExtra(words ...string) Option {
	return func(b *builder) { b.extra = append(b.extra, words...) }
}

// WithExclude drops words from the base set.
func WithExclude(words ...string) Option {
	return func(b *builder) { b.exclude = append(b.exclude, words...) }
}

// Default returns the lexicon built from DefaultStopWords.
func Default(opts ...Option) *Lexicon {
	return New(DefaultStopWords, opts...)
}

// New builds a lexicon from words. Words are lowercased and trimmed so that
// they match cleaned text; blanks are ignored.
func New(words []string, opts ...Option) *Lexicon {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	set := make(map[string]struct{}, len(words)+len(b.extra))
	for _, w := range words {
		addWord(set, w)
	}
	for _, w := range b.extra {
		addWord(set, w)
	}
	for _, w := range b.exclude {
		delete(set, normalizeWord(w))
	}
	return &Lexicon{words: set}
}

func addWord(set map[string]struct{}, w string) {
	if w = normalizeWord(w); w != "" {
		set[w] = struct{}{}
	}
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Contains reports whether token is a stop word. Tokens are expected to be
// already lowercased.
func (l *Lexicon) Contains(token string) bool {
	_, ok := l.words[token]
	return ok
}

// Len returns the number of stop words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Words returns the stop words in sorted order.
func (l *Lexicon) Words() []string {
	out := make([]string, 0, len(l.words))
	for w := range l.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// fileFormat is the on-disk shape of a stop-word file.
//
//	replace: false
//	words: [rt, via]
type fileFormat struct {
	Replace bool     `yaml:"replace"`
	Words   []string `yaml:"words"`
	Exclude []string `yaml:"exclude"`
}

// LoadFile reads a YAML stop-word file. By default its words extend
// DefaultStopWords; with `replace: true` they replace it.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop-word file: %w", err)
	}
	return Parse(data)
}

// Parse builds a lexicon from YAML data in the LoadFile format.
func Parse(data []byte) (*Lexicon, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse stop-word file: %w", err)
	}

	var lex *Lexicon
	if f.Replace {
		lex = New(f.Words, WithExclude(f.Exclude...))
	} else {
		lex = Default(WithExtra(f.Words...), WithExclude(f.Exclude...))
	}
	if lex.Len() == 0 {
		return nil, ErrEmptyLexicon
	}
	return lex, nil
}
