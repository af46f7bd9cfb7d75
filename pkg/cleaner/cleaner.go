// Package cleaner provides interfaces and implementations for cleaning short
// social-media messages before feature extraction.
//
// Two implementations share one contract and must produce identical output
// for every input: Baseline, which compiles its expressions on every call,
// and Optimized, which reuses expressions compiled once by CompilePatterns.
// Additional cleaners (UnicodeFold, HTMLText) can be placed in front of
// either one with a ChainCleaner.
package cleaner

import (
	"errors"
	"fmt"
)

// Cleaner transforms raw message text into cleaned text.
type Cleaner interface {
	// Clean transforms the input text into its cleaned form.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}

// Cleaner names accepted by New.
const (
	NameBaseline    = "baseline"
	NameOptimized   = "optimized"
	NameNoop        = "noop"
	NameUnicodeFold = "unicode-fold"
	NameHTMLText    = "html-text"
)

// ErrUnknownCleaner is returned by New for an unrecognized name.
var ErrUnknownCleaner = errors.New("unknown cleaner")

// New returns the cleaner registered under name. Patterns are only used by
// the optimized cleaner and may be nil.
func New(name string, p *Patterns) (Cleaner, error) {
	switch name {
	case NameBaseline:
		return NewBaseline(), nil
	case NameOptimized:
		return NewOptimized(p), nil
	case NameNoop:
		return NewNoop(), nil
	case NameUnicodeFold:
		return NewUnicodeFold(), nil
	case NameHTMLText:
		return NewHTMLText(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCleaner, name)
	}
}
