package cleaner

import (
	"sync"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transformer chains are stateful; pool them so UnicodeFoldCleaner stays
// safe for concurrent use.
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFKC, width.Fold)
	},
}

// UnicodeFoldCleaner applies NFKC normalization and width folding, so
// fullwidth letters and compatibility forms (ｈｔｔｐ, ℌ, ﬁ) become the
// plain letters the main cleaner expects.
type UnicodeFoldCleaner struct{}

// NewUnicodeFold creates a Unicode folding stage.
func NewUnicodeFold() *UnicodeFoldCleaner {
	return &UnicodeFoldCleaner{}
}

// Clean returns the folded text.
func (c *UnicodeFoldCleaner) Clean(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	tr := foldPool.Get().(transform.Transformer)
	defer func() {
		tr.Reset()
		foldPool.Put(tr)
	}()

	out, _, err := transform.String(tr, text)
	if err != nil {
		return "", err
	}
	return out, nil
}

// Name returns the cleaner type.
func (c *UnicodeFoldCleaner) Name() string {
	return "unicode-fold"
}
