package cleaner

import "strings"

// OptimizedCleaner produces the same output as BaselineCleaner using
// expressions compiled once. It holds no mutable state.
type OptimizedCleaner struct {
	p *Patterns
}

// NewOptimized creates a cleaner over precompiled patterns.
// If p is nil, the patterns are compiled here.
func NewOptimized(p *Patterns) *OptimizedCleaner {
	if p == nil {
		p = CompilePatterns()
	}
	return &OptimizedCleaner{p: p}
}

// Clean applies the pipeline. Only the URL expression can still match
// on already cleaned text, so a second pass runs only when it does.
func (c *OptimizedCleaner) Clean(text string) (string, error) {
	text = c.pass(text)
	for c.p.url.MatchString(text) {
		text = c.pass(text)
	}
	return text, nil
}

func (c *OptimizedCleaner) pass(text string) string {
	text = c.p.url.ReplaceAllLiteralString(text, "")
	text = c.p.mention.ReplaceAllLiteralString(text, "")
	text = c.p.hashtag.ReplaceAllString(text, hashtagRepl)
	text = c.p.emoji.ReplaceAllLiteralString(text, "")
	text = c.p.specials.ReplaceAllLiteralString(text, "")
	text = c.p.spaces.ReplaceAllLiteralString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}

// Name returns the cleaner type.
func (c *OptimizedCleaner) Name() string {
	return "optimized"
}
