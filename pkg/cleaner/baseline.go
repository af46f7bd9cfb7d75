package cleaner

import (
	"regexp"
	"strings"
)

// BaselineCleaner is the unoptimized reference cleaner. Every substitution
// compiles its expression on the spot.
type BaselineCleaner struct{}

// NewBaseline creates the reference cleaner.
func NewBaseline() *BaselineCleaner {
	return &BaselineCleaner{}
}

// Clean applies the pipeline until the text no longer contains a URL token.
func (c *BaselineCleaner) Clean(text string) (string, error) {
	text = c.pass(text)
	for regexp.MustCompile(urlExpr).MatchString(text) {
		text = c.pass(text)
	}
	return text, nil
}

func (c *BaselineCleaner) pass(text string) string {
	// URLs
	text = regexp.MustCompile(urlExpr).ReplaceAllString(text, "")

	// Mentions
	text = regexp.MustCompile(mentionExpr).ReplaceAllString(text, "")

	// Hashtags keep their word
	text = regexp.MustCompile(hashtagExpr).ReplaceAllString(text, hashtagRepl)

	// Emoji
	text = regexp.MustCompile(emojiExpr).ReplaceAllString(text, "")

	// Special characters
	text = regexp.MustCompile(specialExpr).ReplaceAllString(text, "")

	// Whitespace runs
	text = regexp.MustCompile(spacesExpr).ReplaceAllString(text, " ")

	return strings.TrimSpace(strings.ToLower(text))
}

// Name returns the cleaner type.
func (c *BaselineCleaner) Name() string {
	return "baseline"
}
