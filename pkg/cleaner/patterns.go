package cleaner

import "regexp"

// Character classes shared by every expression. Word characters are
// Unicode-aware so accented letters, other scripts and digits survive
// hashtag unwrapping. Whitespace matches exactly what unicode.IsSpace
// accepts, so tokenizing with strings.Fields agrees with the cleaner.
const (
	wordClass  = `\p{L}\p{N}_`
	spaceClass = `\t\n\v\f\r\x{85}\p{Z}`
)

// Emoji blocks removed by the cleaner: emoticons, symbols & pictographs,
// transport & map symbols, regional indicators (flags).
const emojiClass = `\x{1F600}-\x{1F64F}` +
	`\x{1F300}-\x{1F5FF}` +
	`\x{1F680}-\x{1F6FF}` +
	`\x{1F1E0}-\x{1F1FF}`

// Expressions in pipeline order.
const (
	urlExpr      = `http[^` + spaceClass + `]+|www\.[^` + spaceClass + `]+`
	mentionExpr  = `@[` + wordClass + `]+`
	hashtagExpr  = `#([` + wordClass + `]+)`
	emojiExpr    = `[` + emojiClass + `]+`
	specialExpr  = `[^` + wordClass + spaceClass + `]`
	spacesExpr   = `[` + spaceClass + `]+`
	hashtagRepl  = `${1}`
	specialsExpr = specialExpr + `+`
)

// Patterns holds the compiled expressions of the cleaning pipeline.
// It is immutable after CompilePatterns returns and safe to share between
// goroutines and cleaners.
type Patterns struct {
	url      *regexp.Regexp
	mention  *regexp.Regexp
	hashtag  *regexp.Regexp
	emoji    *regexp.Regexp
	specials *regexp.Regexp
	spaces   *regexp.Regexp
}

// CompilePatterns compiles every expression once.
func CompilePatterns() *Patterns {
	return &Patterns{
		url:      regexp.MustCompile(urlExpr),
		mention:  regexp.MustCompile(mentionExpr),
		hashtag:  regexp.MustCompile(hashtagExpr),
		emoji:    regexp.MustCompile(emojiExpr),
		specials: regexp.MustCompile(specialsExpr),
		spaces:   regexp.MustCompile(spacesExpr),
	}
}
