package dataset

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
)

// Size names a prepared dataset file.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Sizes lists every size in increasing order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Count returns the number of texts in a file of this size.
func (s Size) Count() int {
	switch s {
	case SizeSmall:
		return 100
	case SizeMedium:
		return 1000
	case SizeLarge:
		return 10000
	default:
		return 0
	}
}

// ParseSize validates a size name.
func ParseSize(name string) (Size, error) {
	s := Size(name)
	if s.Count() == 0 {
		return "", fmt.Errorf("unknown dataset size %q (want small, medium or large)", name)
	}
	return s, nil
}

// Path returns the file for size s inside dir.
func Path(dir string, s Size) string {
	return filepath.Join(dir, fmt.Sprintf("tweets_%s.csv", s))
}

// PreparedFile describes a file written by Prepare.
type PreparedFile struct {
	Size  Size   `json:"size" yaml:"size"`
	Path  string `json:"path" yaml:"path"`
	Count int    `json:"count" yaml:"count"`
}

// Prepare writes one sampled file per size into dir. Each file holds
// min(size, len(texts)) texts drawn without replacement with the given seed.
func Prepare(dir string, texts []string, seed uint64) ([]PreparedFile, error) {
	files := make([]PreparedFile, 0, len(Sizes()))
	for _, s := range Sizes() {
		sample := Sample(texts, s.Count(), seed)
		path := Path(dir, s)
		if err := Save(path, sample); err != nil {
			return files, err
		}
		files = append(files, PreparedFile{Size: s, Path: path, Count: len(sample)})
	}
	return files, nil
}

// Sample draws n texts without replacement. When n >= len(texts) every text
// is returned, shuffled.
func Sample(texts []string, n int, seed uint64) []string {
	n = min(n, len(texts))
	r := rand.New(rand.NewPCG(seed, seed))

	out := make([]string, n)
	for i, j := range r.Perm(len(texts))[:n] {
		out[i] = texts[j]
	}
	return out
}
