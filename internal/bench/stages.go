package bench

import (
	"fmt"
	"time"

	"github.com/jmylchreest/tweetprep/pkg/cleaner"
	"github.com/jmylchreest/tweetprep/pkg/features"
)

// StageTimes attributes the time of one batch to its two stages.
type StageTimes struct {
	Texts   int           `json:"texts" yaml:"texts"`
	Clean   time.Duration `json:"clean_ns" yaml:"clean_ns"`
	Extract time.Duration `json:"extract_ns" yaml:"extract_ns"`
}

// Total returns the time spent in both stages.
func (s StageTimes) Total() time.Duration {
	return s.Clean + s.Extract
}

// CleanShare returns the percentage of Total spent cleaning.
func (s StageTimes) CleanShare() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Clean) / float64(s.Total()) * 100
}

// ExtractShare returns the percentage of Total spent extracting features.
func (s StageTimes) ExtractShare() float64 {
	if s.Total() == 0 {
		return 0
	}
	return 100 - s.CleanShare()
}

// Stages times every Clean and Extract call over texts separately.
func Stages(c cleaner.Cleaner, e features.Extractor, texts []string) (StageTimes, error) {
	st := StageTimes{Texts: len(texts)}
	for i, text := range texts {
		start := time.Now()
		cleaned, err := c.Clean(text)
		st.Clean += time.Since(start)
		if err != nil {
			return st, fmt.Errorf("text %d: %w", i, err)
		}

		start = time.Now()
		_ = e.Extract(cleaned)
		st.Extract += time.Since(start)
	}
	return st, nil
}
