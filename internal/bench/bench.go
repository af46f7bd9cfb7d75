// Package bench measures preprocessing pipelines against each other.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/jmylchreest/tweetprep/internal/logger"
	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

// Runner processes a batch and reports its wall-clock duration.
// *preprocess.Pipeline implements it.
type Runner interface {
	Name() string
	ProcessBatch(texts []string) ([]preprocess.Record, time.Duration, error)
}

// ErrNoRunners is returned by Compare when called without runners.
var ErrNoRunners = errors.New("no pipelines to compare")

// Verdict rates a speedup.
type Verdict string

const (
	VerdictExcellent  Verdict = "excellent"
	VerdictGood       Verdict = "good"
	VerdictImprovable Verdict = "can be improved"
)

// Speedup thresholds.
const (
	ExcellentSpeedup = 2.5
	GoodSpeedup      = 1.5
)

// VerdictFor rates speedup against the thresholds.
func VerdictFor(speedup float64) Verdict {
	switch {
	case speedup >= ExcellentSpeedup:
		return VerdictExcellent
	case speedup >= GoodSpeedup:
		return VerdictGood
	default:
		return VerdictImprovable
	}
}

// Result is the timing of one runner over the whole batch.
type Result struct {
	Name    string        `json:"name" yaml:"name"`
	Texts   int           `json:"texts" yaml:"texts"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`

	// Relative to the reference (first) result.
	Speedup     float64       `json:"speedup" yaml:"speedup"`
	Improvement float64       `json:"improvement_pct" yaml:"improvement_pct"`
	Saved       time.Duration `json:"saved_ns" yaml:"saved_ns"`
	Verdict     Verdict       `json:"verdict" yaml:"verdict"`
}

// PerText returns the mean time per text.
func (r Result) PerText() time.Duration {
	if r.Texts == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Texts)
}

// Throughput returns texts processed per second.
func (r Result) Throughput() float64 {
	return float64(r.Texts) / clamp(r.Elapsed).Seconds()
}

// Report holds one result per runner. Results[0] is the reference the
// others are compared to.
type Report struct {
	Texts   int      `json:"texts" yaml:"texts"`
	Results []Result `json:"results" yaml:"results"`
}

// Reference returns the first result.
func (r *Report) Reference() Result {
	return r.Results[0]
}

// Best returns the fastest result.
func (r *Report) Best() Result {
	best := r.Results[0]
	for _, res := range r.Results[1:] {
		if res.Elapsed < best.Elapsed {
			best = res
		}
	}
	return best
}

// Compare runs every runner over texts, in order, and rates each against
// the first. A failing runner aborts the comparison.
func Compare(texts []string, runners ...Runner) (*Report, error) {
	if len(runners) == 0 {
		return nil, ErrNoRunners
	}

	report := &Report{Texts: len(texts), Results: make([]Result, 0, len(runners))}
	for _, r := range runners {
		logger.Debug("benchmarking pipeline", "pipeline", r.Name(), "texts", len(texts))

		_, elapsed, err := r.ProcessBatch(texts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name(), err)
		}
		report.Results = append(report.Results, Result{
			Name:    r.Name(),
			Texts:   len(texts),
			Elapsed: elapsed,
		})
	}

	ref := report.Results[0].Elapsed
	for i := range report.Results {
		rate(&report.Results[i], ref)
	}
	return report, nil
}

func rate(res *Result, ref time.Duration) {
	res.Speedup = clamp(ref).Seconds() / clamp(res.Elapsed).Seconds()
	res.Improvement = (1 - clamp(res.Elapsed).Seconds()/clamp(ref).Seconds()) * 100
	res.Saved = ref - res.Elapsed
	res.Verdict = VerdictFor(res.Speedup)
}

// clamp keeps ratios finite when a batch finishes within the clock's
// resolution.
func clamp(d time.Duration) time.Duration {
	return max(d, time.Nanosecond)
}
