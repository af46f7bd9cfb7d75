package bench

import (
	"fmt"
	"io"
	"runtime/pprof"
)

// Profile runs one batch under the CPU profiler and writes the profile to w
// in pprof format (inspect with `go tool pprof -top`).
func Profile(w io.Writer, r Runner, texts []string) (Result, error) {
	if err := pprof.StartCPUProfile(w); err != nil {
		return Result{}, fmt.Errorf("failed to start CPU profile: %w", err)
	}

	_, elapsed, err := r.ProcessBatch(texts)
	pprof.StopCPUProfile()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", r.Name(), err)
	}

	res := Result{Name: r.Name(), Texts: len(texts), Elapsed: elapsed}
	rate(&res, elapsed)
	return res, nil
}
