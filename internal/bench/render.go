package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const rule = 70

// WriteText writes the report as a human readable table followed by a
// summary of the best result against the reference.
func (r *Report) WriteText(w io.Writer) error {
	p := &printer{w: w}

	p.printf("Dataset: %s texts\n", humanize.Comma(int64(r.Texts)))
	p.printf("%s\n", strings.Repeat("-", rule))
	p.printf("%-36s %10s %10s %10s\n", "Pipeline", "Total", "Per text", "Texts/s")
	for _, res := range r.Results {
		p.printf("%-36s %10s %10s %10s\n",
			res.Name,
			res.Elapsed.Round(time.Microsecond),
			res.PerText().Round(100*time.Nanosecond),
			humanize.Comma(int64(res.Throughput())))
	}

	if len(r.Results) > 1 {
		ref, best := r.Reference(), r.Best()
		p.printf("%s\n", strings.Repeat("=", rule))
		p.printf("Fastest:     %s\n", best.Name)
		p.printf("Speedup:     %sx vs %s\n", humanize.FtoaWithDigits(best.Speedup, 2), ref.Name)
		p.printf("Time saved:  %s (%s%%)\n", best.Saved.Round(time.Microsecond), humanize.FtoaWithDigits(best.Improvement, 1))
		p.printf("Verdict:     %s\n", best.Verdict)
	}
	return p.err
}

// WriteText writes the stage breakdown.
func (s StageTimes) WriteText(w io.Writer) error {
	p := &printer{w: w}
	p.printf("%-10s %12s %7s\n", "Stage", "Time", "Share")
	p.printf("%-10s %12s %6.1f%%\n", "clean", s.Clean.Round(time.Microsecond), s.CleanShare())
	p.printf("%-10s %12s %6.1f%%\n", "extract", s.Extract.Round(time.Microsecond), s.ExtractShare())
	p.printf("%-10s %12s\n", "total", s.Total().Round(time.Microsecond))
	if s.Texts > 0 {
		p.printf("%-10s %12s\n", "per text", (s.Total() / time.Duration(s.Texts)).Round(100*time.Nanosecond))
	}
	return p.err
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
