package preprocess

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/tweetprep/pkg/cleaner"
	"github.com/jmylchreest/tweetprep/pkg/features"
	"github.com/jmylchreest/tweetprep/pkg/lexicon"
)

var sampleTweets = []string{
	"Check out this amazing article! 😍 https://example.com #AI #MachineLearning",
	"@john_doe This is incredible! Thanks for sharing 🙏",
	"Just finished my Python project 💻 #coding #python",
}

func pipelines() []*Pipeline {
	lex := lexicon.Default()
	return []*Pipeline{NewBaseline(lex), NewOptimized(lex, cleaner.CompilePatterns())}
}

func TestProcessBatch_ThreeTexts(t *testing.T) {
	for _, p := range pipelines() {
		t.Run(p.Name(), func(t *testing.T) {
			records, elapsed, err := p.ProcessBatch(sampleTweets)
			if err != nil {
				t.Fatalf("ProcessBatch() error = %v", err)
			}
			if len(records) != len(sampleTweets) {
				t.Fatalf("len(records) = %d, want %d", len(records), len(sampleTweets))
			}
			if elapsed < 0 {
				t.Errorf("elapsed = %v, want >= 0", elapsed)
			}
			for i, rec := range records {
				if rec.Original != sampleTweets[i] {
					t.Errorf("records[%d].Original = %q, want %q", i, rec.Original, sampleTweets[i])
				}
			}

			if got := records[0].Cleaned; got != "check out this amazing article ai machinelearning" {
				t.Errorf("records[0].Cleaned = %q", got)
			}
			if got := records[0].Features.WordCount; got != 7 {
				t.Errorf("records[0].WordCount = %d, want 7", got)
			}

			f := records[1].Features
			if f.WordCount != 6 || f.StopWordRatio != 2.0/6 {
				t.Errorf("records[1].Features = %+v, want 6 words and ratio 2/6", f)
			}
		})
	}
}

func TestProcessBatch_Empty(t *testing.T) {
	for _, p := range pipelines() {
		records, elapsed, err := p.ProcessBatch(nil)
		if err != nil {
			t.Fatalf("%s: ProcessBatch(nil) error = %v", p.Name(), err)
		}
		if len(records) != 0 {
			t.Errorf("%s: len(records) = %d, want 0", p.Name(), len(records))
		}
		if elapsed < 0 {
			t.Errorf("%s: elapsed = %v", p.Name(), elapsed)
		}
	}
}

func TestProcessBatch_DegenerateInputs(t *testing.T) {
	texts := []string{"", "#### @@@ http://x", "no removable tokens", "🙏🙏🙏"}

	for _, p := range pipelines() {
		records, _, err := p.ProcessBatch(texts)
		if err != nil {
			t.Fatalf("%s: error = %v", p.Name(), err)
		}
		if len(records) != len(texts) {
			t.Fatalf("%s: len(records) = %d", p.Name(), len(records))
		}
		for _, i := range []int{0, 1, 3} {
			if records[i].Cleaned != "" || !records[i].Features.IsZero() {
				t.Errorf("%s: records[%d] = %+v, want empty and zero", p.Name(), i, records[i])
			}
		}
	}
}

func TestProcessBatch_Parity(t *testing.T) {
	texts := append([]string{"RT @user: Le chat et la souris!! #FR 🇫🇷 www.example.fr"}, sampleTweets...)
	ps := pipelines()

	base, _, err := ps[0].ProcessBatch(texts)
	if err != nil {
		t.Fatal(err)
	}
	opt, _, err := ps[1].ProcessBatch(texts)
	if err != nil {
		t.Fatal(err)
	}

	for i := range base {
		if base[i] != opt[i] {
			t.Errorf("record %d differs:\nbaseline  %+v\noptimized %+v", i, base[i], opt[i])
		}
	}
}

// failingCleaner fails on texts containing "boom".
type failingCleaner struct{}

func (failingCleaner) Clean(text string) (string, error) {
	if strings.Contains(text, "boom") {
		return "", errors.New("boom")
	}
	return text, nil
}

func (failingCleaner) Name() string { return "failing" }

func TestProcessBatch_AbortsOnError(t *testing.T) {
	p := New(failingCleaner{}, features.NewOptimized(nil))

	records, _, err := p.ProcessBatch([]string{"ok", "boom", "never"})
	if err == nil {
		t.Fatal("expected error")
	}
	if records != nil {
		t.Errorf("records = %v, want nil on failure", records)
	}
	if !strings.Contains(err.Error(), "text 1") {
		t.Errorf("error should name the failing index, got %v", err)
	}
}

func TestNewVariant(t *testing.T) {
	p, err := NewVariant(VariantOptimized, nil, nil)
	if err != nil {
		t.Fatalf("NewVariant() error = %v", err)
	}
	if p.Name() != "optimized+optimized" {
		t.Errorf("Name() = %q", p.Name())
	}

	p, err = NewVariant(VariantBaseline, nil, nil, cleaner.NewHTMLText())
	if err != nil {
		t.Fatalf("NewVariant() error = %v", err)
	}
	if p.Name() != "chain(html-text->baseline)+baseline" {
		t.Errorf("Name() = %q", p.Name())
	}

	rec, err := p.Process("Fish &amp; Chips")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Cleaned != "fish chips" {
		t.Errorf("Cleaned = %q, want %q", rec.Cleaned, "fish chips")
	}

	// Stage-only cleaners have no extractor and are not variants.
	for _, name := range []string{"turbo", cleaner.NameNoop, cleaner.NameHTMLText} {
		if _, err := NewVariant(name, nil, nil); !errors.Is(err, ErrUnknownVariant) {
			t.Errorf("NewVariant(%q): expected ErrUnknownVariant, got %v", name, err)
		}
	}
}

func BenchmarkProcessBatch(b *testing.B) {
	texts := make([]string, 0, 1000)
	for len(texts) < cap(texts) {
		texts = append(texts, sampleTweets...)
	}
	texts = texts[:1000]

	for _, p := range pipelines() {
		b.Run(p.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := p.ProcessBatch(texts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
