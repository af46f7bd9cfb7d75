package validate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmylchreest/tweetprep/pkg/cleaner"
	"github.com/jmylchreest/tweetprep/pkg/features"
	"github.com/jmylchreest/tweetprep/pkg/lexicon"
	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

func checkByName(t *testing.T, r *Report, name string) Check {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q in %+v", name, r.Checks)
	return Check{}
}

func TestBatch_Valid(t *testing.T) {
	inputs := []string{"Hello @bob #Go", "", "#### @@@ http://x"}
	records, _, err := preprocess.NewOptimized(nil, nil).ProcessBatch(inputs)
	if err != nil {
		t.Fatal(err)
	}

	r := Batch(records, inputs)
	if !r.OK() {
		t.Errorf("expected all checks to pass: %v", r.Err())
	}
	if len(r.Checks) != 5 {
		t.Errorf("expected 5 checks, got %d", len(r.Checks))
	}
}

func TestBatch_Failures(t *testing.T) {
	good := preprocess.Record{Original: "a", Cleaned: "a", Features: features.FeatureSet{WordCount: 1, CharCount: 1, AvgWordLength: 1}}

	tests := []struct {
		name    string
		records []preprocess.Record
		inputs  []string
		failing string
	}{
		{
			name:    "length",
			records: []preprocess.Record{good},
			inputs:  []string{"a", "b"},
			failing: "length",
		},
		{
			name:    "order",
			records: []preprocess.Record{good, {Original: "b"}},
			inputs:  []string{"b", "a"},
			failing: "order",
		},
		{
			name: "ratio above one",
			records: []preprocess.Record{{
				Original: "a",
				Features: features.FeatureSet{WordCount: 1, CharCount: 1, AvgWordLength: 1, StopWordRatio: 1.5},
			}},
			inputs:  []string{"a"},
			failing: "feature bounds",
		},
		{
			name: "negative count",
			records: []preprocess.Record{{
				Original: "a",
				Features: features.FeatureSet{WordCount: -1},
			}},
			inputs:  []string{"a"},
			failing: "feature bounds",
		},
		{
			name: "features without words",
			records: []preprocess.Record{{
				Original: "a",
				Features: features.FeatureSet{CharCount: 3},
			}},
			inputs:  []string{"a"},
			failing: "feature bounds",
		},
		{
			name: "average longer than text",
			records: []preprocess.Record{{
				Original: "a",
				Features: features.FeatureSet{WordCount: 2, CharCount: 3, AvgWordLength: 4},
			}},
			inputs:  []string{"a"},
			failing: "feature bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Batch(tt.records, tt.inputs)
			if r.OK() {
				t.Fatal("expected a failing check")
			}
			if c := checkByName(t, r, tt.failing); c.Passed {
				t.Errorf("check %q passed, want failure", tt.failing)
			}
			if r.Err() == nil {
				t.Error("Err() should be non-nil")
			}
		})
	}
}

func TestBatch_TruncatesMessages(t *testing.T) {
	inputs := make([]string, 10)
	records := make([]preprocess.Record, 10)
	for i := range inputs {
		inputs[i] = "x"
		records[i] = preprocess.Record{Original: "y"}
	}

	c := checkByName(t, Batch(records, inputs), "order")
	if !strings.HasSuffix(c.Message, "and 5 more") {
		t.Errorf("Message = %q", c.Message)
	}
}

func TestMissingKeys(t *testing.T) {
	rec, feat, err := missingKeys(preprocess.Record{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec) != 0 || len(feat) != 0 {
		t.Errorf("zero record should still carry every key, missing %v %v", rec, feat)
	}
}

func TestParity(t *testing.T) {
	lex := lexicon.Default()
	texts := []string{
		"Check out this amazing article! 😍 https://example.com #AI #MachineLearning",
		"@john_doe This is incredible! Thanks for sharing 🙏",
		"",
	}

	r := Parity(preprocess.NewBaseline(lex), preprocess.NewOptimized(lex, nil), texts)
	if !r.OK() {
		t.Errorf("variants disagree: %v", r.Err())
	}

	noop := preprocess.New(cleaner.NewNoop(), features.NewOptimized(lex))
	r = Parity(preprocess.NewBaseline(lex), noop, texts)
	if r.OK() {
		t.Error("expected parity failure against the noop cleaner")
	}
}

func TestPipeline(t *testing.T) {
	for _, variant := range []string{preprocess.VariantBaseline, preprocess.VariantOptimized} {
		t.Run(variant, func(t *testing.T) {
			p, err := preprocess.NewVariant(variant, nil, nil)
			if err != nil {
				t.Fatal(err)
			}
			r := Pipeline(p)
			if !r.OK() {
				t.Errorf("checks failed: %v", r.Err())
			}
		})
	}
}

func TestPipeline_DetectsBrokenCleaner(t *testing.T) {
	p := preprocess.New(cleaner.NewNoop(), features.NewOptimized(nil))

	r := Pipeline(p)
	if c := checkByName(t, r, "cleaning"); c.Passed {
		t.Error("noop cleaner should fail the cleaning check")
	}
	if c := checkByName(t, r, "word count"); !c.Passed {
		t.Errorf("word count should pass: %s", c.Message)
	}
}

func TestReport_WriteText(t *testing.T) {
	r := &Report{}
	r.pass("one", "fine")
	r.fail("two", "broken")

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"[PASS] one", "[FAIL] two", "broken", "Score: 1/2 (50%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
