// Package validate checks processed records and pipelines for the
// properties every variant must hold: record shape, ordering, feature
// bounds, cleaning rules and agreement between variants.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/tweetprep/pkg/features"
	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

// RecordKeys are the keys every serialized record carries.
var RecordKeys = []string{"original", "cleaned", "features"}

// FeatureKeys are the keys every serialized feature set carries.
var FeatureKeys = []string{"word_count", "char_count", "avg_word_length", "stop_word_ratio"}

// maxFailures caps how many offending items one check lists.
const maxFailures = 5

// Check is the outcome of one named check.
type Check struct {
	Name    string `json:"name" yaml:"name"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Report collects checks in the order they ran.
type Report struct {
	Checks []Check `json:"checks" yaml:"checks"`
}

func (r *Report) pass(name, format string, args ...any) {
	r.Checks = append(r.Checks, Check{Name: name, Passed: true, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) fail(name, format string, args ...any) {
	r.Checks = append(r.Checks, Check{Name: name, Message: fmt.Sprintf(format, args...)})
}

// record adds a check that passed when errs is empty.
func (r *Report) record(name string, errs []string, ok string) {
	if len(errs) == 0 {
		r.pass(name, "%s", ok)
		return
	}
	msg := strings.Join(errs[:min(len(errs), maxFailures)], "; ")
	if len(errs) > maxFailures {
		msg += fmt.Sprintf("; and %d more", len(errs)-maxFailures)
	}
	r.fail(name, "%s", msg)
}

// Merge appends the checks of other.
func (r *Report) Merge(other *Report) {
	r.Checks = append(r.Checks, other.Checks...)
}

// Passed returns the number of passing checks.
func (r *Report) Passed() int {
	n := 0
	for _, c := range r.Checks {
		if c.Passed {
			n++
		}
	}
	return n
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return r.Passed() == len(r.Checks)
}

// Err returns the failed checks joined into one error, or nil.
func (r *Report) Err() error {
	var errs []error
	for _, c := range r.Checks {
		if !c.Passed {
			errs = append(errs, fmt.Errorf("%s: %s", c.Name, c.Message))
		}
	}
	return errors.Join(errs...)
}

// WriteText prints one line per check and a score.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	for _, c := range r.Checks {
		mark := "PASS"
		if !c.Passed {
			mark = "FAIL"
		}
		fmt.Fprintf(&sb, "[%s] %s\n", mark, c.Name)
		if c.Message != "" {
			fmt.Fprintf(&sb, "       %s\n", c.Message)
		}
	}
	score := 0.0
	if len(r.Checks) > 0 {
		score = float64(r.Passed()) / float64(len(r.Checks)) * 100
	}
	fmt.Fprintf(&sb, "\nScore: %d/%d (%.0f%%)\n", r.Passed(), len(r.Checks), score)

	_, err := io.WriteString(w, sb.String())
	return err
}

// Batch checks the records produced from inputs.
func Batch(records []preprocess.Record, inputs []string) *Report {
	r := &Report{}

	if len(records) != len(inputs) {
		r.fail("length", "got %d records for %d inputs", len(records), len(inputs))
	} else {
		r.pass("length", "%d records", len(records))
	}

	var order []string
	for i := range min(len(records), len(inputs)) {
		if records[i].Original != inputs[i] {
			order = append(order, fmt.Sprintf("record %d holds %q, want %q", i, records[i].Original, inputs[i]))
		}
	}
	r.record("order", order, "records follow input order")

	var recKeys, featKeys []string
	for i, rec := range records {
		missingRec, missingFeat, err := missingKeys(rec)
		if err != nil {
			recKeys = append(recKeys, fmt.Sprintf("record %d: %v", i, err))
			continue
		}
		if len(missingRec) > 0 {
			recKeys = append(recKeys, fmt.Sprintf("record %d: missing %v", i, missingRec))
		}
		if len(missingFeat) > 0 {
			featKeys = append(featKeys, fmt.Sprintf("record %d: missing %v", i, missingFeat))
		}
	}
	r.record("record keys", recKeys, strings.Join(RecordKeys, ", "))
	r.record("feature keys", featKeys, strings.Join(FeatureKeys, ", "))

	v := validator.New()
	var bounds []string
	for i, rec := range records {
		for _, msg := range featureErrors(v, rec.Features) {
			bounds = append(bounds, fmt.Sprintf("record %d: %s", i, msg))
		}
	}
	r.record("feature bounds", bounds, "all features within bounds")

	return r
}

// missingKeys serializes rec and reports the absent record and feature keys.
func missingKeys(rec preprocess.Record) (recMissing, featMissing []string, err error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}
	for _, k := range RecordKeys {
		if _, ok := raw[k]; !ok {
			recMissing = append(recMissing, k)
		}
	}

	var feats map[string]json.RawMessage
	if fdata, ok := raw["features"]; ok {
		if err := json.Unmarshal(fdata, &feats); err != nil {
			return recMissing, nil, fmt.Errorf("features: %w", err)
		}
	}
	for _, k := range FeatureKeys {
		if _, ok := feats[k]; !ok {
			featMissing = append(featMissing, k)
		}
	}
	return recMissing, featMissing, nil
}

// featureErrors validates the struct tags of fs and its cross-field rules.
func featureErrors(v *validator.Validate, fs features.FeatureSet) []string {
	var out []string
	if err := v.Struct(fs); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				out = append(out, fmt.Sprintf("%s=%v fails %s", fe.Field(), fe.Value(), fe.Tag()))
			}
		} else {
			out = append(out, err.Error())
		}
	}
	if fs.WordCount == 0 && !fs.IsZero() {
		out = append(out, fmt.Sprintf("no words but non-zero features %+v", fs))
	}
	// Word lengths exclude the separating spaces counted in CharCount.
	if float64(fs.WordCount)*fs.AvgWordLength > float64(fs.CharCount)+1e-9 {
		out = append(out, fmt.Sprintf("avg_word_length %v exceeds char_count %d", fs.AvgWordLength, fs.CharCount))
	}
	return out
}

// Parity checks that a and b produce the same cleaned text and features
// for every text.
func Parity(a, b *preprocess.Pipeline, texts []string) *Report {
	r := &Report{}
	name := fmt.Sprintf("parity %s vs %s", a.Name(), b.Name())

	ra, _, err := a.ProcessBatch(texts)
	if err != nil {
		r.fail(name, "%s: %v", a.Name(), err)
		return r
	}
	rb, _, err := b.ProcessBatch(texts)
	if err != nil {
		r.fail(name, "%s: %v", b.Name(), err)
		return r
	}

	var diffs []string
	for i := range ra {
		if ra[i].Cleaned != rb[i].Cleaned {
			diffs = append(diffs, fmt.Sprintf("text %d cleaned: %q != %q", i, ra[i].Cleaned, rb[i].Cleaned))
		} else if ra[i].Features != rb[i].Features {
			diffs = append(diffs, fmt.Sprintf("text %d features: %+v != %+v", i, ra[i].Features, rb[i].Features))
		}
	}
	r.record(name, diffs, fmt.Sprintf("%d texts identical", len(texts)))
	return r
}

// Pipeline runs the acceptance checks of a single pipeline: a small batch,
// the cleaning rules on a sample tweet, word counting and idempotence.
func Pipeline(p *preprocess.Pipeline) *Report {
	r := &Report{}

	batch := []string{
		"This is a test tweet @user #test",
		"Another tweet with URL https://test.com 😊",
	}
	records, _, err := p.ProcessBatch(batch)
	if err != nil {
		r.fail("batch", "%v", err)
	} else {
		r.Merge(Batch(records, batch))
	}

	sample := "Check this out! 😍 @user https://test.com #amazing"
	cleaned, err := p.Cleaner().Clean(sample)
	if err != nil {
		r.fail("cleaning", "%v", err)
	} else {
		r.record("cleaning", cleaningErrors(cleaned), fmt.Sprintf("%q", cleaned))

		again, err := p.Cleaner().Clean(cleaned)
		switch {
		case err != nil:
			r.fail("idempotence", "%v", err)
		case again != cleaned:
			r.fail("idempotence", "%q cleaned again gives %q", cleaned, again)
		default:
			r.pass("idempotence", "clean(clean(t)) == clean(t)")
		}
	}

	text := "this is a test text with some words"
	fs := p.Extractor().Extract(text)
	if want := len(features.Tokenize(text)); fs.WordCount != want {
		r.fail("word count", "got %d, want %d", fs.WordCount, want)
	} else {
		r.pass("word count", "%d words", fs.WordCount)
	}

	return r
}

// cleaningErrors lists the cleaning rules cleaned breaks.
func cleaningErrors(cleaned string) []string {
	var out []string
	lower := strings.ToLower(cleaned)
	if strings.Contains(lower, "https") || strings.Contains(lower, "www") {
		out = append(out, "URL not removed")
	}
	if strings.Contains(cleaned, "@") {
		out = append(out, "mention not removed")
	}
	if lower != cleaned {
		out = append(out, "not lowercased")
	}
	if strings.IndexFunc(cleaned, isForeign) >= 0 {
		out = append(out, "emoji or punctuation left")
	}
	if strings.Contains(cleaned, "  ") || strings.TrimSpace(cleaned) != cleaned {
		out = append(out, "whitespace not collapsed")
	}
	return out
}

func isForeign(r rune) bool {
	return !(unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == ' ')
}
