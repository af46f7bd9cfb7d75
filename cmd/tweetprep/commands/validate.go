package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tweetprep/internal/dataset"
	"github.com/jmylchreest/tweetprep/internal/logger"
	"github.com/jmylchreest/tweetprep/internal/validate"
	"github.com/jmylchreest/tweetprep/pkg/cleaner"
	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

// sampleSize is the number of synthetic texts validated when no dataset
// has been prepared.
const sampleSize = 500

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check both pipelines for correctness and agreement",
	Long: `Run the acceptance checks on the baseline and optimized pipelines:
record and feature keys, ordering, feature bounds, cleaning rules,
idempotence, and identical output on the prepared dataset (or a synthetic
sample when none exists). Exits non-zero when a check fails.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("size", "small", "dataset size: small, medium, large")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	lex, err := cfg.Lexicon()
	if err != nil {
		return err
	}
	patterns := cleaner.CompilePatterns()
	prestages := cfg.Prestages()

	baseline, err := preprocess.NewVariant(preprocess.VariantBaseline, lex, patterns, prestages...)
	if err != nil {
		return err
	}
	optimized, err := preprocess.NewVariant(preprocess.VariantOptimized, lex, patterns, prestages...)
	if err != nil {
		return err
	}

	texts, _, err := loadTexts()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		logger.Warn("no prepared dataset, validating a synthetic sample", "path", cfg.DatasetPath())
		texts = dataset.Generate(sampleSize, cfg.Seed)
	}

	report := &validate.Report{}
	for _, p := range []*preprocess.Pipeline{baseline, optimized} {
		checks := validate.Pipeline(p)
		for i := range checks.Checks {
			checks.Checks[i].Name = p.Cleaner().Name() + ": " + checks.Checks[i].Name
		}
		report.Merge(checks)
	}

	records, _, err := optimized.ProcessBatch(texts)
	if err != nil {
		return err
	}
	report.Merge(validate.Batch(records, texts))
	report.Merge(validate.Parity(baseline, optimized, texts))

	if err := report.WriteText(cmd.OutOrStdout()); err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("%d of %d checks failed", len(report.Checks)-report.Passed(), len(report.Checks))
	}
	return nil
}
