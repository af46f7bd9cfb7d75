package commands

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tweetprep/internal/bench"
	"github.com/jmylchreest/tweetprep/internal/logger"
	"github.com/jmylchreest/tweetprep/pkg/cleaner"
	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare the baseline and optimized pipelines",
	Long: `Run the baseline and the optimized pipeline over the same dataset and
report total time, time per text, throughput and the speedup of the
optimized variant (>= 2.5x excellent, >= 1.5x good).

Examples:
  tweetprep bench --size medium
  tweetprep bench --size large --stages
  tweetprep bench --json`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	flags := benchCmd.Flags()
	flags.String("size", "small", "dataset size: small, medium, large")
	flags.Bool("stages", false, "also attribute time to cleaning and feature extraction")
	flags.Bool("json", false, "print the report as JSON")
}

func runBench(cmd *cobra.Command, _ []string) error {
	texts, path, err := loadTexts()
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		return err
	}
	logger.Info("benchmarking", "dataset", path, "texts", humanize.Comma(int64(len(texts))))

	lex, err := cfg.Lexicon()
	if err != nil {
		return err
	}
	patterns := cleaner.CompilePatterns()
	prestages := cfg.Prestages()

	var runners []bench.Runner
	for _, variant := range []string{preprocess.VariantBaseline, preprocess.VariantOptimized} {
		p, err := preprocess.NewVariant(variant, lex, patterns, prestages...)
		if err != nil {
			return err
		}
		runners = append(runners, p)
	}

	report, err := bench.Compare(texts, runners...)
	if err != nil {
		logger.Error("benchmark failed", "error", err)
		return err
	}

	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if err := report.WriteText(out); err != nil {
		return err
	}

	stages, _ := cmd.Flags().GetBool("stages")
	if !stages {
		return nil
	}
	for _, r := range runners {
		p := r.(*preprocess.Pipeline)
		st, err := bench.Stages(p.Cleaner(), p.Extractor(), texts)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", p.Name())
		if err := st.WriteText(out); err != nil {
			return err
		}
	}
	return nil
}
