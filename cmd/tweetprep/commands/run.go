package commands

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tweetprep/internal/logger"
	"github.com/jmylchreest/tweetprep/internal/output"
	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process a prepared dataset and report its timing",
	Long: `Process every text of a prepared dataset with the selected variant,
report the elapsed time and show a few processed examples.

Examples:
  tweetprep run --size medium
  tweetprep run --variant baseline --size large -o records.jsonl --format jsonl`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.String("size", "small", "dataset size: small, medium, large")
	flags.String("format", "json", "output format: json, jsonl, yaml, csv")
	flags.StringP("output", "o", "", "write records to this file (- for stdout)")
	flags.Int("examples", 3, "number of processed examples to show")
}

func runRun(cmd *cobra.Command, _ []string) error {
	texts, path, err := loadTexts()
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		return err
	}
	logInfo("Loaded %s texts from %s", humanize.Comma(int64(len(texts))), path)

	p, err := cfg.Pipeline()
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		return err
	}

	records, elapsed, err := p.ProcessBatch(texts)
	if err != nil {
		logger.Error("processing failed", "pipeline", p.Name(), "error", err)
		return err
	}

	logInfo("\nResults (%s):", p.Name())
	logInfo("  Total time:     %s", elapsed.Round(time.Microsecond))
	if len(texts) > 0 {
		perText := elapsed / time.Duration(len(texts))
		logInfo("  Time per text:  %s", perText.Round(100*time.Nanosecond))
		logInfo("  Texts/second:   %s", humanize.Comma(int64(float64(len(texts))/max(elapsed, time.Nanosecond).Seconds())))
	}

	n, _ := cmd.Flags().GetInt("examples")
	if n > 0 && len(records) > 0 {
		logInfo("\nExamples:")
		for i, rec := range records[:min(n, len(records))] {
			logInfo("\n  Text %d:", i+1)
			logInfo("  Original: %s", truncate(rec.Original, 80))
			logInfo("  Cleaned:  %s", truncate(rec.Cleaned, 80))
			logInfo("  Features: %s", formatFeatures(rec))
		}
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		return nil
	}

	w, closeOut, err := openOutput(cmd, outPath)
	if err != nil {
		return err
	}

	writer, err := output.NewWriter(w, output.Format(cfg.Format))
	if err != nil {
		_ = closeOut()
		return err
	}
	if err := writer.WriteAll(records); err != nil {
		_ = closeOut()
		return err
	}
	if err := writer.Close(); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}
	logger.Debug("records written", "output", outPath, "records", len(records))
	return nil
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func formatFeatures(rec preprocess.Record) string {
	f := rec.Features
	return fmt.Sprintf("words=%d chars=%d avg_len=%.2f stop_ratio=%.2f",
		f.WordCount, f.CharCount, f.AvgWordLength, f.StopWordRatio)
}
