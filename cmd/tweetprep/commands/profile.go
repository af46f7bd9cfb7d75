package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tweetprep/internal/bench"
	"github.com/jmylchreest/tweetprep/internal/logger"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Capture a CPU profile of one batch",
	Long: `Process a dataset under the CPU profiler, write the profile in pprof
format and print how the time splits between cleaning and feature
extraction.

Examples:
  tweetprep profile --size medium --variant baseline
  go tool pprof -top -cum cpu.pprof`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	flags := profileCmd.Flags()
	flags.String("size", "small", "dataset size: small, medium, large")
	flags.String("cpuprofile", "cpu.pprof", "write the CPU profile to this file")
}

func runProfile(cmd *cobra.Command, _ []string) error {
	texts, path, err := loadTexts()
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		return err
	}

	p, err := cfg.Pipeline()
	if err != nil {
		return err
	}

	profilePath, _ := cmd.Flags().GetString("cpuprofile")
	f, err := os.Create(profilePath)
	if err != nil {
		logger.Error("failed to create profile file", "path", profilePath, "error", err)
		return err
	}

	res, err := bench.Profile(f, p, texts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("profiling failed", "error", err)
		return err
	}

	st, err := bench.Stages(p.Cleaner(), p.Extractor(), texts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logInfo("Profiled %s on %s", p.Name(), path)
	logInfo("  Total time:     %s", res.Elapsed.Round(time.Microsecond))
	logInfo("  Time per text:  %s\n", res.PerText().Round(100*time.Nanosecond))
	if err := st.WriteText(out); err != nil {
		return err
	}
	logInfo("\nCPU profile written to %s (inspect with: go tool pprof -top -cum %s)", profilePath, profilePath)
	return nil
}
