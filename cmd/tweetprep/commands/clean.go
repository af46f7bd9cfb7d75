package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tweetprep/internal/logger"
	"github.com/jmylchreest/tweetprep/internal/output"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [text...]",
	Short: "Clean messages given as arguments or on stdin",
	Long: `Clean one message per argument, or one per line of standard input
when no argument is given, and print the records.

Examples:
  tweetprep clean "Check out this amazing article! 😍 https://example.com #AI"
  cat tweets.txt | tweetprep clean --text-only`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.String("format", "json", "output format: json, jsonl, yaml, csv")
	flags.Bool("text-only", false, "print only the cleaned text, one per line")
}

func runClean(cmd *cobra.Command, args []string) error {
	texts := args
	if len(texts) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			texts = append(texts, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	p, err := cfg.Pipeline()
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		return err
	}

	records, _, err := p.ProcessBatch(texts)
	if err != nil {
		logger.Error("cleaning failed", "error", err)
		return err
	}

	textOnly, _ := cmd.Flags().GetBool("text-only")
	if textOnly {
		w := bufio.NewWriter(cmd.OutOrStdout())
		for _, rec := range records {
			fmt.Fprintln(w, rec.Cleaned)
		}
		return w.Flush()
	}

	writer, err := output.NewWriter(cmd.OutOrStdout(), output.Format(cfg.Format))
	if err != nil {
		return err
	}
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return writer.Close()
}

// openOutput returns the command's stdout for "" or "-", otherwise a
// created file, with its close function.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
