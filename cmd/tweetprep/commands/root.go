// Package commands implements the CLI commands for tweetprep.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/tweetprep/internal/config"
	"github.com/jmylchreest/tweetprep/internal/dataset"
	"github.com/jmylchreest/tweetprep/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tweetprep",
	Short: "Clean tweets and extract lexical features",
	Long: `Tweetprep cleans short social-media messages (URLs, mentions,
hashtag markers, emoji, punctuation) and computes word count, character
count, average word length and stop-word ratio for each one.

Two implementations of the same pipeline are provided: a baseline that
recompiles its patterns on every call, and an optimized one that
compiles them once. They always produce identical output.

Examples:
  # Prepare the small/medium/large datasets in ./data
  tweetprep generate --download

  # Process the medium dataset and write JSONL
  tweetprep run --size medium --format jsonl -o out.jsonl

  # Compare the two implementations
  tweetprep bench --size large

  # Clean a single message
  tweetprep clean "Loving this! 😍 https://t.co/x #happy"`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	// cfg is resolved before every command runs.
	cfg *config.Config

	configErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.tweetprep.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.Bool("log-json", false, "log as JSON")

	// Pipeline settings shared by every command
	flags.String("data-dir", "data", "dataset directory")
	flags.String("variant", "optimized", "pipeline variant: baseline, optimized")
	flags.String("stop-words", "", "YAML stop-word file (extends the default set unless it sets replace: true)")
	flags.Bool("nfkc", false, "fold compatibility and full-width characters before cleaning")
	flags.Bool("strip-html", false, "extract text from HTML markup before cleaning")
	flags.Bool("skip-invalid", false, "skip dataset rows without text instead of failing")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("log_json", flags.Lookup("log-json"))
	_ = viper.BindPFlag(config.KeyDataDir, flags.Lookup("data-dir"))
	_ = viper.BindPFlag(config.KeyVariant, flags.Lookup("variant"))
	_ = viper.BindPFlag(config.KeyStopWordsFile, flags.Lookup("stop-words"))
	_ = viper.BindPFlag(config.KeyFold, flags.Lookup("nfkc"))
	_ = viper.BindPFlag(config.KeyStripHTML, flags.Lookup("strip-html"))
	_ = viper.BindPFlag(config.KeySkipInvalid, flags.Lookup("skip-invalid"))
}

func initConfig() {
	configErr = config.Init(viper.GetViper(), viper.GetString("config"))
}

// setup initializes logging and resolves the configuration.
func setup(cmd *cobra.Command, _ []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})

	// Local flags shared by several commands are bound for the running one
	// only; viper keeps a single flag per key.
	for key, flag := range localKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}

	if configErr != nil {
		logger.Error("failed to read config", "error", configErr)
		return configErr
	}

	c, err := config.Load(viper.GetViper())
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}
	cfg = c

	logger.Debug("configuration resolved",
		"command", cmd.Name(),
		"config_file", viper.ConfigFileUsed(),
		"data_dir", cfg.DataDir,
		"variant", cfg.Variant)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// localKeys maps config keys to the command-local flags that set them.
var localKeys = map[string]string{
	config.KeySize:   "size",
	config.KeyFormat: "format",
	config.KeySeed:   "seed",
}

// loadTexts reads the dataset file for the configured size.
func loadTexts() ([]string, string, error) {
	path := cfg.DatasetPath()
	if _, err := os.Stat(path); err != nil {
		return nil, path, fmt.Errorf("dataset %s not found, run 'tweetprep generate' first: %w", path, err)
	}

	texts, err := dataset.Load(path, cfg.LoadOptions()...)
	if err != nil {
		return nil, path, err
	}
	return texts, path, nil
}

// logInfo prints a message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
