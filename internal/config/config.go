// Package config resolves CLI settings from flags, environment variables
// and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmylchreest/tweetprep/internal/dataset"
	"github.com/jmylchreest/tweetprep/internal/logger"
	"github.com/jmylchreest/tweetprep/pkg/cleaner"
	"github.com/jmylchreest/tweetprep/pkg/lexicon"
	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

// EnvPrefix prefixes every environment variable, e.g. TWEETPREP_DATA_DIR.
const EnvPrefix = "TWEETPREP"

// FileName is the config file name searched for in $HOME and the working
// directory, without extension.
const FileName = ".tweetprep"

// Viper keys.
const (
	KeyDataDir       = "data_dir"
	KeySize          = "size"
	KeyVariant       = "variant"
	KeyFormat        = "format"
	KeyStopWordsFile = "stop_words_file"
	KeySeed          = "seed"
	KeySkipInvalid   = "skip_invalid"
	KeyDatasetURLs   = "dataset_urls"
	KeyFold          = "nfkc"
	KeyStripHTML     = "strip_html"
)

// ErrInvalid is returned when the resolved settings fail validation.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	DataDir       string   `mapstructure:"data_dir" validate:"required"`
	Size          string   `mapstructure:"size" validate:"oneof=small medium large"`
	Variant       string   `mapstructure:"variant" validate:"oneof=baseline optimized"`
	Format        string   `mapstructure:"format" validate:"oneof=json jsonl yaml csv"`
	StopWordsFile string   `mapstructure:"stop_words_file" validate:"omitempty,file"`
	Seed          uint64   `mapstructure:"seed"`
	SkipInvalid   bool     `mapstructure:"skip_invalid"`
	DatasetURLs   []string `mapstructure:"dataset_urls" validate:"dive,url"`
	Fold          bool     `mapstructure:"nfkc"`
	StripHTML     bool     `mapstructure:"strip_html"`
}

// SetDefaults registers the default of every key on v. Keys only become
// visible to environment lookup once they have a default.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataDir, "data")
	v.SetDefault(KeySize, string(dataset.SizeSmall))
	v.SetDefault(KeyVariant, preprocess.VariantOptimized)
	v.SetDefault(KeyFormat, "json")
	v.SetDefault(KeyStopWordsFile, "")
	v.SetDefault(KeySeed, dataset.DefaultSeed)
	v.SetDefault(KeySkipInvalid, false)
	v.SetDefault(KeyDatasetURLs, dataset.DefaultURLs)
	v.SetDefault(KeyFold, false)
	v.SetDefault(KeyStripHTML, false)
}

// Init prepares v to read cfgFile, or .tweetprep.yaml from $HOME or the
// working directory when cfgFile is empty, plus TWEETPREP_* variables.
// A missing config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			errs := make([]error, 0, len(verrs))
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Lexicon returns the stop-word set: the file named by StopWordsFile, or the
// default set.
func (c *Config) Lexicon() (*lexicon.Lexicon, error) {
	if c.StopWordsFile == "" {
		return lexicon.Default(), nil
	}
	lex, err := lexicon.LoadFile(c.StopWordsFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("stop words loaded", "file", c.StopWordsFile, "words", lex.Words())
	return lex, nil
}

// Prestages returns the cleaners that run before the variant's cleaner, in
// order: HTML extraction first, then Unicode folding.
func (c *Config) Prestages() []cleaner.Cleaner {
	var stages []cleaner.Cleaner
	if c.StripHTML {
		stages = append(stages, cleaner.NewHTMLText())
	}
	if c.Fold {
		stages = append(stages, cleaner.NewUnicodeFold())
	}
	return stages
}

// Pipeline builds the configured variant.
func (c *Config) Pipeline() (*preprocess.Pipeline, error) {
	lex, err := c.Lexicon()
	if err != nil {
		return nil, err
	}
	return preprocess.NewVariant(c.Variant, lex, nil, c.Prestages()...)
}

// DatasetPath returns the prepared file for the configured size.
func (c *Config) DatasetPath() string {
	return dataset.Path(c.DataDir, dataset.Size(c.Size))
}

// LoadOptions returns the dataset options implied by the settings.
func (c *Config) LoadOptions() []dataset.LoadOption {
	if c.SkipInvalid {
		return []dataset.LoadOption{dataset.WithSkipInvalid()}
	}
	return nil
}
