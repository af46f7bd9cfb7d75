package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/jmylchreest/tweetprep/internal/dataset"
	"github.com/jmylchreest/tweetprep/internal/logger"
	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	if err := Init(v, ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DataDir != "data" || cfg.Size != "small" || cfg.Variant != preprocess.VariantOptimized || cfg.Format != "json" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Seed != dataset.DefaultSeed {
		t.Errorf("Seed = %d, want %d", cfg.Seed, dataset.DefaultSeed)
	}
	if !reflect.DeepEqual(cfg.DatasetURLs, dataset.DefaultURLs) {
		t.Errorf("DatasetURLs = %v", cfg.DatasetURLs)
	}
	if got := cfg.DatasetPath(); got != filepath.Join("data", "tweets_small.csv") {
		t.Errorf("DatasetPath() = %q", got)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, "cfg.yaml", `
data_dir: /tmp/tweets
size: medium
variant: baseline
format: csv
seed: 7
skip_invalid: true
`)
	t.Setenv("TWEETPREP_FORMAT", "jsonl")

	v := viper.New()
	if err := Init(v, path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DataDir != "/tmp/tweets" || cfg.Size != "medium" || cfg.Variant != "baseline" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Format != "jsonl" {
		t.Errorf("env should override file, Format = %q", cfg.Format)
	}
	if cfg.Seed != 7 || !cfg.SkipInvalid {
		t.Errorf("Seed = %d, SkipInvalid = %v", cfg.Seed, cfg.SkipInvalid)
	}
	if len(cfg.LoadOptions()) != 1 {
		t.Errorf("expected skip-invalid load option")
	}
}

func TestInit_MissingExplicitFile(t *testing.T) {
	v := viper.New()
	if err := Init(v, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{DataDir: "data", Size: "small", Variant: "optimized", Format: "json"}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"size", func(c *Config) { c.Size = "huge" }},
		{"variant", func(c *Config) { c.Variant = "fast" }},
		{"format", func(c *Config) { c.Format = "xml" }},
		{"data_dir", func(c *Config) { c.DataDir = "" }},
		{"url", func(c *Config) { c.DatasetURLs = []string{"not a url"} }},
		{"stop_words_file", func(c *Config) { c.StopWordsFile = "/nonexistent/words.yaml" }},
	}

	base := valid()
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLexicon_LogsLoadedWords(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { logger.Init(logger.Options{}) })

	cfg := Config{StopWordsFile: writeFile(t, "stop.yaml", "replace: true\nwords: [zebra, apple]\n")}
	if _, err := cfg.Lexicon(); err != nil {
		t.Fatalf("Lexicon() error = %v", err)
	}

	if out := buf.String(); !strings.Contains(out, "stop words loaded") || !strings.Contains(out, "[apple zebra]") {
		t.Errorf("log output = %q, want sorted word list", out)
	}
}

func TestPipeline(t *testing.T) {
	words := writeFile(t, "stop.yaml", "replace: true\nwords: [hello]\n")
	cfg := Config{
		DataDir:       "data",
		Size:          "small",
		Variant:       "baseline",
		Format:        "json",
		StopWordsFile: words,
		StripHTML:     true,
		Fold:          true,
	}

	lex, err := cfg.Lexicon()
	if err != nil {
		t.Fatalf("Lexicon() error = %v", err)
	}
	if lex.Len() != 1 || !lex.Contains("hello") {
		t.Errorf("Lexicon() = %v", lex.Words())
	}

	p, err := cfg.Pipeline()
	if err != nil {
		t.Fatalf("Pipeline() error = %v", err)
	}
	if got, want := p.Name(), "chain(html-text->unicode-fold->baseline)+baseline"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}

	rec, err := p.Process("<b>Ｈｅｌｌｏ</b> world")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if rec.Cleaned != "hello world" {
		t.Errorf("Cleaned = %q", rec.Cleaned)
	}
	if rec.Features.StopWordRatio != 0.5 {
		t.Errorf("StopWordRatio = %v, want 0.5", rec.Features.StopWordRatio)
	}
}

func TestPipeline_UnknownVariant(t *testing.T) {
	cfg := Config{Variant: "turbo"}
	if _, err := cfg.Pipeline(); !errors.Is(err, preprocess.ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
}
