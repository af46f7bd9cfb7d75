// Package dataset reads, writes, generates and downloads the tabular tweet
// files the CLI processes. A dataset file is a CSV with a header row and a
// text column.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jmylchreest/tweetprep/internal/logger"
	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

// DefaultColumn is the name of the text column.
const DefaultColumn = "text"

// ErrNoTextColumn is returned when none of the candidate columns is present.
var ErrNoTextColumn = errors.New("no text column found")

// nullMarkers are the cell values treated as a missing text, following the
// pandas defaults datasets are usually exported with.
var nullMarkers = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
	"None": {},
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	columns     []string
	skipInvalid bool
	maxRows     int
	minRunes    int
}

// WithColumns sets the candidate text column names, tried in order.
func WithColumns(names ...string) LoadOption {
	return func(c *loadConfig) { c.columns = names }
}

// WithSkipInvalid skips rows whose text is missing instead of failing. Each
// skipped row is logged as a warning.
func WithSkipInvalid() LoadOption {
	return func(c *loadConfig) { c.skipInvalid = true }
}

// WithMaxRows stops after n data rows (0 = no limit).
func WithMaxRows(n int) LoadOption {
	return func(c *loadConfig) { c.maxRows = n }
}

// WithMinLength keeps only texts longer than n characters.
func WithMinLength(n int) LoadOption {
	return func(c *loadConfig) { c.minRunes = n }
}

// Load reads the text column of the CSV file at path.
func Load(path string, opts ...LoadOption) ([]string, error) {
	defer logger.Timed("dataset loaded", "path", path)()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	texts, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return texts, nil
}

// Read reads the text column of CSV data. A row without a text value fails
// with preprocess.ErrInvalidInputKind unless WithSkipInvalid is set.
func Read(r io.Reader, opts ...LoadOption) ([]string, error) {
	cfg := &loadConfig{columns: []string{DefaultColumn}}
	for _, opt := range opts {
		opt(cfg)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header: %w", ErrNoTextColumn)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	col := columnIndex(header, cfg.columns)
	if col < 0 {
		return nil, fmt.Errorf("%w (want one of %v, have %v)", ErrNoTextColumn, cfg.columns, header)
	}

	var texts []string
	for row := 1; cfg.maxRows == 0 || row <= cfg.maxRows; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if cfg.skipInvalid {
				logger.Warn("skipping malformed row", "row", row, "error", err)
				continue
			}
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		text, ok := cell(record, col)
		if !ok {
			if cfg.skipInvalid {
				logger.Warn("skipping row without text", "row", row)
				continue
			}
			return nil, fmt.Errorf("row %d: %w", row, preprocess.ErrInvalidInputKind)
		}
		if cfg.minRunes > 0 && utf8.RuneCountInString(text) <= cfg.minRunes {
			continue
		}
		texts = append(texts, text)
	}

	return texts, nil
}

// columnIndex returns the index of the first candidate present in header.
func columnIndex(header, candidates []string) int {
	for _, want := range candidates {
		for i, name := range header {
			if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) == want {
				return i
			}
		}
	}
	return -1
}

// cell returns the text at col and whether it holds a value.
func cell(record []string, col int) (string, bool) {
	if col >= len(record) {
		return "", false
	}
	if _, null := nullMarkers[record[col]]; null {
		return "", false
	}
	return record[col], true
}

// Save writes texts as a single-column CSV file, creating parent
// directories as needed.
func Save(path string, texts []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}

	if err := Write(f, texts); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Write writes texts as CSV with a text header.
func Write(w io.Writer, texts []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{DefaultColumn}); err != nil {
		return err
	}
	for _, text := range texts {
		if err := cw.Write([]string{text}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
