package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

// YAMLWriter buffers records and writes them as a YAML sequence on Flush.
type YAMLWriter struct {
	w       *bufio.Writer
	records []preprocess.Record
	flushed bool
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:       bufio.NewWriter(w),
		records: make([]preprocess.Record, 0),
	}
}

// Write buffers a single record.
func (w *YAMLWriter) Write(rec preprocess.Record) error {
	w.records = append(w.records, rec)
	return nil
}

// WriteAll buffers records.
func (w *YAMLWriter) WriteAll(recs []preprocess.Record) error {
	w.records = append(w.records, recs...)
	return nil
}

// Flush writes the buffered records.
func (w *YAMLWriter) Flush() error {
	if w.flushed {
		return w.w.Flush()
	}

	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(w.records); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	w.flushed = true
	return w.w.Flush()
}

// Close flushes the writer.
func (w *YAMLWriter) Close() error {
	return w.Flush()
}
