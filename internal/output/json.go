package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

// JSONWriter buffers records and writes them as one JSON array on Flush.
type JSONWriter struct {
	w       *bufio.Writer
	pretty  bool
	indent  string
	records []preprocess.Record
	flushed bool
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:       bufio.NewWriter(w),
		pretty:  pretty,
		indent:  indent,
		records: make([]preprocess.Record, 0),
	}
}

// Write buffers a single record.
func (w *JSONWriter) Write(rec preprocess.Record) error {
	w.records = append(w.records, rec)
	return nil
}

// WriteAll buffers records.
func (w *JSONWriter) WriteAll(recs []preprocess.Record) error {
	w.records = append(w.records, recs...)
	return nil
}

// Flush writes the buffered records as a JSON array. An empty writer
// produces "[]".
func (w *JSONWriter) Flush() error {
	if w.flushed {
		return w.w.Flush()
	}

	var output []byte
	var err error
	if w.pretty {
		output, err = json.MarshalIndent(w.records, "", w.indent)
	} else {
		output, err = json.Marshal(w.records)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(output); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}

	w.flushed = true
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}

// JSONLWriter writes newline-delimited JSON (JSONL), one record per line.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single record as a JSON line.
func (w *JSONLWriter) Write(rec preprocess.Record) error {
	output, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if _, err := w.w.Write(output); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// WriteAll writes records as JSON lines.
func (w *JSONLWriter) WriteAll(recs []preprocess.Record) error {
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.Flush()
}
