package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jmylchreest/tweetprep/pkg/preprocess"
)

// CSVHeader is the column layout written by CSVWriter.
var CSVHeader = []string{
	"original", "cleaned",
	"word_count", "char_count", "avg_word_length", "stop_word_ratio",
}

// CSVWriter writes one row per record with the features flattened into
// columns. The header is written before the first row.
type CSVWriter struct {
	w      *csv.Writer
	header bool
}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

func (w *CSVWriter) writeHeader() error {
	if w.header {
		return nil
	}
	w.header = true
	return w.w.Write(CSVHeader)
}

// Write writes a single record.
func (w *CSVWriter) Write(rec preprocess.Record) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	f := rec.Features
	return w.w.Write([]string{
		rec.Original,
		rec.Cleaned,
		strconv.Itoa(f.WordCount),
		strconv.Itoa(f.CharCount),
		strconv.FormatFloat(f.AvgWordLength, 'f', -1, 64),
		strconv.FormatFloat(f.StopWordRatio, 'f', -1, 64),
	})
}

// WriteAll writes records in order.
func (w *CSVWriter) WriteAll(recs []preprocess.Record) error {
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes the header if nothing was written yet and flushes the
// underlying writer.
func (w *CSVWriter) Flush() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

// Close flushes the writer.
func (w *CSVWriter) Close() error {
	return w.Flush()
}
