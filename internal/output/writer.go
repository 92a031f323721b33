// Package output writes batch inspection results as JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/alphadepth-go/internal/config"
	"github.com/lgbarn/alphadepth-go/internal/position"
)

// ResultWriter is the interface for writing batch results to output.
// Different implementations handle different layouts (JSON lines, JSON array).
type ResultWriter interface {
	// WriteSnapshot writes the snapshot of a valid input line.
	WriteSnapshot(snap *position.Snapshot) error

	// WriteError writes an error record for a rejected input line.
	WriteError(rec *ErrorRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSONArrayWriter), this also writes any pending output.
	Close() error
}

// ErrorRecord reports an input line that could not be inspected.
type ErrorRecord struct {
	Line  int    `json:"line"`
	FEN   string `json:"fen"`
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// NewErrorRecord builds the record for a failed line.
func NewErrorRecord(line int, fen string, err error) *ErrorRecord {
	rec := &ErrorRecord{Line: line, FEN: fen, Error: err.Error()}
	if kind, ok := position.KindOf(err); ok {
		rec.Kind = kind.String()
	}
	return rec
}

// NewWriter returns the writer for cfg.Format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) ResultWriter {
	if cfg.Format == config.JSONArray {
		return NewJSONArrayWriter(w, cfg.Indent)
	}
	return NewJSONLinesWriter(w)
}

// JSONLinesWriter writes one JSON object per line as results arrive.
type JSONLinesWriter struct {
	enc *json.Encoder
}

// NewJSONLinesWriter creates a new JSON-lines writer.
func NewJSONLinesWriter(w io.Writer) *JSONLinesWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLinesWriter{enc: enc}
}

// WriteSnapshot encodes snap on its own line.
func (jw *JSONLinesWriter) WriteSnapshot(snap *position.Snapshot) error {
	return jw.enc.Encode(snap)
}

// WriteError encodes rec on its own line.
func (jw *JSONLinesWriter) WriteError(rec *ErrorRecord) error {
	return jw.enc.Encode(rec)
}

// Flush is a no-op; every record is written immediately.
func (jw *JSONLinesWriter) Flush() error {
	return nil
}

// Close closes the JSON-lines writer.
func (jw *JSONLinesWriter) Close() error {
	return nil
}

// JSONArrayWriter writes results in JSON format.
// It buffers records and writes them as a JSON array on Close or Flush.
type JSONArrayWriter struct {
	w       io.Writer
	indent  bool
	records []interface{}
}

// NewJSONArrayWriter creates a new JSON array writer.
func NewJSONArrayWriter(w io.Writer, indent bool) *JSONArrayWriter {
	return &JSONArrayWriter{
		w:       w,
		indent:  indent,
		records: make([]interface{}, 0),
	}
}

// WriteSnapshot buffers snap for array output.
func (jw *JSONArrayWriter) WriteSnapshot(snap *position.Snapshot) error {
	jw.records = append(jw.records, snap)
	return nil
}

// WriteError buffers rec for array output.
func (jw *JSONArrayWriter) WriteError(rec *ErrorRecord) error {
	jw.records = append(jw.records, rec)
	return nil
}

// Flush writes all buffered records as a JSON array.
func (jw *JSONArrayWriter) Flush() error {
	if len(jw.records) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetEscapeHTML(false)
	if jw.indent {
		enc.SetIndent("", "  ")
	}
	err := enc.Encode(jw.records)

	// Clear buffer after writing
	jw.records = jw.records[:0]

	return err
}

// Close flushes and closes the JSON array writer.
func (jw *JSONArrayWriter) Close() error {
	return jw.Flush()
}
