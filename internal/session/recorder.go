// Package session captures classification sessions to compressed
// JSONL files and replays them. A capture taken in the field can be
// fed back through a fresh engine to reproduce the exact sequence of
// names offline.
package session

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/huesight/internal/colour"
)

// Record is one captured sample: the raw triple as the sampler
// produced it, the name the engine resolved, and when.
type Record struct {
	Timestamp time.Time  `json:"ts"`
	Raw       colour.RGB `json:"raw"`
	Name      string     `json:"name"`
}

// Recorder writes records as xz-compressed JSON lines.
type Recorder struct {
	xzw *xz.Writer
	enc *json.Encoder
	out io.Closer
}

// NewRecorder wraps a writer in an xz-compressed JSONL recorder.
// The caller keeps ownership of underlying file closing if w is not
// an io.Closer; Close always flushes the compressor.
func NewRecorder(w io.Writer) (*Recorder, error) {
	xzw, err := xz.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz writer: %w", err)
	}

	r := &Recorder{
		xzw: xzw,
		enc: json.NewEncoder(xzw),
	}
	if c, ok := w.(io.Closer); ok {
		r.out = c
	}
	return r, nil
}

// Write appends one record to the capture.
func (r *Recorder) Write(rec Record) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	if err := r.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}

// Close flushes the compressed stream and closes the underlying
// writer if the recorder owns one.
func (r *Recorder) Close() error {
	if err := r.xzw.Close(); err != nil {
		return fmt.Errorf("failed to close xz stream: %w", err)
	}
	if r.out != nil {
		if err := r.out.Close(); err != nil {
			return fmt.Errorf("failed to close capture output: %w", err)
		}
	}
	return nil
}
