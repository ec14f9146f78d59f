package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/huesight/internal/colour"
)

// Reader decodes an xz-compressed JSONL capture.
type Reader struct {
	dec *json.Decoder
}

// NewReader wraps a capture stream in a record reader.
func NewReader(r io.Reader) (*Reader, error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xz stream: %w", err)
	}
	return &Reader{dec: json.NewDecoder(xzr)}, nil
}

// Read returns the next record, or io.EOF at the end of the capture.
func (r *Reader) Read() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if err == io.EOF {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec, nil
}

// ReplaySource adapts a capture Reader into a sample source: each
// call yields the next recorded raw sample, ignoring the recorded
// name so a (possibly different) engine can re-derive it.
type ReplaySource struct {
	reader *Reader
}

// NewReplaySource builds a replay source over a capture stream.
func NewReplaySource(r io.Reader) (*ReplaySource, error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	return &ReplaySource{reader: reader}, nil
}

// Next returns the next recorded raw sample; io.EOF at capture end.
func (s *ReplaySource) Next(ctx context.Context) (colour.RGB, error) {
	if err := ctx.Err(); err != nil {
		return colour.RGB{}, err
	}
	rec, err := s.reader.Read()
	if err != nil {
		return colour.RGB{}, err
	}
	return rec.Raw, nil
}
