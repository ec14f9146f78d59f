package sampler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmylchreest/huesight/internal/colour"
)

// Source supplies raw RGB samples, one per frame or interval. It is
// the seam between frame acquisition (camera, plugin process, capture
// replay) and the engine: implementations own the expensive pixel
// work, the engine only sees triples.
type Source interface {
	// Next returns the next raw sample. io.EOF signals a clean end
	// of the stream.
	Next(ctx context.Context) (colour.RGB, error)
}

// LineSource reads whitespace-separated "r g b" float triples, one
// per line, from a reader. Blank lines and lines starting with '#'
// are skipped. Used for stdin-driven streaming and test fixtures.
type LineSource struct {
	scanner *bufio.Scanner
}

// NewLineSource wraps a reader in a line-oriented sample source.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

// Next parses the next sample line. Channels outside [0, 1] are
// clamped by the engine, not here; malformed lines are an error.
func (s *LineSource) Next(ctx context.Context) (colour.RGB, error) {
	for {
		if err := ctx.Err(); err != nil {
			return colour.RGB{}, err
		}

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return colour.RGB{}, fmt.Errorf("failed to read sample line: %w", err)
			}
			return colour.RGB{}, io.EOF
		}

		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return colour.RGB{}, fmt.Errorf("malformed sample line %q: want 3 fields", line)
		}

		var ch [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return colour.RGB{}, fmt.Errorf("malformed sample line %q: %w", line, err)
			}
			ch[i] = v
		}

		return colour.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	}
}
