package sampler

import (
	"context"
	"errors"
	"io"

	"github.com/jmylchreest/huesight/internal/classify"
	"github.com/jmylchreest/huesight/internal/colour"
)

// Observation is one classified sample as seen by driver callbacks.
type Observation struct {
	Raw     colour.RGB
	Name    string
	Changed bool // first time this name appeared since the last one
}

// Driver pumps a Source through an Engine. Classification stays
// serialized on the driver goroutine; consumers either register a
// callback or poll Engine.LastName from elsewhere.
type Driver struct {
	engine *classify.Engine
	source Source

	// OnSample, when set, is invoked for every classified sample.
	OnSample func(Observation)
}

// NewDriver couples a sample source to a classification engine.
func NewDriver(engine *classify.Engine, source Source) *Driver {
	return &Driver{engine: engine, source: source}
}

// Run consumes the source until it ends or the context is cancelled.
// A clean end of stream (io.EOF) is not an error.
func (d *Driver) Run(ctx context.Context) error {
	var lastName string

	for {
		raw, err := d.source.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		name := d.engine.Classify(raw)
		if d.OnSample != nil {
			d.OnSample(Observation{
				Raw:     raw,
				Name:    name,
				Changed: name != lastName,
			})
		}
		lastName = name
	}
}
