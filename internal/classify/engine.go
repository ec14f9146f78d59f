// Package classify implements the adaptive colour classification
// engine: a rolling sample history feeds a gray-world white-balance
// correction that is applied to each incoming sample before it is
// named through the taxonomy.
package classify

import (
	"sync"

	"github.com/jmylchreest/huesight/internal/colour"
	"github.com/jmylchreest/huesight/internal/naming"
)

// Config holds the tuning constants of the adaptive engine.
type Config struct {
	// HistorySize is the capacity of the rolling sample history.
	HistorySize int
	// WarmupSamples is the minimum history length before the white
	// balance starts adapting.
	WarmupSamples int
	// Smoothing is the exponential blend weight of each balance
	// update. Small values prevent visible flicker when lighting
	// changes abruptly.
	Smoothing float64
	// NoiseFloor is the minimum scene gray level for an update;
	// near-black frames would otherwise produce wild corrections.
	NoiseFloor float64
	// MinFactor and MaxFactor clamp each balance factor.
	MinFactor float64
	MaxFactor float64
	// ChannelFloor guards the per-channel mean against division
	// blowup when a channel is almost absent from the scene.
	ChannelFloor float64
	// Adaptive gates the white-balance feedback loop entirely.
	// Disabled, the engine classifies with the identity balance,
	// which is what one-shot CLI use and boundary tests need.
	Adaptive bool
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		HistorySize:   30,
		WarmupSamples: 10,
		Smoothing:     0.1,
		NoiseFloor:    0.05,
		MinFactor:     0.5,
		MaxFactor:     2.0,
		ChannelFloor:  0.01,
		Adaptive:      true,
	}
}

// Engine is a single classification session. All mutating state
// (sample history, balance factors) lives here; construct one per
// session and call Reset when the scene changes.
//
// Classification is serialized internally: Classify performs a
// read-modify-write of the history and balance under a mutex, while
// LastName and Balance may be read concurrently from other
// goroutines.
type Engine struct {
	cfg Config

	mu       sync.Mutex
	history  []colour.RGB
	balance  [3]float64
	lastName string
}

// New constructs an engine with an empty history and the identity
// balance {1, 1, 1}. Non-positive config fields fall back to the
// defaults so a zero Config does not divide by zero.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = def.HistorySize
	}
	if cfg.WarmupSamples <= 0 {
		cfg.WarmupSamples = def.WarmupSamples
	}
	if cfg.Smoothing <= 0 {
		cfg.Smoothing = def.Smoothing
	}
	if cfg.NoiseFloor <= 0 {
		cfg.NoiseFloor = def.NoiseFloor
	}
	if cfg.MinFactor <= 0 {
		cfg.MinFactor = def.MinFactor
	}
	if cfg.MaxFactor <= 0 {
		cfg.MaxFactor = def.MaxFactor
	}
	if cfg.ChannelFloor <= 0 {
		cfg.ChannelFloor = def.ChannelFloor
	}

	e := &Engine{
		cfg:     cfg,
		history: make([]colour.RGB, 0, cfg.HistorySize),
	}
	e.balance = [3]float64{1, 1, 1}
	return e
}

// Classify records a raw sample, updates the white balance when
// eligible, and returns the colour name of the corrected sample.
// Out-of-range channels are clamped; there is no error path.
func (e *Engine) Classify(raw colour.RGB) string {
	raw = raw.Clamp()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg.Adaptive {
		e.recordSample(raw)
		e.recomputeBalance()
	}

	corrected := raw.Scale(e.balance)
	name := nameOf(corrected)
	e.lastName = name
	return name
}

// nameOf converts a corrected sample to HSL and resolves it through
// the taxonomy. Chroma is computed on the corrected linear RGB, not
// from HSL, because saturation is unreliable near black.
func nameOf(corrected colour.RGB) string {
	hsl := colour.RGBToHSL(corrected)
	chroma := corrected.Chroma()
	return naming.Resolve(hsl.HueDegrees(), hsl.S*100, hsl.L*100, chroma)
}

// recordSample appends to the history, evicting the oldest sample
// once capacity is reached. Insertion order is temporal order.
func (e *Engine) recordSample(s colour.RGB) {
	if len(e.history) >= e.cfg.HistorySize {
		copy(e.history, e.history[1:])
		e.history = e.history[:len(e.history)-1]
	}
	e.history = append(e.history, s)
}

// recomputeBalance derives the gray-world correction from the current
// history and blends the balance toward it. The scene's time-averaged
// colour is assumed neutral gray; the per-channel scale that would
// make it so cancels the ambient cast. Each update is an exponential
// smoothing step, never a jump, and every factor stays clamped.
func (e *Engine) recomputeBalance() {
	if len(e.history) < e.cfg.WarmupSamples {
		return
	}

	var sumR, sumG, sumB float64
	for _, s := range e.history {
		sumR += s.R
		sumG += s.G
		sumB += s.B
	}
	n := float64(len(e.history))
	meanR, meanG, meanB := sumR/n, sumG/n, sumB/n

	grayTarget := (meanR + meanG + meanB) / 3.0
	if grayTarget <= e.cfg.NoiseFloor {
		// Near-black scene; leave the balance alone.
		return
	}

	means := [3]float64{meanR, meanG, meanB}
	for i, mean := range means {
		if mean < e.cfg.ChannelFloor {
			mean = e.cfg.ChannelFloor
		}
		ideal := grayTarget / mean
		blended := e.balance[i]*(1.0-e.cfg.Smoothing) + ideal*e.cfg.Smoothing
		e.balance[i] = clampFactor(blended, e.cfg.MinFactor, e.cfg.MaxFactor)
	}
}

func clampFactor(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Correct applies the current white balance to a sample without
// recording it. Useful for inspecting what the engine would see.
func (e *Engine) Correct(raw colour.RGB) colour.RGB {
	e.mu.Lock()
	defer e.mu.Unlock()
	return raw.Clamp().Scale(e.balance)
}

// Balance returns a snapshot of the current white-balance factors.
func (e *Engine) Balance() [3]float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balance
}

// LastName returns the most recently produced colour name, or the
// empty string before the first classification. Safe to call from a
// consumer goroutine while a producer drives Classify.
func (e *Engine) LastName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastName
}

// HistoryLen returns the current sample history length.
func (e *Engine) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.history)
}

// Reset clears the history and restores the identity balance.
// Called when switching scenes or between tests.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history = e.history[:0]
	e.balance = [3]float64{1, 1, 1}
	e.lastName = ""
}
