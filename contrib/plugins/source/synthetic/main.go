// synthetic - Synthetic Sample Source (Huesight Plugin)
//
// Emits a deterministic sweep of RGB samples under a configurable
// lighting cast. Useful for exercising the watch pipeline and the
// white-balance adaptation without capture hardware.
//
// Build:
//   go build -o huesight-plugin-synthetic
//
// Usage:
//   huesight watch --plugin ./huesight-plugin-synthetic
//
// Environment:
//   HUESIGHT_SYNTH_SAMPLES: number of samples to emit (default: 300)
//   HUESIGHT_SYNTH_CAST: lighting cast as "r,g,b" multipliers (default: 1.2,1.0,0.9)
//
// Author: Huesight Contributors
// License: MIT

package main

import (
	"context"
	"math"
	"os"
	"strconv"
	"strings"

	pluginapi "github.com/jmylchreest/huesight/pkg/plugin"
)

// SyntheticSource implements the pluginapi.SampleSource interface.
type SyntheticSource struct {
	emitted int
	total   int
	cast    [3]float64
}

// NextSample emits the next sample of a hue sweep with the configured
// lighting cast applied, mimicking a camera panning across a scene
// under a tinted light.
func (s *SyntheticSource) NextSample(ctx context.Context) (pluginapi.Sample, bool, error) {
	if s.emitted >= s.total {
		return pluginapi.Sample{}, true, nil
	}

	t := float64(s.emitted) / float64(s.total)
	s.emitted++

	// A slow sine sweep through the RGB cube.
	r := 0.5 + 0.4*math.Sin(2*math.Pi*t)
	g := 0.5 + 0.4*math.Sin(2*math.Pi*t+2*math.Pi/3)
	b := 0.5 + 0.4*math.Sin(2*math.Pi*t+4*math.Pi/3)

	return pluginapi.Sample{
		R: math.Min(1, r*s.cast[0]),
		G: math.Min(1, g*s.cast[1]),
		B: math.Min(1, b*s.cast[2]),
	}, false, nil
}

// GetMetadata returns plugin metadata.
func (s *SyntheticSource) GetMetadata() pluginapi.PluginInfo {
	return pluginapi.PluginInfo{
		Name:            "synthetic",
		Version:         "1.0.0",
		ProtocolVersion: "1",
		Description:     "Deterministic synthetic sample sweep with a configurable lighting cast",
	}
}

func main() {
	src := &SyntheticSource{
		total: 300,
		cast:  [3]float64{1.2, 1.0, 0.9},
	}

	if v := os.Getenv("HUESIGHT_SYNTH_SAMPLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			src.total = n
		}
	}
	if v := os.Getenv("HUESIGHT_SYNTH_CAST"); v != "" {
		parts := strings.Split(v, ",")
		if len(parts) == 3 {
			for i, p := range parts {
				if f, err := strconv.ParseFloat(strings.TrimSpace(p), 64); err == nil {
					src.cast[i] = f
				}
			}
		}
	}

	pluginapi.Serve(src)
}
