package plugin

import "context"

// SampleSource is the interface sample-source plugins must implement
// for go-plugin RPC. The host pulls one sample per call; the plugin
// owns frame acquisition and pixel averaging.
type SampleSource interface {
	// NextSample returns the next raw sample. done reports a clean
	// end of the stream (device closed, capture finished).
	NextSample(ctx context.Context) (sample Sample, done bool, err error)

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}
