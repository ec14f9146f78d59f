package plugin

import (
	"github.com/hashicorp/go-plugin"
)

// Serve runs a sample-source implementation as a plugin process.
// Plugin binaries call this from main and block until the host
// disconnects.
func Serve(impl SampleSource) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			SourceName: &SampleSourcePlugin{Impl: impl},
		},
	})
}
