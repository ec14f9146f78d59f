// Package plugin provides the public API for huesight sample-source
// plugins. External capture integrations (cameras, screen grabbers,
// sensor bridges) should import this package instead of internal
// packages.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

// Handshake is the handshake configuration for the go-plugin
// protocol. It ensures a sample-source binary can only connect to a
// compatible host.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "HUESIGHT_PLUGIN",
	MagicCookieValue: "huesight_sample_source",
}

// SourceName is the dispense key for sample-source plugins.
const SourceName = "sample-source"

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}

// Sample is one raw RGB triple as supplied by a capture plugin.
// Channels are in [0, 1]; the host clamps out-of-range values.
type Sample struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}
