// Package executor launches sample-source plugin binaries and adapts
// them into the host's sample stream.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
	"github.com/mitchellh/go-ps"

	"github.com/jmylchreest/huesight/internal/colour"
	pluginapi "github.com/jmylchreest/huesight/pkg/plugin"
)

// ErrPluginExited marks a sample failure caused by the plugin process
// dying, as opposed to a transient RPC error from a live plugin.
var ErrPluginExited = errors.New("plugin process exited")

// sampleSource is the slice of the dispensed plugin client the
// executor pulls samples through. Narrowed so tests can substitute a
// fake without a plugin process.
type sampleSource interface {
	NextSample(ctx context.Context) (pluginapi.Sample, bool, error)
}

// Executor owns one running sample-source plugin process. It
// implements sampler.Source, so the watch pipeline can consume a
// plugin exactly like stdin or a capture replay.
type Executor struct {
	path   string
	logger hclog.Logger

	client *plugin.Client
	source sampleSource
	exited func() bool
	pid    int
}

// New creates an executor for the plugin binary at path.
// The plugin is not started until Start is called.
func New(path string, logger hclog.Logger) *Executor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Executor{
		path:   path,
		logger: logger.Named("plugin"),
	}
}

// Start launches the plugin process and dispenses its sample source.
func (e *Executor) Start(ctx context.Context) error {
	if e.client != nil {
		return fmt.Errorf("plugin already started: %s", e.path)
	}

	e.client = plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: pluginapi.Handshake,
		Plugins: map[string]plugin.Plugin{
			pluginapi.SourceName: &pluginapi.SampleSourcePlugin{},
		},
		Cmd:              exec.CommandContext(ctx, e.path), // #nosec G204 - User-specified plugin binary, intended to run
		Logger:           e.logger,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
	})

	rpcClient, err := e.client.Client()
	if err != nil {
		e.Close()
		return fmt.Errorf("failed to connect to plugin %s: %w", e.path, err)
	}

	raw, err := rpcClient.Dispense(pluginapi.SourceName)
	if err != nil {
		e.Close()
		return fmt.Errorf("failed to dispense sample source: %w", err)
	}

	source, ok := raw.(*pluginapi.SampleSourceRPCClient)
	if !ok {
		e.Close()
		return fmt.Errorf("plugin %s did not provide a sample source", e.path)
	}
	e.source = source
	e.exited = e.client.Exited

	if proc := e.client.ReattachConfig(); proc != nil {
		e.pid = proc.Pid
	}

	if info, err := source.GetMetadata(); err == nil {
		e.logger.Debug("sample source connected",
			"name", info.Name, "version", info.Version)
	}

	return nil
}

// Next pulls one raw sample from the plugin. A clean end of the
// plugin's stream maps to io.EOF; a failure from a plugin whose
// process is gone wraps ErrPluginExited.
func (e *Executor) Next(ctx context.Context) (colour.RGB, error) {
	if err := ctx.Err(); err != nil {
		return colour.RGB{}, err
	}
	if e.source == nil {
		return colour.RGB{}, fmt.Errorf("plugin not started: %s", e.path)
	}

	sample, done, err := e.source.NextSample(ctx)
	if err != nil {
		if !e.Alive() {
			return colour.RGB{}, fmt.Errorf("%w: %s: %v", ErrPluginExited, e.path, err)
		}
		return colour.RGB{}, fmt.Errorf("plugin sample failed: %w", err)
	}
	if done {
		return colour.RGB{}, io.EOF
	}

	return colour.RGB{R: sample.R, G: sample.G, B: sample.B}, nil
}

// Alive reports whether the plugin process is still running.
// Uses the go-ps library for cross-platform process discovery.
func (e *Executor) Alive() bool {
	if e.exited == nil || e.exited() {
		return false
	}
	if e.pid == 0 {
		return true
	}
	proc, err := ps.FindProcess(e.pid)
	return err == nil && proc != nil
}

// Close kills the plugin process and releases its resources.
func (e *Executor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.source = nil
		e.exited = nil
		e.pid = 0
	}
}
