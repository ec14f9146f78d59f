package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// SampleSourcePlugin implements the go-plugin Plugin interface for
// sample sources.
type SampleSourcePlugin struct {
	plugin.Plugin
	Impl SampleSource
}

// Server returns an RPC server for this plugin.
func (p *SampleSourcePlugin) Server(*plugin.MuxBroker) (any, error) {
	return &SampleSourceRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *SampleSourcePlugin) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &SampleSourceRPCClient{client: c}, nil
}

// SampleResponse is the wire form of one NextSample result. Done
// marks a clean end of stream so it survives the RPC boundary intact,
// unlike a sentinel error value.
type SampleResponse struct {
	Sample Sample
	Done   bool
}

// SampleSourceRPCServer is the RPC server implementation run inside
// the plugin process.
type SampleSourceRPCServer struct {
	Impl SampleSource
}

// NextSample implements the RPC method for pulling one sample.
func (s *SampleSourceRPCServer) NextSample(_ any, resp *SampleResponse) error {
	sample, done, err := s.Impl.NextSample(context.Background())
	if err != nil {
		return err
	}
	resp.Sample = sample
	resp.Done = done
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *SampleSourceRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// SampleSourceRPCClient is the host-side RPC client.
type SampleSourceRPCClient struct {
	client *rpc.Client
}

// NextSample calls the remote NextSample method.
func (c *SampleSourceRPCClient) NextSample(_ context.Context) (Sample, bool, error) {
	var resp SampleResponse
	if err := c.client.Call("Plugin.NextSample", new(any), &resp); err != nil {
		return Sample{}, false, err
	}
	return resp.Sample, resp.Done, nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *SampleSourceRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}
