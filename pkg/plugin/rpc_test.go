package plugin

import (
	"context"
	"errors"
	"testing"
)

// scriptedSource yields a fixed sequence then reports done.
type scriptedSource struct {
	samples []Sample
	next    int
	fail    error
}

func (s *scriptedSource) NextSample(ctx context.Context) (Sample, bool, error) {
	if s.fail != nil {
		return Sample{}, false, s.fail
	}
	if s.next >= len(s.samples) {
		return Sample{}, true, nil
	}
	sample := s.samples[s.next]
	s.next++
	return sample, false, nil
}

func (s *scriptedSource) GetMetadata() PluginInfo {
	return PluginInfo{Name: "scripted", Version: "0.0.1", ProtocolVersion: "1"}
}

func TestRPCServerPassesSamplesThrough(t *testing.T) {
	server := &SampleSourceRPCServer{Impl: &scriptedSource{
		samples: []Sample{{R: 0.1, G: 0.2, B: 0.3}},
	}}

	var resp SampleResponse
	if err := server.NextSample(nil, &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Done {
		t.Fatal("stream ended early")
	}
	if resp.Sample != (Sample{R: 0.1, G: 0.2, B: 0.3}) {
		t.Errorf("sample: got %+v", resp.Sample)
	}

	// Exhausted source signals done through the response, not an
	// error, so it survives the RPC boundary.
	resp = SampleResponse{}
	if err := server.NextSample(nil, &resp); err != nil {
		t.Fatalf("unexpected error at end of stream: %v", err)
	}
	if !resp.Done {
		t.Error("expected done at end of stream")
	}
}

func TestRPCServerPropagatesErrors(t *testing.T) {
	wantErr := errors.New("device unplugged")
	server := &SampleSourceRPCServer{Impl: &scriptedSource{fail: wantErr}}

	var resp SampleResponse
	if err := server.NextSample(nil, &resp); !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}

func TestRPCServerMetadata(t *testing.T) {
	server := &SampleSourceRPCServer{Impl: &scriptedSource{}}
	var info PluginInfo
	if err := server.GetMetadata(nil, &info); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Name != "scripted" {
		t.Errorf("metadata name: got %q", info.Name)
	}
}

func TestHandshakeConfigured(t *testing.T) {
	if Handshake.MagicCookieKey == "" || Handshake.MagicCookieValue == "" {
		t.Error("handshake magic cookie must be set")
	}
	if Handshake.ProtocolVersion == 0 {
		t.Error("handshake protocol version must be set")
	}
}
