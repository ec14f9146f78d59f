package executor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/hashicorp/go-plugin"

	pluginapi "github.com/jmylchreest/huesight/pkg/plugin"
)

// erroringSource fails every pull, standing in for a broken RPC
// connection.
type erroringSource struct {
	err error
}

func (s *erroringSource) NextSample(ctx context.Context) (pluginapi.Sample, bool, error) {
	return pluginapi.Sample{}, false, s.err
}

func TestNextBeforeStart(t *testing.T) {
	e := New("./no-such-plugin", nil)
	if _, err := e.Next(context.Background()); err == nil {
		t.Error("expected error from Next before Start")
	}
}

func TestStartTwice(t *testing.T) {
	e := New("./no-such-plugin", nil)
	e.client = plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: pluginapi.Handshake,
		Plugins: map[string]plugin.Plugin{
			pluginapi.SourceName: &pluginapi.SampleSourcePlugin{},
		},
		Cmd: exec.Command("./no-such-plugin"),
	})
	defer e.Close()

	if err := e.Start(context.Background()); err == nil {
		t.Error("expected error for second Start")
	}
}

func TestStartMissingBinary(t *testing.T) {
	e := New("./definitely-missing-plugin", nil)
	if err := e.Start(context.Background()); err == nil {
		e.Close()
		t.Fatal("expected error for missing plugin binary")
	}
	if e.Alive() {
		t.Error("failed start must not report a live plugin")
	}
}

func TestAliveTracksProcessState(t *testing.T) {
	e := New("p", nil)
	if e.Alive() {
		t.Error("unstarted executor reports alive")
	}

	// The test's own pid is the one process guaranteed to exist.
	e.exited = func() bool { return false }
	e.pid = os.Getpid()
	if !e.Alive() {
		t.Error("running process reports dead")
	}

	e.exited = func() bool { return true }
	if e.Alive() {
		t.Error("exited process reports alive")
	}
}

func TestNextDistinguishesDeadPlugin(t *testing.T) {
	rpcErr := errors.New("connection is shut down")

	e := New("p", nil)
	e.source = &erroringSource{err: rpcErr}
	e.exited = func() bool { return true }
	if _, err := e.Next(context.Background()); !errors.Is(err, ErrPluginExited) {
		t.Errorf("dead plugin: got %v, want ErrPluginExited", err)
	}

	// The same failure from a live process stays a transient error.
	e.exited = func() bool { return false }
	e.pid = os.Getpid()
	_, err := e.Next(context.Background())
	if err == nil {
		t.Fatal("expected error from erroring source")
	}
	if errors.Is(err, ErrPluginExited) {
		t.Errorf("live plugin: transient error reported as exit: %v", err)
	}
}
