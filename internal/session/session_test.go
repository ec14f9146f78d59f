package session

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/huesight/internal/classify"
	"github.com/jmylchreest/huesight/internal/colour"
)

func TestCaptureReplayReproducesNames(t *testing.T) {
	// Record a short session, then replay the raw samples through a
	// fresh engine with the same config; the names must reproduce.
	samples := []colour.RGB{
		{R: 0, G: 0.5, B: 0},
		{R: 0.9, G: 0.1, B: 0.1},
		{R: 0.5, G: 0.5, B: 0.5},
		{R: 0.1, G: 0.1, B: 0.8},
	}

	var buf bytes.Buffer
	rec, err := NewRecorder(&buf)
	require.NoError(t, err)

	live := classify.New(classify.DefaultConfig())
	var liveNames []string
	for _, s := range samples {
		name := live.Classify(s)
		liveNames = append(liveNames, name)
		require.NoError(t, rec.Write(Record{Raw: s, Name: name}))
	}
	require.NoError(t, rec.Close())

	src, err := NewReplaySource(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	replayed := classify.New(classify.DefaultConfig())
	ctx := context.Background()
	for i := range samples {
		raw, err := src.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, samples[i], raw, "sample %d", i)
		assert.Equal(t, liveNames[i], replayed.Classify(raw), "name %d", i)
	}

	_, err = src.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestRecorderFillsTimestamps(t *testing.T) {
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf)
	require.NoError(t, err)

	before := time.Now().UTC()
	require.NoError(t, rec.Write(Record{Raw: colour.RGB{R: 1}, Name: "Red"}))
	require.NoError(t, rec.Close())

	reader, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	got, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, "Red", got.Name)
	assert.False(t, got.Timestamp.Before(before), "timestamp should be filled at write time")
}

func TestReaderRejectsGarbage(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("not an xz stream")))
	assert.Error(t, err)
}

func TestReplaySourceHonoursCancel(t *testing.T) {
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf)
	require.NoError(t, err)
	require.NoError(t, rec.Write(Record{Raw: colour.RGB{R: 0.5}}))
	require.NoError(t, rec.Close())

	src, err := NewReplaySource(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
