package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huesight/internal/classify"
	"github.com/jmylchreest/huesight/internal/plugin/executor"
	"github.com/jmylchreest/huesight/internal/sampler"
	"github.com/jmylchreest/huesight/internal/session"
	"github.com/jmylchreest/huesight/internal/store"
)

// newWatchCmd builds the streaming watch command.
func newWatchCmd() *cobra.Command {
	var (
		watchPlugin  string
		watchReplay  string
		watchRecord  string
		watchDB      string
		watchDBLabel string
		watchAll     bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Continuously classify a sample stream",
		Long: `Watch a stream of raw RGB samples and print colour names as they
change. This is the adaptive mode: a rolling history of samples feeds
a gray-world white-balance correction, so classifications stay stable
while ambient lighting drifts.

Samples come from stdin by default, one "r g b" triple per line with
channels in [0,1]. --plugin streams from a sample-source plugin
binary; --replay re-runs a previous capture.

Examples:
  # Classify samples piped from another process
  capture-tool | huesight watch

  # Stream from a camera plugin, recording the session
  huesight watch --plugin ./huesight-plugin-v4l2 --record kitchen.jsonl.xz

  # Re-run a capture and log every observation to sqlite
  huesight watch --replay kitchen.jsonl.xz --db observations.db --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, watchPlugin, watchReplay, watchRecord, watchDB, watchDBLabel, watchAll)
		},
	}

	cmd.Flags().StringVar(&watchPlugin, "plugin", "", "sample-source plugin binary to stream from")
	cmd.Flags().StringVar(&watchReplay, "replay", "", "capture file to replay instead of a live stream")
	cmd.Flags().StringVar(&watchRecord, "record", "", "record the session to an xz-compressed capture file")
	cmd.Flags().StringVar(&watchDB, "db", "", "sqlite database to log observations to")
	cmd.Flags().StringVar(&watchDBLabel, "db-label", "", "session label for the observation log")
	cmd.Flags().BoolVar(&watchAll, "all", false, "print every sample, not only name changes")

	return cmd
}

// runWatch executes the watch command.
func runWatch(cmd *cobra.Command, pluginPath, replayPath, recordPath, dbPath, dbLabel string, all bool) error {
	if pluginPath != "" && replayPath != "" {
		return fmt.Errorf("--plugin and --replay are mutually exclusive")
	}

	logger := newLogger(cmd)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Source selection: plugin process, capture replay, or stdin.
	var source sampler.Source
	switch {
	case pluginPath != "":
		exec := executor.New(pluginPath, logger)
		if err := exec.Start(ctx); err != nil {
			return err
		}
		defer exec.Close()
		source = exec
		logger.Info("streaming from plugin", "path", pluginPath)
	case replayPath != "":
		f, err := os.Open(replayPath) // #nosec G304 - User-specified capture path, intended to be read
		if err != nil {
			return fmt.Errorf("failed to open capture: %w", err)
		}
		defer f.Close()
		source, err = session.NewReplaySource(f)
		if err != nil {
			return err
		}
		logger.Info("replaying capture", "path", replayPath)
	default:
		source = sampler.NewLineSource(os.Stdin)
	}

	// Optional capture recording.
	var recorder *session.Recorder
	if recordPath != "" {
		f, err := os.Create(recordPath) // #nosec G304 - User-specified capture path, intended to be written
		if err != nil {
			return fmt.Errorf("failed to create capture file: %w", err)
		}
		recorder, err = session.NewRecorder(f)
		if err != nil {
			f.Close()
			return err
		}
		defer func() {
			if err := recorder.Close(); err != nil {
				logger.Error("failed to finalise capture", "error", err)
			}
		}()
	}

	// Optional observation log.
	var db *store.DB
	var sessionID int64
	if dbPath != "" {
		var err error
		db, err = store.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		sessionID, err = db.BeginSession(dbLabel)
		if err != nil {
			return err
		}
	}

	engine := classify.New(classify.DefaultConfig())
	driver := sampler.NewDriver(engine, source)
	driver.OnSample = func(obs sampler.Observation) {
		now := time.Now().UTC()
		if all || obs.Changed {
			fmt.Printf("%s  %s\n", obs.Name, obs.Raw.Hex())
		}
		if recorder != nil {
			if err := recorder.Write(session.Record{Timestamp: now, Raw: obs.Raw, Name: obs.Name}); err != nil {
				logger.Error("failed to record sample", "error", err)
			}
		}
		if db != nil {
			if err := db.RecordObservation(sessionID, now, obs.Raw, obs.Name); err != nil {
				logger.Error("failed to log observation", "error", err)
			}
		}
	}

	if err := driver.Run(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Debug("watch interrupted")
			return nil
		}
		if errors.Is(err, executor.ErrPluginExited) {
			logger.Error("sample-source plugin died", "path", pluginPath)
		}
		return err
	}
	return nil
}
