package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-solitaire/internal/audio"
	"github.com/vovakirdan/tui-solitaire/internal/config"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

// openLogger returns a logger writing to --log-file, or one that
// discards everything. The returned func closes the file.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "solitaire",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens the deal history, warning and continuing without it
// on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open deal history: %v\n", err)
		return nil
	}
	return store
}

// openSound starts the audio cues when the config or --sound enables
// them. Failures are logged and play continues silently.
func openSound(force bool, logger *log.Logger) *audio.SoundManager {
	cfg, err := config.LoadSolitaire(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.DefaultSolitaireConfig()
	}
	if force {
		cfg.Audio.Enabled = true
	}

	sm := audio.NewSoundManager(cfg.Audio)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	return sm
}
