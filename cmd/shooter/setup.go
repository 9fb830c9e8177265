package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/audio"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

// expandPath replaces a leading ~ with the home directory.
func expandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "shooter",
		Level:           lvl,
	}), nil
}

// openFileLogger logs to path, appending. The returned func closes the file.
func openFileLogger(path, level string) (*log.Logger, func(), error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// loadGameConfig loads the config file and applies the command-line overrides.
func loadGameConfig() (config.ShooterConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS != 0 {
		cfg.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return config.ShooterConfig{}, err
	}
	return cfg, nil
}

// sessionSeed returns the --seed value, or a time-based seed when unset.
func sessionSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// startAudio loads the configured sounds and opens the output device.
// Sound files that fail to load are fatal; a missing output device only
// mutes the game. The returned func stops playback.
func startAudio(cfg config.ShooterConfig, mute bool, logger *log.Logger) (audio.Player, func(), error) {
	noop := func() {}
	if mute || !cfg.Audio.Enabled {
		logger.Info("audio disabled")
		return audio.Silent{}, noop, nil
	}

	engine, err := audio.Load(cfg.Audio)
	if err != nil {
		return nil, noop, err
	}
	if err := engine.Start(); err != nil {
		logger.Warn("no audio output, playing muted", "err", err)
		return audio.Silent{}, noop, nil
	}
	logger.Debug("audio started", "volume", cfg.Audio.Volume)
	return engine, engine.Close, nil
}

// newGameFactory returns a constructor for sessions sharing cfg and pack.
func newGameFactory(cfg config.ShooterConfig, pack *assets.Pack, sound audio.Player) func(seed int64) (*shooter.Game, error) {
	return func(seed int64) (*shooter.Game, error) {
		return shooter.New(shooter.Options{
			Config: cfg,
			Assets: pack,
			Sound:  sound,
			Seed:   seed,
		})
	}
}
