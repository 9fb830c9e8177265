package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

var (
	flagAssets string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right, A/D, H/L  - Move (hold)
  Space                 - Fire
  P/Esc                 - Pause
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slower meteors, spawned less often
  normal - Configured values
  hard   - Faster meteors, spawned more often

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --seed 42 --mute
  shooter play --assets ./my-sprites --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags shared by the root command and play.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite files (default: built-in)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	logger, closeLog, err := openFileLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	pack, err := assets.Load(flagAssets, cfg.Enemies.Scale)
	if err != nil {
		logger.Error("could not load sprites", "dir", flagAssets, "err", err)
		return err
	}

	sound, stopAudio, err := startAudio(cfg, flagMute, logger)
	if err != nil {
		logger.Error("could not load sounds", "err", err)
		return err
	}

	seed := sessionSeed()
	game, err := newGameFactory(cfg, pack, sound)(seed)
	if err != nil {
		stopAudio()
		return err
	}
	logger.Info("game created", "seed", seed, "difficulty", flagDifficulty, "tick_rate", cfg.TickRate)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	var screenshotDir string
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		screenshotDir = filepath.Join(home, ".shooter", "screenshots")
	}

	outcome, runErr := tui.Run(tui.SessionOptions{
		Game:          game,
		Store:         store,
		Logger:        logger,
		Player:        os.Getenv("USER"),
		TickRate:      cfg.TickRate,
		HoldWindow:    cfg.HoldDuration(),
		Width:         width,
		Height:        height,
		ScreenshotDir: screenshotDir,
	})

	// The finished run is already stored, so best includes it.
	best := 0
	if store != nil {
		if best, err = store.HighScore(shooter.ID); err != nil {
			logger.Warn("could not read high score", "err", err)
		}
	}

	// Shutdown order: audio, storage, then the log file via defer.
	stopAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("terminal session failed", "err", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	if outcome.Err != nil {
		return outcome.Err
	}

	printSummary(os.Stdout, outcome.Stats, best)
	return nil
}

// printSummary writes the end-of-session lines. best is the stored high
// score, 0 when unknown.
func printSummary(w io.Writer, stats shooter.Stats, best int) {
	switch stats.Reason {
	case shooter.EndDestroyed:
		fmt.Fprintln(w, "Game over!")
	default:
		fmt.Fprintln(w, "Thanks for playing!")
	}
	fmt.Fprintf(w, "Score: %d  Meteors destroyed: %d\n", stats.Score, stats.Kills)
	switch {
	case stats.Score > 0 && stats.Score >= best:
		fmt.Fprintln(w, "New high score!")
	case best > 0:
		fmt.Fprintf(w, "Best: %d\n", best)
	}
}
