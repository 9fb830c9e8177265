package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs. On a terminal this opens an interactive
table; otherwise (or with --plain) it prints plain text.

Examples:
  shooter scores
  shooter scores --limit 25
  shooter scores --plain > scores.txt
  shooter scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		return clearScores(os.Stdout, store)
	}

	runs, err := store.TopRuns(shooter.ID, flagLimit)
	if err != nil {
		return err
	}

	title := config.DefaultShooterConfig().Screen.Title
	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		fmt.Printf("High Scores - %s\n\n", title)
		if err := tui.WritePlainScores(os.Stdout, runs); err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("\nRun 'shooter' to set the first high score!")
		}
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}
	return tui.RunScoreboard(title, runs, width, height)
}

// clearScores deletes the recorded runs and reports how many were removed.
func clearScores(w io.Writer, store *storage.Store) error {
	n, err := store.Count(shooter.ID)
	if err != nil {
		return err
	}
	if err := store.ClearRuns(shooter.ID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d run(s).\n", n)
	return nil
}
