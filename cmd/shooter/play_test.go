package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name  string
		stats shooter.Stats
		best  int
		want  []string
		skip  []string
	}{
		{
			name:  "destroyed below best",
			stats: shooter.Stats{Score: 30, Kills: 3, Reason: shooter.EndDestroyed},
			best:  120,
			want:  []string{"Game over!", "Score: 30  Meteors destroyed: 3", "Best: 120"},
			skip:  []string{"New high score!"},
		},
		{
			name:  "quit with new best",
			stats: shooter.Stats{Score: 120, Kills: 12, Reason: shooter.EndQuit},
			best:  120,
			want:  []string{"Thanks for playing!", "New high score!"},
			skip:  []string{"Best:"},
		},
		{
			name:  "no score and no history",
			stats: shooter.Stats{Reason: shooter.EndQuit},
			want:  []string{"Score: 0"},
			skip:  []string{"Best:", "New high score!"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printSummary(&buf, tt.stats, tt.best)
			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("summary %q missing %q", out, s)
				}
			}
			for _, s := range tt.skip {
				if strings.Contains(out, s) {
					t.Errorf("summary %q should not contain %q", out, s)
				}
			}
		})
	}
}

func TestClearScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	for _, score := range []int{10, 40} {
		if _, err := store.SaveRun(storage.Run{GameID: shooter.ID, Player: "tester", Score: score}); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := clearScores(&buf, store); err != nil {
		t.Fatalf("clearScores: %v", err)
	}
	if got := buf.String(); got != "Cleared 2 run(s).\n" {
		t.Errorf("output = %q", got)
	}
	if n, err := store.Count(shooter.ID); err != nil || n != 0 {
		t.Errorf("Count after clear = %d, %v", n, err)
	}
}
