// shooter is a terminal arcade space shooter.
//
// Usage:
//
//	shooter                  - Play (same as "shooter play")
//	shooter play             - Play in this terminal
//	shooter scores           - Show the high-score table
//	shooter serve            - Start SSH server for remote play
//	shooter config           - Print the default configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal or hard
//	--fps <rate>         - Override the tick rate
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--db <path>          - Set database path (default: ~/.shooter/scores.db)
//	--log-file <path>    - Log destination while playing (default: ~/.shooter/shooter.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - shoot falling meteors in your terminal",
	Long: `Space Shooter is a terminal arcade game. Move the ship along the
bottom of the field and shoot the meteors before they reach you.
Each meteor that hits the ship costs a life; the game ends when the
last life is gone.

Available commands:
  play     - Play in this terminal (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  shooter
  shooter --difficulty hard --seed 42
  shooter scores
  shooter serve --ssh :2222`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "~/.shooter/shooter.log", "Log file used while playing")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
