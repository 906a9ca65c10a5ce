// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                    - Play (same as t2048 play)
//	t2048 play               - Play a game
//	t2048 menu               - Start menu with the scoreboard
//	t2048 scores             - Show the score history and best score
//	t2048 scores --clear     - Wipe the history and the best score
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--store <backend>    - High score backend: file, sqlite or memory
//	--store-path <path>  - High score file or database path
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagFPS       int
	flagSeed      int64
	flagStore     string
	flagStorePath string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `2048 is the sliding-tile puzzle: slide the board, merge equal tiles
and reach 2048.

Available commands:
  play     - Play a game (default)
  menu     - Start menu with the scoreboard
  scores   - View the score history

Examples:
  t2048
  t2048 play --seed 42
  t2048 menu --store sqlite
  t2048 scores --clear`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "file", "High score backend: file, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&flagStorePath, "store-path", "", "High score file or database path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
