package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD  - Slide the board
  R            - Restart at any time
  Enter        - New game on the game-over screen
  P            - Pause
  Ctrl+S       - Save a text screenshot
  Esc/Q        - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --store sqlite --store-path ./scores.db
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := tui.Run(s.newGame(), s.stores.History, s.logger, s.runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
