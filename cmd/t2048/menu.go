package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu and scoreboard",
	Long: `Start 2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --store sqlite`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := s.runtimeConfig()

	// Menu loop
	for {
		best, err := s.stores.HighScores.LoadHighScore()
		if err != nil {
			s.logger.Warn("could not load high score", "error", err)
		}

		result, err := tui.RunMenu(best, cfg)
		if err != nil {
			return err
		}
		cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH

		switch result.Choice {
		case tui.ChoicePlay:
			if err := tui.Run(s.newGame(), s.stores.History, s.logger, cfg); err != nil {
				return err
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(s.stores.History, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
