package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/t2048"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best score and, with the sqlite backend, the top 10 games
and overall statistics.

Examples:
  t2048 scores
  t2048 scores --store sqlite
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history and the best score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if s.stores.History != nil {
			if err := s.stores.History.ClearScores(t2048.GameID); err != nil {
				return err
			}
		} else if err := s.stores.HighScores.SaveHighScore(0); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	best, err := s.stores.HighScores.LoadHighScore()
	if err != nil {
		return fmt.Errorf("reading high score: %w", err)
	}

	fmt.Fprintln(out, "High Scores - 2048")
	fmt.Fprintln(out)

	history := s.stores.History
	if history == nil {
		fmt.Fprintf(out, "Best: %d\n", best)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "The %s backend keeps only the best score; use --store sqlite for a history.\n", s.stores.Backend)
		return nil
	}

	scores, err := history.TopScores(t2048.GameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", best)
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Max Tile", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %s\n", "----", "-----", "--------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-8d  %s\n", i+1, entry.Score, entry.MaxTile, dateStr)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", best)
	if recorded, err := history.HighScore(t2048.GameID); err == nil && recorded != best {
		fmt.Fprintf(out, "Best recorded game: %d\n", recorded)
	}

	stats, err := history.GetGameStats(t2048.GameID)
	if err == nil {
		fmt.Fprintf(out, "Games: %d  Average: %.0f  Biggest tile: %d\n",
			stats.GamesCount, stats.AvgScore, stats.MaxTile)
	}
	return nil
}
