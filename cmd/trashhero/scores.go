package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/platform/tui"
)

var flagScoresPrint bool

var scoresCmd = &cobra.Command{
	Use:   "scores [city]",
	Short: "Show scores",
	Long: `Display the scoreboard, starting at the given city (or the first).
With --print, writes the top 10 sessions for the city to stdout instead.

Examples:
  trashhero scores
  trashhero scores paris
  trashhero scores tokyo --print`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPrint, "print", false, "Print scores instead of opening the scoreboard")
}

func runScores(_ *cobra.Command, args []string) {
	logger := newLogger()
	cat := loadCatalog()

	city := cat.First()
	if len(args) == 1 {
		c, err := cat.City(args[0])
		if errors.Is(err, config.ErrUnknownCity) {
			fmt.Fprintf(os.Stderr, "Error: unknown city %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'trashhero cities' to see available cities.")
			os.Exit(1)
		}
		city = c
	}

	store := openStore(logger, true)
	defer closeStore(store, logger)

	if !flagScoresPrint {
		if err := tui.Run(tui.NewScoresModel(newEnv(store, cat, logger), city.ID)); err != nil {
			closeStore(store, logger)
			fail("%v", err)
		}
		return
	}

	entries, err := store.History(flagProfile, city.ID, 100)
	if err != nil {
		closeStore(store, logger)
		fail("retrieving scores: %v", err)
	}
	top := tui.RankSessions(entries, 10)

	// Display scores
	fmt.Printf("High Scores - %s\n", city.Name)
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'trashhero play %s' to set the first high score!\n", city.ID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-7s  %-5s  %s\n", "Rank", "Score", "Stars", "Correct", "Wrong", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-7s  %-5s  %s\n", "----", "-----", "-----", "-------", "-----", "----")

	for i, e := range top {
		fmt.Printf("  %-4d  %-6d  %-5s  %-7d  %-5d  %s\n", i+1, e.Score, tui.StarString(e.Stars),
			e.Correct, e.Wrong, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show best
	stats, err := store.CityStats(flagProfile)
	if err == nil && stats[city.ID] != nil {
		s := stats[city.ID]
		fmt.Println()
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f\n", s.HighScore, s.GamesCount, s.AvgScore)
	}
}
