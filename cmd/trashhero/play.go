package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <city>",
	Short: "Play a city",
	Long: `Start a ten minute session in the specified city.

Controls:
  WASD/Arrows  - Move (diagonals allowed)
  Space/E      - Pick up litter, or drop it into an adjacent bin
  F/X          - Fire the taser (if equipped)
  P            - Pause
  Esc          - Back to menu (while paused)
  R            - Play again (after time's up)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  trashhero play budapest
  trashhero play paris --seed 42
  trashhero play tokyo --fps 30 --replays ""`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cityID := args[0]
	logger := newLogger()
	cat := loadCatalog()

	city, err := cat.City(cityID)
	if errors.Is(err, config.ErrUnknownCity) {
		fmt.Fprintf(os.Stderr, "Error: unknown city %q\n", cityID)
		fmt.Fprintln(os.Stderr, "Run 'trashhero cities' to see available cities.")
		os.Exit(1)
	}
	if err != nil {
		fail("%v", err)
	}

	// Open progress storage. The game still works without it.
	store := openStore(logger, false)

	if store != nil {
		unlocked, unlockErr := store.Unlocked(flagProfile, cat, cityID)
		if unlockErr != nil {
			closeStore(store, logger)
			fail("could not check progress: %v", unlockErr)
		}
		if !unlocked {
			closeStore(store, logger)
			fmt.Fprintf(os.Stderr, "Error: %s is locked\n", city.Name)
			fmt.Fprintln(os.Stderr, "Earn at least one star in the previous city to unlock it.")
			os.Exit(1)
		}
	}

	model, err := tui.NewPlayModel(newEnv(store, cat, logger), city)
	if err != nil {
		closeStore(store, logger)
		fail("could not start session: %v", err)
	}

	runErr := tui.Run(model)

	// Close store before potential exit
	closeStore(store, logger)

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
