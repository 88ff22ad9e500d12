package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trash-hero/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Trash Hero with the city picker",
	Long: `Start Trash Hero in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the selected city.
After a session ends, you return to the menu with your new progress.

Controls:
  Up/Down/j/k  - Navigate cities
  Enter/Space  - Play city
  $            - Open the shop
  Tab          - Show scores
  Q            - Quit

Examples:
  trashhero menu
  trashhero menu --fps 30
  trashhero menu --db ./trashhero.db --profile alice`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cat := loadCatalog()
	store := openStore(logger, false)

	runErr := tui.Run(tui.NewAppModel(newEnv(store, cat, logger)))

	// Cleanup
	closeStore(store, logger)

	if runErr != nil {
		fail("%v", runErr)
	}
}
