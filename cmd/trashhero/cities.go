package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trash-hero/internal/platform/tui"
	"github.com/vovakirdan/trash-hero/internal/storage"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List cities and your progress",
	Long: `Shows every city in play order with its litter count, wind and
attack strength, and your best result. A city unlocks once you earn at least
one star in the city before it.`,
	Run: runCities,
}

func runCities(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cat := loadCatalog()
	store := openStore(logger, false)
	defer closeStore(store, logger)

	var progress []storage.CityProgress
	if store != nil {
		p, err := store.Progress(flagProfile, cat)
		if err != nil {
			logger.Warn("could not load progress", "profile", flagProfile, "error", err)
		}
		progress = p
	}
	if progress == nil {
		for _, c := range cat.Cities {
			progress = append(progress, storage.CityProgress{City: c, Unlocked: true})
		}
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range progress {
		if len(p.City.ID) > maxIDLen {
			maxIDLen = len(p.City.ID)
		}
	}

	fmt.Println("Cities:")
	fmt.Println()
	fmt.Printf("  %-*s  %-10s  %-6s  %-5s  %-6s  %-5s  %s\n", maxIDLen, "ID", "Name", "Litter", "Wind", "Attack", "Best", "Stars")
	fmt.Printf("  %-*s  %-10s  %-6s  %-5s  %-6s  %-5s  %s\n", maxIDLen, "--", "----", "------", "----", "------", "----", "-----")

	for _, p := range progress {
		c := p.City
		if !p.Unlocked {
			fmt.Printf("  %-*s  %-10s  %-6d  x%-4.1f  x%-5.1f  locked\n", maxIDLen, c.ID, c.Name,
				c.TrashCount, c.WindMultiplier, c.AttackMultiplier)
			continue
		}
		fmt.Printf("  %-*s  %-10s  %-6d  x%-4.1f  x%-5.1f  %-5d  %s\n", maxIDLen, c.ID, c.Name,
			c.TrashCount, c.WindMultiplier, c.AttackMultiplier, p.BestScore, tui.StarString(p.Stars))
	}

	fmt.Println()
	fmt.Println("Run 'trashhero play <id>' to play a city.")
}
