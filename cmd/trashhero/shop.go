package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trash-hero/internal/platform/tui"
	"github.com/vovakirdan/trash-hero/internal/shop"
	"github.com/vovakirdan/trash-hero/internal/storage"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the equipment shop",
	Long: `Open the interactive shop, or buy and equip items directly.

Coins are earned by finishing sessions: every point scored is one coin.
Buying an item equips it right away.

Examples:
  trashhero shop
  trashhero shop list
  trashhero shop buy stick
  trashhero shop equip glove
  trashhero shop unequip taser`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shop items",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		editInventory(func(inv shop.Inventory) (shop.Inventory, string, error) {
			printCatalog(inv)
			return inv, "", nil
		})
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <item>",
	Short: "Buy and equip an item",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		editInventory(func(inv shop.Inventory) (shop.Inventory, string, error) {
			next, err := shop.Buy(inv, args[0])
			return next, "Bought " + args[0], err
		})
	},
}

var shopEquipCmd = &cobra.Command{
	Use:   "equip <item>",
	Short: "Equip an owned item",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		editInventory(func(inv shop.Inventory) (shop.Inventory, string, error) {
			next, err := shop.Equip(inv, args[0])
			return next, "Equipped " + args[0], err
		})
	},
}

var shopUnequipCmd = &cobra.Command{
	Use:   "unequip <item>",
	Short: "Unequip a shield or weapon",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		editInventory(func(inv shop.Inventory) (shop.Inventory, string, error) {
			it, err := shop.Find(args[0])
			if err != nil {
				return inv, "", err
			}
			if !inv.IsEquipped(it) {
				return inv, "", fmt.Errorf("%s is not equipped", it.Name)
			}
			next, err := shop.Unequip(inv, it.Category)
			return next, "Unequipped " + args[0], err
		})
	},
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopEquipCmd)
	shopCmd.AddCommand(shopUnequipCmd)
}

func runShop(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cat := loadCatalog()
	store := openStore(logger, true)

	runErr := tui.Run(tui.NewShopScreenModel(newEnv(store, cat, logger)))
	closeStore(store, logger)

	if runErr != nil {
		fail("%v", runErr)
	}
}

// editInventory loads the profile's inventory, applies edit and saves the
// result if it changed.
func editInventory(edit func(shop.Inventory) (shop.Inventory, string, error)) {
	logger := newLogger()
	store := openStore(logger, true)
	defer closeStore(store, logger)

	inv, err := store.Inventory(flagProfile)
	if err != nil {
		closeStore(store, logger)
		fail("could not load inventory: %v", err)
	}

	next, message, err := edit(inv)
	if err != nil {
		closeStore(store, logger)
		switch {
		case errors.Is(err, shop.ErrInsufficientCoins):
			fail("not enough coins (%d available)", inv.Coins)
		case errors.Is(err, shop.ErrAlreadyOwned):
			fail("already owned, use 'trashhero shop equip' instead")
		default:
			fail("%v", err)
		}
	}
	if message == "" {
		return
	}

	if err := store.SaveInventory(flagProfile, next); err != nil {
		closeStore(store, logger)
		fail("could not save inventory: %v", err)
	}
	fmt.Printf("%s. %d coins left.\n", message, next.Coins)
}

func printCatalog(inv shop.Inventory) {
	fmt.Printf("Shop - %d coins (profile %s)\n", inv.Coins, profileLabel())
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-14s  %-6s  %s\n", "ID", "Slot", "Name", "Price", "Status")
	fmt.Printf("  %-8s  %-8s  %-14s  %-6s  %s\n", "--", "----", "----", "-----", "------")

	for _, it := range shop.Catalog {
		status := ""
		switch {
		case inv.IsEquipped(it):
			status = "equipped"
		case inv.Owns(it.ID):
			status = "owned"
		}
		fmt.Printf("  %-8s  %-8s  %-14s  %-6d  %s\n", it.ID, it.Category, it.Name, it.Price, status)
	}
}

func profileLabel() string {
	if flagProfile == "" {
		return storage.DefaultProfile
	}
	return flagProfile
}
