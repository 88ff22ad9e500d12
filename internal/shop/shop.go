// Package shop provides the equipment catalog and the player's inventory:
// coins, owned items and the equipped set that resolves to a game.Loadout.
package shop

import (
	"errors"
	"fmt"
	"maps"

	"github.com/vovakirdan/trash-hero/internal/game"
)

// Shop errors. A failed purchase or equip leaves the inventory unchanged.
var (
	ErrUnknownItem       = errors.New("shop: unknown item")
	ErrInsufficientCoins = errors.New("shop: insufficient coins")
	ErrAlreadyOwned      = errors.New("shop: item already owned")
	ErrNotOwned          = errors.New("shop: item not owned")
)

// Category groups items that occupy the same equipment slot.
type Category string

const (
	CategoryTool   Category = "tool"
	CategoryBag    Category = "bag"
	CategoryShield Category = "shield"
	CategoryWeapon Category = "weapon"
)

// Categories lists slots in display order.
var Categories = []Category{CategoryTool, CategoryBag, CategoryShield, CategoryWeapon}

// Item is a purchasable piece of equipment.
type Item struct {
	ID          string
	Category    Category
	Name        string
	Description string
	Price       int
}

// Catalog lists every item in shop order.
var Catalog = []Item{
	{ID: string(game.ToolGlove), Category: CategoryTool, Name: "Gloves", Description: "Basic pickup tool", Price: 0},
	{ID: string(game.ToolStick), Category: CategoryTool, Name: "Grabber", Description: "Pick up from farther away", Price: 100},
	{ID: string(game.ToolVacuum), Category: CategoryTool, Name: "Vacuum", Description: "Even longer reach", Price: 500},

	{ID: string(game.BagBasic), Category: CategoryBag, Name: "Basic bag", Description: "Holds 3 items", Price: 0},
	{ID: string(game.BagMedium), Category: CategoryBag, Name: "Medium bag", Description: "Holds 10 items", Price: 50},
	{ID: string(game.BagLarge), Category: CategoryBag, Name: "Large bag", Description: "Holds 15 items", Price: 200},
	{ID: string(game.BagHuge), Category: CategoryBag, Name: "Huge bag", Description: "Holds 20 items", Price: 400},

	{ID: string(game.ShieldLid), Category: CategoryShield, Name: "Bin lid shield", Description: "Blocks one litter attack (10s cooldown)", Price: 1000},

	{ID: string(game.WeaponTaser), Category: CategoryWeapon, Name: "Taser", Description: "Stuns nearby litterers (15s cooldown)", Price: 750},
}

// Find looks up a catalog item by id.
func Find(id string) (Item, error) {
	for _, it := range Catalog {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
}

// Inventory is a player's economy state.
type Inventory struct {
	Coins    int
	Owned    map[string]bool
	Equipped game.Equipment
}

// DefaultInventory is the starting inventory: no coins, free items owned and equipped.
func DefaultInventory() Inventory {
	return Inventory{
		Coins: 0,
		Owned: map[string]bool{
			string(game.ToolGlove): true,
			string(game.BagBasic):  true,
		},
		Equipped: game.DefaultEquipment(),
	}
}

// Owns reports whether the item is owned.
func (inv Inventory) Owns(id string) bool {
	return inv.Owned[id]
}

// IsEquipped reports whether the item is in its slot.
func (inv Inventory) IsEquipped(it Item) bool {
	return equippedID(inv.Equipped, it.Category) == it.ID
}

// Loadout resolves the equipped set to engine stats.
func (inv Inventory) Loadout() (game.Loadout, error) {
	return game.ResolveLoadout(inv.Equipped)
}

// Earn adds coins. Negative amounts are ignored.
func (inv Inventory) Earn(coins int) Inventory {
	if coins > 0 {
		inv.Coins += coins
	}
	return inv
}

// Buy purchases and equips an item.
func Buy(inv Inventory, id string) (Inventory, error) {
	it, err := Find(id)
	if err != nil {
		return inv, err
	}
	if inv.Owns(id) {
		return inv, fmt.Errorf("%w: %s", ErrAlreadyOwned, id)
	}
	if inv.Coins < it.Price {
		return inv, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCoins, id, it.Price, inv.Coins)
	}

	next := inv.clone()
	next.Coins -= it.Price
	next.Owned[id] = true
	next.Equipped = withSlot(next.Equipped, it.Category, id)
	return next, nil
}

// Equip puts an owned item into its slot.
func Equip(inv Inventory, id string) (Inventory, error) {
	it, err := Find(id)
	if err != nil {
		return inv, err
	}
	if !inv.Owns(id) {
		return inv, fmt.Errorf("%w: %s", ErrNotOwned, id)
	}
	next := inv.clone()
	next.Equipped = withSlot(next.Equipped, it.Category, id)
	return next, nil
}

// Unequip empties the shield or weapon slot. Tools and bags always have
// something equipped.
func Unequip(inv Inventory, c Category) (Inventory, error) {
	next := inv.clone()
	switch c {
	case CategoryShield:
		next.Equipped.Shield = game.ShieldNone
	case CategoryWeapon:
		next.Equipped.Weapon = game.WeaponNone
	default:
		return inv, fmt.Errorf("shop: cannot unequip %s", c)
	}
	return next, nil
}

func (inv Inventory) clone() Inventory {
	next := inv
	next.Owned = maps.Clone(inv.Owned)
	if next.Owned == nil {
		next.Owned = make(map[string]bool)
	}
	return next
}

func withSlot(eq game.Equipment, c Category, id string) game.Equipment {
	switch c {
	case CategoryTool:
		eq.Tool = game.ToolID(id)
	case CategoryBag:
		eq.Bag = game.BagID(id)
	case CategoryShield:
		eq.Shield = game.ShieldID(id)
	case CategoryWeapon:
		eq.Weapon = game.WeaponID(id)
	}
	return eq
}

func equippedID(eq game.Equipment, c Category) string {
	switch c {
	case CategoryTool:
		return string(eq.Tool)
	case CategoryBag:
		return string(eq.Bag)
	case CategoryShield:
		return string(eq.Shield)
	case CategoryWeapon:
		return string(eq.Weapon)
	default:
		return ""
	}
}
