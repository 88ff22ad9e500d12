package game

import (
	"errors"
	"fmt"
)

// ErrUnknownEquipment is returned when an equipment id has no stats entry.
var ErrUnknownEquipment = errors.New("game: unknown equipment")

// ToolID identifies a pickup tool.
type ToolID string

// BagID identifies a carry bag.
type BagID string

// ShieldID identifies a shield. ShieldNone is a valid zero-effect value.
type ShieldID string

// WeaponID identifies a weapon. WeaponNone is a valid zero-effect value.
type WeaponID string

const (
	ToolGlove  ToolID = "glove"
	ToolStick  ToolID = "stick"
	ToolVacuum ToolID = "vacuum"

	BagBasic  BagID = "basic"
	BagMedium BagID = "medium"
	BagLarge  BagID = "large"
	BagHuge   BagID = "huge"

	ShieldNone ShieldID = "none"
	ShieldLid  ShieldID = "lid"

	WeaponNone  WeaponID = "none"
	WeaponTaser WeaponID = "taser"
)

// Tools, Bags, Shields and Weapons list every id in catalog order.
var (
	Tools   = []ToolID{ToolGlove, ToolStick, ToolVacuum}
	Bags    = []BagID{BagBasic, BagMedium, BagLarge, BagHuge}
	Shields = []ShieldID{ShieldNone, ShieldLid}
	Weapons = []WeaponID{WeaponNone, WeaponTaser}
)

// PickupRange returns the pickup radius granted by the tool.
func (t ToolID) PickupRange() (float64, error) {
	switch t {
	case ToolGlove:
		return 45, nil
	case ToolStick:
		return 70, nil
	case ToolVacuum:
		return 100, nil
	default:
		return 0, fmt.Errorf("%w: tool %q", ErrUnknownEquipment, string(t))
	}
}

// Capacity returns how many items the bag holds.
func (b BagID) Capacity() (int, error) {
	switch b {
	case BagBasic:
		return 3, nil
	case BagMedium:
		return 10, nil
	case BagLarge:
		return 15, nil
	case BagHuge:
		return 20, nil
	default:
		return 0, fmt.Errorf("%w: bag %q", ErrUnknownEquipment, string(b))
	}
}

// Blocks reports whether the shield absorbs hits.
func (s ShieldID) Blocks() (bool, error) {
	switch s {
	case ShieldNone:
		return false, nil
	case ShieldLid:
		return true, nil
	default:
		return false, fmt.Errorf("%w: shield %q", ErrUnknownEquipment, string(s))
	}
}

// WeaponStats is the area stun effect of a weapon.
type WeaponStats struct {
	Range    float64
	Stun     int // ticks
	Cooldown int // ticks
}

// Stats returns the weapon effect. WeaponNone yields the zero value.
func (w WeaponID) Stats() (WeaponStats, error) {
	switch w {
	case WeaponNone:
		return WeaponStats{}, nil
	case WeaponTaser:
		return WeaponStats{Range: 120, Stun: 300, Cooldown: 900}, nil
	default:
		return WeaponStats{}, fmt.Errorf("%w: weapon %q", ErrUnknownEquipment, string(w))
	}
}

// Equipment is the set of equipped item ids.
type Equipment struct {
	Tool   ToolID   `json:"tool"`
	Bag    BagID    `json:"bag"`
	Shield ShieldID `json:"shield"`
	Weapon WeaponID `json:"weapon"`
}

// DefaultEquipment is what a new player starts with.
func DefaultEquipment() Equipment {
	return Equipment{Tool: ToolGlove, Bag: BagBasic, Shield: ShieldNone, Weapon: WeaponNone}
}

// Loadout is the resolved numeric effect of an Equipment set.
// The engine reads it and never mutates it.
type Loadout struct {
	Equipment   Equipment
	PickupRange float64
	Capacity    int
	Shield      bool
	Weapon      WeaponStats
}

// HasWeapon reports whether a usable weapon is equipped.
func (l Loadout) HasWeapon() bool {
	return l.Weapon.Range > 0
}

// ResolveLoadout maps every equipped id to its stats.
// Unknown ids are rejected rather than defaulted.
func ResolveLoadout(eq Equipment) (Loadout, error) {
	pickup, err := eq.Tool.PickupRange()
	if err != nil {
		return Loadout{}, err
	}
	capacity, err := eq.Bag.Capacity()
	if err != nil {
		return Loadout{}, err
	}
	shield, err := eq.Shield.Blocks()
	if err != nil {
		return Loadout{}, err
	}
	weapon, err := eq.Weapon.Stats()
	if err != nil {
		return Loadout{}, err
	}
	return Loadout{
		Equipment:   eq,
		PickupRange: pickup,
		Capacity:    capacity,
		Shield:      shield,
		Weapon:      weapon,
	}, nil
}

// DefaultLoadout resolves DefaultEquipment.
func DefaultLoadout() Loadout {
	lo, _ := ResolveLoadout(DefaultEquipment())
	return lo
}

func (l Loadout) validate() error {
	if l.Capacity <= 0 || l.PickupRange <= 0 {
		return fmt.Errorf("%w: loadout without tool or bag", ErrUnknownEquipment)
	}
	if l.Weapon.Range < 0 || l.Weapon.Stun < 0 || l.Weapon.Cooldown < 0 {
		return fmt.Errorf("%w: negative weapon stats", ErrUnknownEquipment)
	}
	return nil
}
