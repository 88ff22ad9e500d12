package game

import "github.com/vovakirdan/trash-hero/internal/core"

// TrashType is the classification of a litter item.
type TrashType int

const (
	TrashPaper TrashType = iota
	TrashPlastic
	TrashGlass
	TrashOrganic
	TrashMixed
	TrashBonus
)

// BinTypes are the classifications that have a bin, in layout order.
var BinTypes = []TrashType{TrashPaper, TrashPlastic, TrashGlass, TrashOrganic, TrashMixed}

func (t TrashType) String() string {
	switch t {
	case TrashPaper:
		return "paper"
	case TrashPlastic:
		return "plastic"
	case TrashGlass:
		return "glass"
	case TrashOrganic:
		return "organic"
	case TrashMixed:
		return "mixed"
	case TrashBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// TrashItem is one piece of litter on the field.
type TrashItem struct {
	ID      int
	Type    TrashType
	Pos     core.Vec
	Vel     core.Vec
	Hostile bool
	Fleeing bool
}

// NPC is a wandering litterer.
type NPC struct {
	ID        int
	Pos       core.Vec
	Target    core.Vec
	DropTimer int
	Stun      int
	Glyph     rune
}

// Bin is a static classification-typed container.
type Bin struct {
	Type TrashType
	Box  core.Box
}

// ObstacleKind is cosmetic.
type ObstacleKind int

const (
	ObstacleTree ObstacleKind = iota
	ObstacleBush
)

func (k ObstacleKind) String() string {
	if k == ObstacleTree {
		return "tree"
	}
	return "bush"
}

// Obstacle blocks movement of the player, NPCs and litter.
type Obstacle struct {
	Kind ObstacleKind
	Box  core.Box
}

// Facing is one of the four cardinal directions.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// Player is the controllable avatar.
type Player struct {
	Pos            core.Vec
	Facing         Facing
	Carrying       []TrashType
	Stun           int
	ShieldCooldown int
	WeaponCooldown int
}

var npcGlyphs = []rune{'☺', '☻', '♙'}

// blocked reports whether a box of the given half-extents centered on c
// overlaps any obstacle.
func blocked(obstacles []Obstacle, c core.Vec, halfW, halfH float64) (Obstacle, bool) {
	for _, o := range obstacles {
		if o.Box.OverlapsCentered(c, halfW, halfH) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// binLayout returns the fixed bin rectangles, one per BinTypes entry.
func binLayout() []Bin {
	positions := []core.Vec{
		core.V(60, 80),
		core.V(FieldW-60-BinW, 80),
		core.V(60, FieldH/2-BinH/2),
		core.V(FieldW-60-BinW, FieldH/2-BinH/2),
		core.V(FieldW/2-BinW/2, FieldH-BinH-8),
	}
	bins := make([]Bin, len(BinTypes))
	for i, t := range BinTypes {
		bins[i] = Bin{Type: t, Box: core.Box{Pos: positions[i], W: BinW, H: BinH}}
	}
	return bins
}
