// Package game implements the Trash Hero simulation engine.
//
// A Session advances one tick at a time from an intent set (core.InputFrame)
// and is counted down separately once per second. It owns every entity for
// its lifetime and performs no I/O; all randomness comes from an injected Rand.
package game

// Playfield dimensions in world units.
const (
	FieldW    = 800.0
	FieldH    = 600.0
	HUDHeight = 40.0
)

// Session timing.
const (
	GameDuration       = 600 // seconds
	AnnouncementTicks  = 120
	DefaultTicksPerSec = 60
)

// Entity sizes.
const (
	PlayerSize = 28.0
	TrashSize  = 20.0
	BinW       = 40.0
	BinH       = 48.0
	NPCHalf    = 10.0
)

// Player tuning.
const (
	PlayerSpeed    = 3.0
	DropRange      = 55.0
	StunDuration   = 60  // ticks
	ShieldCooldown = 600 // ticks
)

// Litter tuning.
const (
	Friction        = 0.95
	WindAccel       = 0.05
	HostileSpeed    = 0.8
	ChaosSpeedBoost = 1.5
	ContactMargin   = 5.0
	EvadeRadius     = 60.0
	BounceAwayGain  = 0.6
	EvadeGain       = 0.1
	PursueGain      = 0.06
	ObstacleMargin  = 2.0
	BounceDamping   = -0.5
	BonusChance     = 0.05
	ChaosSpawnRate  = 0.005
)

// NPC tuning.
const (
	NPCCount        = 3
	NPCSpeed        = 1.2
	NPCArrive       = 5.0
	NPCDropInterval = 600 // ticks
	NPCDropJitter   = 60  // ticks
)

// Obstacles.
const (
	ObstacleCount = 8
	obstacleTries = 50
)

// Scoring.
const (
	ScoreCorrect = 3
	ScoreBonus   = 8
)

// Movement clamps, derived from the sizes above.
const (
	playerMinX = PlayerSize / 2
	playerMaxX = FieldW - PlayerSize/2
	playerMinY = HUDHeight + PlayerSize/2
	playerMaxY = FieldH - PlayerSize/2

	trashMinX = TrashSize
	trashMaxX = FieldW - TrashSize
	trashMinY = HUDHeight + TrashSize
	trashMaxY = FieldH - BinH - TrashSize - 10
)
