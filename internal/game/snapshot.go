package game

import (
	"math"

	"github.com/vovakirdan/trash-hero/internal/core"
)

// Snapshot is a copy of the session state for presentation, determinism
// tests and replay verification. Mutating it does not affect the session.
type Snapshot struct {
	Tick          uint64
	City          string
	Phase         Phase
	Remaining     int
	Score         int
	Correct       int
	Wrong         int
	Paused        bool
	Over          bool
	Announcement  string
	AnnounceTicks int

	Player    Player
	Capacity  int
	HasShield bool
	HasWeapon bool
	Litter    []TrashItem
	NPCs      []NPC
	Bins      []Bin
	Obstacles []Obstacle
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	p.Carrying = append([]TrashType(nil), s.player.Carrying...)

	return Snapshot{
		Tick:          s.tick,
		City:          s.city.ID,
		Phase:         s.phase,
		Remaining:     s.remaining,
		Score:         s.score,
		Correct:       s.correct,
		Wrong:         s.wrong,
		Paused:        s.paused,
		Over:          s.over,
		Announcement:  s.announcement,
		AnnounceTicks: s.announceTicks,

		Player:    p,
		Capacity:  s.loadout.Capacity,
		HasShield: s.loadout.Shield,
		HasWeapon: s.loadout.HasWeapon(),
		Litter:    append([]TrashItem(nil), s.litter...),
		NPCs:      append([]NPC(nil), s.npcs...),
		Bins:      append([]Bin(nil), s.bins...),
		Obstacles: append([]Obstacle(nil), s.obstacles...),
	}
}

// AnnouncementVisible reports whether the phase announcement should be drawn.
func (snap *Snapshot) AnnouncementVisible() bool {
	return snap.AnnounceTicks > 0 && snap.Announcement != ""
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floating point fields are hashed by their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Correct)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wrong)     //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.Over)

	h = hashVec(h, snap.Player.Pos)
	h = h*31 + uint64(snap.Player.Facing)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.Stun)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.ShieldCooldown) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.WeaponCooldown) //#nosec G115 -- hash computation
	for _, t := range snap.Player.Carrying {
		h = h*31 + uint64(t) //#nosec G115 -- hash computation
	}

	for _, t := range snap.Litter {
		h = h*31 + uint64(t.ID)   //#nosec G115 -- hash computation
		h = h*31 + uint64(t.Type) //#nosec G115 -- hash computation
		h = hashVec(h, t.Pos)
		h = hashVec(h, t.Vel)
		h = h*31 + boolBit(t.Hostile)
		h = h*31 + boolBit(t.Fleeing)
	}

	for _, n := range snap.NPCs {
		h = hashVec(h, n.Pos)
		h = hashVec(h, n.Target)
		h = h*31 + uint64(n.DropTimer) //#nosec G115 -- hash computation
		h = h*31 + uint64(n.Stun)      //#nosec G115 -- hash computation
	}

	for _, o := range snap.Obstacles {
		h = hashVec(h, o.Box.Pos)
		h = h*31 + uint64(o.Kind) //#nosec G115 -- hash computation
	}

	return h
}

func hashVec(h uint64, v core.Vec) uint64 {
	h = h*31 + math.Float64bits(v.X)
	return h*31 + math.Float64bits(v.Y)
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
