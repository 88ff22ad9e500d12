package game

import (
	"sort"

	"github.com/vovakirdan/trash-hero/internal/core"
)

// use resolves the shared action trigger: drop first, pickup otherwise.
func (s *Session) use() {
	if s.player.Stun > 0 {
		return
	}
	if s.drop() {
		return
	}
	s.pickup()
}

// drop empties matching and bonus items into the first bin in range.
// It reports whether a bin was in range, even if it accepted nothing.
func (s *Session) drop() bool {
	p := &s.player
	if len(p.Carrying) == 0 {
		return false
	}
	for _, b := range s.bins {
		if core.Dist(p.Pos, b.Box.Center()) >= DropRange {
			continue
		}
		kept := make([]TrashType, 0, len(p.Carrying))
		for _, item := range p.Carrying {
			switch item {
			case TrashBonus:
				s.score += ScoreBonus
				s.correct++
			case b.Type:
				s.score += ScoreCorrect
				s.correct++
			default:
				kept = append(kept, item)
			}
		}
		p.Carrying = kept
		return true
	}
	return false
}

// pickup takes the nearest items within range until the bag is full.
func (s *Session) pickup() {
	p := &s.player
	free := s.loadout.Capacity - len(p.Carrying)
	if free <= 0 {
		return
	}

	type candidate struct {
		idx  int
		dist float64
	}
	var inRange []candidate
	for i, t := range s.litter {
		if d := core.Dist(t.Pos, p.Pos); d < s.loadout.PickupRange {
			inRange = append(inRange, candidate{idx: i, dist: d})
		}
	}
	if len(inRange) == 0 {
		return
	}
	sort.SliceStable(inRange, func(a, b int) bool {
		return inRange[a].dist < inRange[b].dist
	})
	if len(inRange) > free {
		inRange = inRange[:free]
	}

	taken := make(map[int]bool, len(inRange))
	for _, c := range inRange {
		p.Carrying = append(p.Carrying, s.litter[c.idx].Type)
		taken[c.idx] = true
	}
	kept := s.litter[:0]
	for i, t := range s.litter {
		if !taken[i] {
			kept = append(kept, t)
		}
	}
	s.litter = kept
}

// fireWeapon stuns every NPC in range and restarts the cooldown.
func (s *Session) fireWeapon() {
	p := &s.player
	if !s.loadout.HasWeapon() || p.WeaponCooldown > 0 {
		return
	}
	w := s.loadout.Weapon
	for i := range s.npcs {
		if core.Dist(p.Pos, s.npcs[i].Pos) < w.Range {
			s.npcs[i].Stun = w.Stun
			s.stunned++
		}
	}
	p.WeaponCooldown = w.Cooldown
}
