package game

import "github.com/vovakirdan/trash-hero/internal/core"

// randomTrashType draws bonus with BonusChance, else a uniform bin type.
func randomTrashType(r Rand) TrashType {
	if r.Float64() < BonusChance {
		return TrashBonus
	}
	return BinTypes[r.Intn(len(BinTypes))]
}

// randomLitterPos is a uniform point in the litter spawn area.
func randomLitterPos(r Rand) core.Vec {
	return core.V(between(r, 60, FieldW-120), between(r, 60, FieldH-140))
}

// randomTarget is a uniform NPC wander target.
func randomTarget(r Rand) core.Vec {
	return core.V(between(r, 60, FieldW-120), between(r, 80, FieldH-200))
}

// playerStart is where every session begins.
func playerStart() core.Vec {
	return core.V(FieldW/2, FieldH/2)
}

func (s *Session) newItem(pos, vel core.Vec, hostile bool) TrashItem {
	s.nextID++
	return TrashItem{
		ID:      s.nextID,
		Type:    randomTrashType(s.rng),
		Pos:     pos,
		Vel:     vel,
		Hostile: hostile,
	}
}

func (s *Session) spawnTrash(count int) {
	for range count {
		s.litter = append(s.litter, s.newItem(randomLitterPos(s.rng), core.Vec{}, false))
	}
}

// spawnObstacles places up to ObstacleCount obstacles. Candidates that would
// cover the player start or a bin are redrawn; a slot that finds no free spot
// is left empty.
func (s *Session) spawnObstacles() {
	start := playerStart()
	for range ObstacleCount {
		for range obstacleTries {
			kind := ObstacleTree
			w, h := 32.0, 40.0
			if s.rng.Float64() < 0.5 {
				kind = ObstacleBush
				w, h = 40, 28
			}
			box := core.Box{
				Pos: core.V(between(s.rng, 80, FieldW-160), between(s.rng, 80, FieldH-200)),
				W:   w,
				H:   h,
			}
			if !s.obstacleFits(box, start) {
				continue
			}
			s.obstacles = append(s.obstacles, Obstacle{Kind: kind, Box: box})
			break
		}
	}
}

func (s *Session) obstacleFits(box core.Box, start core.Vec) bool {
	const clearance = PlayerSize/2 + PlayerSpeed
	if box.OverlapsCentered(start, clearance, clearance) {
		return false
	}
	for _, b := range s.bins {
		if box.OverlapsCentered(b.Box.Center(), BinW/2, BinH/2) {
			return false
		}
	}
	return true
}

func (s *Session) spawnNPCs() {
	for i := range NPCCount {
		var pos core.Vec
		for range obstacleTries {
			pos = core.V(s.rng.Float64()*FieldW, between(s.rng, 80, FieldH-200))
			if _, hit := blocked(s.obstacles, pos, NPCHalf, NPCHalf); !hit {
				break
			}
		}
		s.npcs = append(s.npcs, NPC{
			ID:        i + 1,
			Pos:       pos,
			Target:    randomTarget(s.rng),
			DropTimer: s.rng.Intn(NPCDropInterval),
			Glyph:     npcGlyphs[i%len(npcGlyphs)],
		})
	}
}

// spawnChaos may add one hostile item per tick during chaos.
func (s *Session) spawnChaos() {
	if s.phase != PhaseChaos {
		return
	}
	if s.rng.Float64() < ChaosSpawnRate {
		s.litter = append(s.litter, s.newItem(randomLitterPos(s.rng), core.Vec{}, true))
	}
}
