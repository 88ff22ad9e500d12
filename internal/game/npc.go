package game

import "github.com/vovakirdan/trash-hero/internal/core"

// updateNPCs advances every NPC. A stunned NPC only counts down.
func (s *Session) updateNPCs() {
	for i := range s.npcs {
		n := &s.npcs[i]
		if n.Stun > 0 {
			n.Stun--
			continue
		}

		s.wander(n)

		n.DropTimer--
		if n.DropTimer <= 0 {
			n.DropTimer = NPCDropInterval + s.rng.Intn(NPCDropJitter)
			vel := core.V((s.rng.Float64()-0.5)*2, (s.rng.Float64()-0.5)*2)
			s.litter = append(s.litter, s.newItem(n.Pos, vel, false))
		}
	}
}

// wander steers toward the target. On arrival, or when the next step would
// enter an obstacle, a new target is picked instead of moving.
func (s *Session) wander(n *NPC) {
	delta := n.Target.Sub(n.Pos)
	d := delta.Len()
	if d < NPCArrive {
		n.Target = randomTarget(s.rng)
		return
	}
	next := n.Pos.Add(delta.Scale(NPCSpeed / d))
	if _, hit := blocked(s.obstacles, next, NPCHalf, NPCHalf); hit {
		n.Target = randomTarget(s.rng)
		return
	}
	n.Pos = next
}
