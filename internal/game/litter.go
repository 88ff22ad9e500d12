package game

import (
	"math"

	"github.com/vovakirdan/trash-hero/internal/core"
)

// updateLitter applies wind, hostile behavior and physics to every item.
func (s *Session) updateLitter() {
	wind := WindForce(s.phase, s.elapsed(), s.city.WindMultiplier)
	hostile := s.phase.Hostile()
	speed := hostileSpeed(s.phase, s.city.AttackMultiplier)

	for i := range s.litter {
		t := &s.litter[i]
		t.Vel = t.Vel.Add(wind)

		if hostile {
			t.Hostile = true
			s.attack(t, speed)
		} else {
			t.Hostile = false
			t.Fleeing = false
		}

		integrate(t, s.obstacles)
	}
}

// attack selects exactly one of contact, evade or pursue, nearest first.
func (s *Session) attack(t *TrashItem, speed float64) {
	p := &s.player
	d := core.Dist(t.Pos, p.Pos)
	away := t.Pos.Sub(p.Pos).Angle()

	switch {
	case d < PlayerSize/2+TrashSize/2+ContactMargin:
		t.Vel = t.Vel.Add(core.Polar(away, speed*BounceAwayGain))
		t.Fleeing = true
		s.hitPlayer()
	case d < EvadeRadius && len(p.Carrying) == 0:
		t.Vel = t.Vel.Add(core.Polar(away, speed*EvadeGain))
		t.Fleeing = true
	default:
		toward := p.Pos.Sub(t.Pos).Angle()
		t.Vel = t.Vel.Add(core.Polar(toward, speed*PursueGain))
		t.Fleeing = false
	}
}

// hitPlayer resolves a litter hit. A stunned player takes no further hits.
func (s *Session) hitPlayer() {
	p := &s.player
	if p.Stun > 0 {
		return
	}
	if s.loadout.Shield && p.ShieldCooldown <= 0 {
		p.ShieldCooldown = ShieldCooldown
		s.shieldBlocks++
		return
	}
	p.Stun = StunDuration
	s.hitsTaken++
}

// integrate moves the item, applies friction, clamps it to the field and
// bounces it off the first obstacle it overlaps.
func integrate(t *TrashItem, obstacles []Obstacle) {
	t.Pos = t.Pos.Add(t.Vel)
	t.Vel = t.Vel.Scale(Friction)

	t.Pos.X = core.ClampF(t.Pos.X, trashMinX, trashMaxX)
	t.Pos.Y = core.ClampF(t.Pos.Y, trashMinY, trashMaxY)

	const half = TrashSize / 2
	o, hit := blocked(obstacles, t.Pos, half, half)
	if !hit {
		return
	}
	c := o.Box.Center()
	angle := t.Pos.Sub(c).Angle()
	t.Pos = core.V(
		c.X+math.Cos(angle)*(o.Box.W/2+half+ObstacleMargin),
		c.Y+math.Sin(angle)*(o.Box.H/2+half+ObstacleMargin),
	)
	t.Vel = t.Vel.Scale(BounceDamping)
}
