package game

import "github.com/vovakirdan/trash-hero/internal/core"

// updatePlayer ticks cooldowns and stun, then applies movement intents.
func (s *Session) updatePlayer(in core.InputFrame) {
	p := &s.player
	if p.ShieldCooldown > 0 {
		p.ShieldCooldown--
	}
	if p.WeaponCooldown > 0 {
		p.WeaponCooldown--
	}

	if p.Stun > 0 {
		p.Stun--
		return
	}

	// Later axes override earlier ones, so facing is the last applied.
	var dir core.Vec
	if in.Has(core.ActionUp) {
		dir.Y = -1
		p.Facing = FacingUp
	}
	if in.Has(core.ActionDown) {
		dir.Y = 1
		p.Facing = FacingDown
	}
	if in.Has(core.ActionLeft) {
		dir.X = -1
		p.Facing = FacingLeft
	}
	if in.Has(core.ActionRight) {
		dir.X = 1
		p.Facing = FacingRight
	}

	if dir != (core.Vec{}) {
		next := p.Pos.Add(dir.Scale(PlayerSpeed / dir.Len()))
		if _, hit := blocked(s.obstacles, next, PlayerSize/2, PlayerSize/2); !hit {
			p.Pos = next
		}
	}

	p.Pos.X = core.ClampF(p.Pos.X, playerMinX, playerMaxX)
	p.Pos.Y = core.ClampF(p.Pos.Y, playerMinY, playerMaxY)
}
