package game

import "github.com/vovakirdan/trash-hero/internal/core"

// Phase is a difficulty tier selected by elapsed session time.
type Phase int

const (
	PhaseCalm Phase = iota
	PhaseLightWind
	PhaseStrongWind
	PhaseAttack
	PhaseChaos
)

// Phases lists every phase in escalation order.
var Phases = []Phase{PhaseCalm, PhaseLightWind, PhaseStrongWind, PhaseAttack, PhaseChaos}

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCalm:
		return "calm"
	case PhaseLightWind:
		return "light-wind"
	case PhaseStrongWind:
		return "strong-wind"
	case PhaseAttack:
		return "attack"
	case PhaseChaos:
		return "chaos"
	default:
		return "unknown"
	}
}

// Threshold returns the elapsed seconds at which the phase begins.
func (p Phase) Threshold() int {
	switch p {
	case PhaseLightWind:
		return 120
	case PhaseStrongWind:
		return 240
	case PhaseAttack:
		return 300
	case PhaseChaos:
		return 480
	default:
		return 0
	}
}

// Wind returns the base wind magnitude before the city multiplier.
func (p Phase) Wind() float64 {
	switch p {
	case PhaseLightWind:
		return 0.3
	case PhaseStrongWind:
		return 0.8
	case PhaseAttack:
		return 0.6
	case PhaseChaos:
		return 1.2
	default:
		return 0
	}
}

// Hostile reports whether litter attacks in this phase.
func (p Phase) Hostile() bool {
	return p == PhaseAttack || p == PhaseChaos
}

// Announcement is the text shown when the phase begins.
func (p Phase) Announcement() string {
	switch p {
	case PhaseLightWind:
		return "Wind is picking up!"
	case PhaseStrongWind:
		return "Strong wind!"
	case PhaseAttack:
		return "The litter attacks!"
	case PhaseChaos:
		return "CHAOS MODE!"
	default:
		return ""
	}
}

// PhaseAt returns the highest phase whose threshold is <= elapsed.
func PhaseAt(elapsed int) Phase {
	for i := len(Phases) - 1; i > 0; i-- {
		if elapsed >= Phases[i].Threshold() {
			return Phases[i]
		}
	}
	return PhaseCalm
}

// WindAngle returns the wind direction in radians for the 10-second bucket
// containing elapsed. It uses no entropy source.
func WindAngle(elapsed int) float64 {
	bucket := elapsed / 10
	return float64((bucket*7919)%628) / 100
}

// WindForce is the per-tick velocity added to every litter item.
func WindForce(p Phase, elapsed int, multiplier float64) core.Vec {
	mag := p.Wind() * multiplier
	if mag <= 0 {
		return core.Vec{}
	}
	return core.Polar(WindAngle(elapsed), mag*WindAccel)
}

// hostileSpeed is the effective attack speed for the phase.
func hostileSpeed(p Phase, attackMultiplier float64) float64 {
	speed := HostileSpeed * attackMultiplier
	if p == PhaseChaos {
		speed *= ChaosSpeedBoost
	}
	return speed
}
