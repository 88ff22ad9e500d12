package game

import (
	"math"
	"testing"
)

func TestPhaseAt(t *testing.T) {
	tests := []struct {
		elapsed  int
		expected Phase
	}{
		{0, PhaseCalm},
		{119, PhaseCalm},
		{120, PhaseLightWind},
		{239, PhaseLightWind},
		{240, PhaseStrongWind},
		{299, PhaseStrongWind},
		{300, PhaseAttack},
		{479, PhaseAttack},
		{480, PhaseChaos},
		{600, PhaseChaos},
	}

	for _, tc := range tests {
		if got := PhaseAt(tc.elapsed); got != tc.expected {
			t.Errorf("PhaseAt(%d) = %v, expected %v", tc.elapsed, got, tc.expected)
		}
	}
}

func TestPhaseAtIsMonotonic(t *testing.T) {
	prev := PhaseAt(0)
	for e := 1; e <= GameDuration; e++ {
		p := PhaseAt(e)
		if p < prev {
			t.Fatalf("phase reverted from %v to %v at %ds", prev, p, e)
		}
		prev = p
	}
}

func TestPhaseProperties(t *testing.T) {
	tests := []struct {
		phase   Phase
		name    string
		wind    float64
		hostile bool
	}{
		{PhaseCalm, "calm", 0, false},
		{PhaseLightWind, "light-wind", 0.3, false},
		{PhaseStrongWind, "strong-wind", 0.8, false},
		{PhaseAttack, "attack", 0.6, true},
		{PhaseChaos, "chaos", 1.2, true},
	}
	for _, tc := range tests {
		if tc.phase.String() != tc.name {
			t.Errorf("String() = %q, expected %q", tc.phase.String(), tc.name)
		}
		if tc.phase.Wind() != tc.wind {
			t.Errorf("%s wind = %v, expected %v", tc.name, tc.phase.Wind(), tc.wind)
		}
		if tc.phase.Hostile() != tc.hostile {
			t.Errorf("%s hostile = %v", tc.name, tc.phase.Hostile())
		}
		if tc.phase != PhaseCalm && tc.phase.Announcement() == "" {
			t.Errorf("%s should have an announcement", tc.name)
		}
	}
}

func TestWindAngleIsDeterministicPerBucket(t *testing.T) {
	tests := []struct {
		elapsed  int
		expected float64
	}{
		{0, 0},
		{9, 0},
		{10, 3.83},
		{19, 3.83},
		{25, 1.38},
	}
	for _, tc := range tests {
		if got := WindAngle(tc.elapsed); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("WindAngle(%d) = %v, expected %v", tc.elapsed, got, tc.expected)
		}
	}

	for e := 0; e < GameDuration; e++ {
		if WindAngle(e) != WindAngle(e/10*10) {
			t.Fatalf("WindAngle(%d) differs within its bucket", e)
		}
	}
}

func TestWindForce(t *testing.T) {
	if f := WindForce(PhaseCalm, 50, 1.5); f.Len() != 0 {
		t.Errorf("calm should have no wind, got %v", f)
	}

	f := WindForce(PhaseLightWind, 130, 1.0)
	if math.Abs(f.Len()-0.3*WindAccel) > 1e-12 {
		t.Errorf("light wind magnitude = %v, expected %v", f.Len(), 0.3*WindAccel)
	}
	if math.Abs(f.Angle()-normalizeAngle(WindAngle(130))) > 1e-9 {
		t.Errorf("wind direction = %v, expected %v", f.Angle(), WindAngle(130))
	}

	doubled := WindForce(PhaseLightWind, 130, 2.0)
	if math.Abs(doubled.Len()-2*f.Len()) > 1e-12 {
		t.Errorf("city multiplier should scale wind, got %v vs %v", doubled.Len(), f.Len())
	}
}

// normalizeAngle maps an angle into (-pi, pi] to compare with Atan2.
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func TestHostileSpeed(t *testing.T) {
	if got := hostileSpeed(PhaseAttack, 1.5); math.Abs(got-1.2) > 1e-12 {
		t.Errorf("attack speed = %v, expected 1.2", got)
	}
	if got := hostileSpeed(PhaseChaos, 1.0); math.Abs(got-1.2) > 1e-12 {
		t.Errorf("chaos speed = %v, expected 1.2", got)
	}
}
