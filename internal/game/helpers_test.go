package game

import (
	"testing"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/core"
)

func testCity(t *testing.T) config.City {
	t.Helper()
	city, err := config.DefaultCatalog().City("budapest")
	if err != nil {
		t.Fatalf("City: %v", err)
	}
	return city
}

func newTestSession(t *testing.T, lo Loadout, seed int64) *Session {
	t.Helper()
	s, err := New(testCity(t), lo, NewRand(seed))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// emptySession returns a session with no litter, NPCs or obstacles.
func emptySession(t *testing.T, lo Loadout) *Session {
	t.Helper()
	s := newTestSession(t, lo, 1)
	s.litter = nil
	s.npcs = nil
	s.obstacles = nil
	return s
}

func loadoutWith(t *testing.T, eq Equipment) Loadout {
	t.Helper()
	lo, err := ResolveLoadout(eq)
	if err != nil {
		t.Fatalf("ResolveLoadout: %v", err)
	}
	return lo
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// setElapsed moves the session clock so that elapsed seconds have passed.
func setElapsed(s *Session, elapsed int) {
	s.remaining = GameDuration - elapsed
}

// fixedRand always returns the same draws.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int { return min(r.n, n-1) }
