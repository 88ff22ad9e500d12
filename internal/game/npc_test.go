package game

import (
	"testing"

	"github.com/vovakirdan/trash-hero/internal/core"
)

func TestNPCWalksTowardTarget(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	s.npcs = []NPC{{ID: 1, Pos: core.V(100, 100), Target: core.V(200, 100), DropTimer: 100}}

	s.Step(core.NewInputFrame())

	if core.Dist(s.npcs[0].Pos, core.V(100+NPCSpeed, 100)) > 1e-9 {
		t.Errorf("pos = %v, expected (%v, 100)", s.npcs[0].Pos, 100+NPCSpeed)
	}
	if s.npcs[0].DropTimer != 99 {
		t.Errorf("drop timer = %d, expected 99", s.npcs[0].DropTimer)
	}
}

func TestNPCRepicksTargetOnArrival(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	s.rng = fixedRand{f: 0.5}
	s.npcs = []NPC{{ID: 1, Pos: core.V(100, 100), Target: core.V(103, 100), DropTimer: 100}}

	s.Step(core.NewInputFrame())

	if s.npcs[0].Pos != core.V(100, 100) {
		t.Errorf("NPC should not move on arrival, at %v", s.npcs[0].Pos)
	}
	if s.npcs[0].Target != core.V(400, 280) {
		t.Errorf("target = %v, expected (400, 280)", s.npcs[0].Target)
	}
}

func TestNPCRepicksTargetWhenBlocked(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	s.rng = fixedRand{f: 0.5}
	s.obstacles = []Obstacle{{Kind: ObstacleTree, Box: core.Box{Pos: core.V(111, 80), W: 32, H: 40}}}
	s.npcs = []NPC{{ID: 1, Pos: core.V(100, 100), Target: core.V(200, 100), DropTimer: 100}}

	s.Step(core.NewInputFrame())

	if s.npcs[0].Pos != core.V(100, 100) {
		t.Errorf("blocked NPC should stay, at %v", s.npcs[0].Pos)
	}
	if s.npcs[0].Target == core.V(200, 100) {
		t.Error("blocked NPC should pick a new target")
	}
}

func TestNPCDropsLitter(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	s.rng = fixedRand{f: 0.75, n: 30}
	s.npcs = []NPC{{ID: 1, Pos: core.V(300, 300), Target: core.V(300, 300), DropTimer: 1}}

	s.Step(core.NewInputFrame())

	if len(s.litter) != 1 {
		t.Fatalf("expected one littered item, got %d", len(s.litter))
	}
	item := s.litter[0]
	if item.Hostile {
		t.Error("littered items start dormant")
	}
	// (0.75-0.5)*2 = 0.5 outward velocity on both axes.
	if item.Vel != core.V(0.5, 0.5) {
		t.Errorf("vel = %v, expected (0.5, 0.5)", item.Vel)
	}
	if s.npcs[0].DropTimer != NPCDropInterval+30 {
		t.Errorf("drop timer = %d, expected %d", s.npcs[0].DropTimer, NPCDropInterval+30)
	}
}

func TestStunnedNPCIsFrozen(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	s.npcs = []NPC{{ID: 1, Pos: core.V(100, 100), Target: core.V(200, 100), DropTimer: 1, Stun: 3}}

	s.Step(core.NewInputFrame())

	n := s.npcs[0]
	if n.Pos != core.V(100, 100) || n.DropTimer != 1 || n.Stun != 2 {
		t.Errorf("stunned NPC changed: %+v", n)
	}
	if len(s.litter) != 0 {
		t.Error("stunned NPC should not litter")
	}
}
