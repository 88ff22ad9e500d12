package game

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/trash-hero/internal/core"
)

// atBin places the player on the center of bin i.
func atBin(s *Session, i int) {
	s.player.Pos = s.bins[i].Box.Center()
}

func TestDropScoresMatchingAndBonus(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	atBin(s, 0) // paper
	s.player.Carrying = []TrashType{TrashPaper, TrashGlass, TrashBonus}

	s.Step(press(core.ActionUse))

	if s.score != ScoreCorrect+ScoreBonus {
		t.Errorf("score = %d, expected %d", s.score, ScoreCorrect+ScoreBonus)
	}
	if s.correct != 2 {
		t.Errorf("correct = %d, expected 2", s.correct)
	}
	if s.wrong != 0 {
		t.Errorf("wrong = %d, expected 0", s.wrong)
	}
	if !reflect.DeepEqual(s.player.Carrying, []TrashType{TrashGlass}) {
		t.Errorf("carrying = %v, expected [glass]", s.player.Carrying)
	}
}

func TestBonusScoresInAnyBin(t *testing.T) {
	for i := range BinTypes {
		s := emptySession(t, DefaultLoadout())
		atBin(s, i)
		s.player.Carrying = []TrashType{TrashBonus, TrashBonus}
		s.Step(press(core.ActionUse))
		if s.score != 2*ScoreBonus || s.correct != 2 || len(s.player.Carrying) != 0 {
			t.Errorf("bin %v: score=%d correct=%d carrying=%v", BinTypes[i], s.score, s.correct, s.player.Carrying)
		}
	}
}

func TestDropScoreIsPerMatchingItem(t *testing.T) {
	s := emptySession(t, loadoutWith(t, Equipment{Tool: ToolGlove, Bag: BagMedium, Shield: ShieldNone, Weapon: WeaponNone}))
	atBin(s, 2) // glass
	s.player.Carrying = []TrashType{TrashGlass, TrashGlass, TrashGlass, TrashGlass}
	s.score = 10

	s.Step(press(core.ActionUse))
	if s.score != 10+4*ScoreCorrect || s.correct != 4 {
		t.Errorf("score=%d correct=%d", s.score, s.correct)
	}
}

func TestBinInRangeConsumesActionEvenIfNothingAccepted(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	atBin(s, 0) // paper
	s.player.Carrying = []TrashType{TrashGlass}
	s.litter = []TrashItem{{ID: 1, Type: TrashPaper, Pos: s.player.Pos.Add(core.V(5, 0))}}

	s.Step(press(core.ActionUse))

	if !reflect.DeepEqual(s.player.Carrying, []TrashType{TrashGlass}) {
		t.Errorf("carrying = %v, expected [glass]", s.player.Carrying)
	}
	if len(s.litter) != 1 {
		t.Error("pickup should be skipped when a bin was in range")
	}
	if s.score != 0 || s.correct != 0 {
		t.Errorf("nothing should score: score=%d correct=%d", s.score, s.correct)
	}
}

func TestPickupNearestFirstUpToCapacity(t *testing.T) {
	s := emptySession(t, DefaultLoadout()) // glove 45, basic bag 3
	p := s.player.Pos
	s.litter = []TrashItem{
		{ID: 1, Type: TrashMixed, Pos: p.Add(core.V(40, 0))},
		{ID: 2, Type: TrashPaper, Pos: p.Add(core.V(10, 0))},
		{ID: 3, Type: TrashOrganic, Pos: p.Add(core.V(0, 50))},
		{ID: 4, Type: TrashPlastic, Pos: p.Add(core.V(0, -20))},
		{ID: 5, Type: TrashGlass, Pos: p.Add(core.V(-30, 0))},
	}

	s.Step(press(core.ActionUse))

	expected := []TrashType{TrashPaper, TrashPlastic, TrashGlass}
	if !reflect.DeepEqual(s.player.Carrying, expected) {
		t.Errorf("carrying = %v, expected %v", s.player.Carrying, expected)
	}
	if len(s.litter) != 2 || s.litter[0].ID != 1 || s.litter[1].ID != 3 {
		t.Errorf("remaining litter = %+v, expected ids 1 and 3", s.litter)
	}
}

func TestPickupRangeIsStrict(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	s.litter = []TrashItem{{ID: 1, Type: TrashPaper, Pos: s.player.Pos.Add(core.V(45, 0))}}

	s.Step(press(core.ActionUse))
	if len(s.player.Carrying) != 0 {
		t.Error("item exactly at pickup range should not be picked up")
	}

	lo := loadoutWith(t, Equipment{Tool: ToolStick, Bag: BagBasic, Shield: ShieldNone, Weapon: WeaponNone})
	s = emptySession(t, lo)
	s.litter = []TrashItem{{ID: 1, Type: TrashPaper, Pos: s.player.Pos.Add(core.V(60, 0))}}
	s.Step(press(core.ActionUse))
	if len(s.player.Carrying) != 1 {
		t.Error("stick should reach an item at distance 60")
	}
}

func TestPickupWithFullBag(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	s.player.Carrying = []TrashType{TrashPaper, TrashPaper, TrashPaper}
	s.litter = []TrashItem{{ID: 1, Type: TrashGlass, Pos: s.player.Pos.Add(core.V(5, 0))}}

	s.Step(press(core.ActionUse))
	if len(s.player.Carrying) != 3 || len(s.litter) != 1 {
		t.Errorf("full bag should not pick up: carrying=%v litter=%d", s.player.Carrying, len(s.litter))
	}
}

func TestPickupTopsUpPartialBag(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	s.player.Carrying = []TrashType{TrashPaper, TrashPaper}
	p := s.player.Pos
	s.litter = []TrashItem{
		{ID: 1, Type: TrashGlass, Pos: p.Add(core.V(5, 0))},
		{ID: 2, Type: TrashMixed, Pos: p.Add(core.V(6, 0))},
	}

	s.Step(press(core.ActionUse))
	if len(s.player.Carrying) != 3 || s.player.Carrying[2] != TrashGlass {
		t.Errorf("carrying = %v", s.player.Carrying)
	}
	if len(s.litter) != 1 || s.litter[0].ID != 2 {
		t.Errorf("remaining litter = %+v", s.litter)
	}
}

func TestStunnedPlayerCannotPickUpOrDrop(t *testing.T) {
	s := emptySession(t, DefaultLoadout())
	atBin(s, 0)
	s.player.Carrying = []TrashType{TrashPaper}
	s.player.Stun = 10

	s.Step(press(core.ActionUse))
	if s.score != 0 || len(s.player.Carrying) != 1 {
		t.Error("stunned player should not drop")
	}

	s = emptySession(t, DefaultLoadout())
	s.player.Stun = 10
	s.litter = []TrashItem{{ID: 1, Type: TrashGlass, Pos: s.player.Pos.Add(core.V(5, 0))}}
	s.Step(press(core.ActionUse))
	if len(s.player.Carrying) != 0 || len(s.litter) != 1 {
		t.Error("stunned player should not pick up")
	}
}

func taserSession(t *testing.T) *Session {
	t.Helper()
	s := emptySession(t, loadoutWith(t, Equipment{Tool: ToolGlove, Bag: BagBasic, Shield: ShieldNone, Weapon: WeaponTaser}))
	p := s.player.Pos
	// Targets equal positions so the NPCs stay put this tick.
	near := p.Add(core.V(100, 0))
	far := p.Add(core.V(0, 200))
	s.npcs = []NPC{
		{ID: 1, Pos: near, Target: near, DropTimer: 1000},
		{ID: 2, Pos: far, Target: far, DropTimer: 1000},
	}
	return s
}

func TestWeaponStunsNPCsInRange(t *testing.T) {
	s := taserSession(t)
	s.Step(press(core.ActionWeapon))

	if s.npcs[0].Stun != 300 {
		t.Errorf("near NPC stun = %d, expected 300", s.npcs[0].Stun)
	}
	if s.npcs[1].Stun != 0 {
		t.Errorf("far NPC stun = %d, expected 0", s.npcs[1].Stun)
	}
	if s.player.WeaponCooldown != 900 {
		t.Errorf("weapon cooldown = %d, expected 900", s.player.WeaponCooldown)
	}
	if s.Result().NPCsStunned != 1 {
		t.Errorf("NPCsStunned = %d", s.Result().NPCsStunned)
	}
}

func TestWeaponOnCooldownHasNoEffect(t *testing.T) {
	s := taserSession(t)
	s.player.WeaponCooldown = 10

	s.Step(press(core.ActionWeapon))
	if s.npcs[0].Stun != 0 {
		t.Error("weapon on cooldown should not stun")
	}
	if s.player.WeaponCooldown != 9 {
		t.Errorf("cooldown = %d, expected only its own decrement to 9", s.player.WeaponCooldown)
	}
}

func TestNoWeaponHasNoEffect(t *testing.T) {
	s := taserSession(t)
	s.loadout = DefaultLoadout()

	s.Step(press(core.ActionWeapon))
	if s.npcs[0].Stun != 0 || s.player.WeaponCooldown != 0 {
		t.Error("no weapon should do nothing")
	}
}
