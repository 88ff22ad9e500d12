package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/core"
)

// Session is the aggregate root of one timed run in a city.
// It is not safe for concurrent use; the platform drives Step and Second
// from a single loop.
type Session struct {
	city    config.City
	loadout Loadout
	rng     Rand

	tick      uint64
	player    Player
	litter    []TrashItem
	npcs      []NPC
	bins      []Bin
	obstacles []Obstacle
	nextID    int

	score     int
	correct   int
	wrong     int
	remaining int
	phase     Phase
	paused    bool
	over      bool

	announcement  string
	announceTicks int

	hitsTaken    int
	shieldBlocks int
	stunned      int
}

// New creates a session in the given city with the given loadout.
// The city and loadout are validated up front; a session never runs
// on an invalid configuration.
func New(city config.City, lo Loadout, rng Rand) (*Session, error) {
	if err := city.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if err := lo.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("game: nil random source")
	}

	s := &Session{
		city:      city,
		loadout:   lo,
		rng:       rng,
		remaining: GameDuration,
		phase:     PhaseCalm,
		player: Player{
			Pos:      playerStart(),
			Facing:   FacingDown,
			Carrying: make([]TrashType, 0, lo.Capacity),
		},
		bins: binLayout(),
	}
	s.spawnTrash(city.TrashCount)
	s.spawnObstacles()
	s.spawnNPCs()
	return s, nil
}

// Step advances the simulation by one tick.
// The pause toggle is honored even while paused; everything else is a
// no-op while paused or after the session has ended.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !s.over {
		s.paused = !s.paused
	}
	if s.paused || s.over {
		return s.result("")
	}

	s.tick++
	announced := s.advancePhase()
	s.updateLitter()
	s.updateNPCs()
	s.spawnChaos()
	s.updatePlayer(in)
	if in.Has(core.ActionUse) {
		s.use()
	}
	if in.Has(core.ActionWeapon) {
		s.fireWeapon()
	}
	if s.remaining <= 0 {
		s.over = true
	}
	return s.result(announced)
}

// Second decrements the session clock by one second.
// The clock stops while paused and the session ends when it reaches zero.
func (s *Session) Second() core.GameState {
	if s.paused || s.over {
		return s.State()
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.over = true
	}
	return s.State()
}

// advancePhase re-evaluates the phase and returns its announcement on change.
func (s *Session) advancePhase() string {
	var announced string
	if next := PhaseAt(s.elapsed()); next > s.phase {
		s.phase = next
		s.announcement = next.Announcement()
		s.announceTicks = AnnouncementTicks
		announced = s.announcement
	}
	if s.announceTicks > 0 {
		s.announceTicks--
	}
	return announced
}

func (s *Session) elapsed() int {
	return GameDuration - s.remaining
}

// TogglePause flips the pause flag outside of a tick.
func (s *Session) TogglePause() {
	if !s.over {
		s.paused = !s.paused
	}
}

// State returns the coarse session status.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.score,
		Remaining: s.remaining,
		Phase:     s.phase.String(),
		GameOver:  s.over,
		Paused:    s.paused,
	}
}

func (s *Session) result(announcement string) core.StepResult {
	return core.StepResult{State: s.State(), Announcement: announcement}
}

// City returns the session's city.
func (s *Session) City() config.City { return s.city }

// Loadout returns the session's loadout.
func (s *Session) Loadout() Loadout { return s.loadout }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.over }

// Tick returns the number of simulated ticks.
func (s *Session) Tick() uint64 { return s.tick }
