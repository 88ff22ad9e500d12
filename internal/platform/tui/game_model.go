package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/core"
	"github.com/vovakirdan/trash-hero/internal/game"
	"github.com/vovakirdan/trash-hero/internal/replay"
	"github.com/vovakirdan/trash-hero/internal/storage"
)

// GameModel runs one city session: simulation ticks, the session timer,
// replay recording and the results screen.
type GameModel struct {
	env       Env
	city      config.City
	equipment game.Equipment
	loadout   game.Loadout
	theme     Theme
	keyMapper *KeyMapper
	held      *HeldInput
	screen    *core.Screen
	renderer  screenRenderer

	id      uint64
	seed    int64
	session *game.Session
	rec     *replay.Recorder

	finished  bool
	completed int
	result    game.Result
	outcome   *storage.Outcome
	saveErr   error

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for the city with the given equipment.
func NewGameModel(env Env, city config.City, eq game.Equipment) (GameModel, error) {
	env = env.normalized()
	lo, err := game.ResolveLoadout(eq)
	if err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		env:       env,
		city:      city,
		equipment: eq,
		loadout:   lo,
		theme:     DefaultTheme(),
		keyMapper: NewKeyMapper(),
		held:      NewHeldInput(),
		screen:    core.NewScreen(env.Config.ScreenW, env.Config.ScreenH),
		renderer:  newScreenRenderer(city),
	}
	if err := m.start(env.seed()); err != nil {
		return GameModel{}, err
	}
	return m, nil
}

// start begins a fresh session and, if enabled, its replay.
func (m *GameModel) start(seed int64) error {
	session, err := game.New(m.city, m.loadout, game.NewRand(seed))
	if err != nil {
		return err
	}

	m.id = nextGameID()
	m.seed = seed
	m.session = session
	m.finished = false
	m.result = game.Result{}
	m.outcome = nil
	m.saveErr = nil
	m.held.Reset()

	m.rec = nil
	if m.env.ReplayDir != "" {
		rec, err := replay.Create(m.env.ReplayDir, replay.Header{
			Seed:      seed,
			Profile:   m.env.Profile,
			City:      m.city,
			Equipment: m.equipment,
		}, m.env.Logger)
		if err != nil {
			m.env.Logger.Warn("replay disabled", "city", m.city.ID, "error", err)
		} else {
			m.rec = rec
		}
	}

	m.env.Logger.Debug("session started", "profile", m.env.Profile, "city", m.city.ID, "seed", seed)
	return nil
}

// Init starts the tick and timer loops.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.id, m.env.Config.TickRate), secondCmd(m.id))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield scales to the terminal, so the session keeps running.
		m.env.Config.ScreenW = msg.Width
		m.env.Config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Game != m.id || m.finished {
			return m, nil
		}
		return m.handleTick()

	case SecondMsg:
		if msg.Game != m.id || m.finished {
			return m, nil
		}
		return m.handleSecond()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.abandon()
		m.quitting = true
		return m, tea.Quit
	}

	if m.finished {
		switch action {
		case core.ActionRestart:
			if err := m.start(time.Now().UnixNano()); err != nil {
				m.env.Logger.Error("could not restart session", "city", m.city.ID, "error", err)
				m.backToMenu = true
				return m, nil
			}
			return m, m.Init()
		case core.ActionBack, core.ActionConfirm:
			m.backToMenu = true
		}
		return m, nil
	}

	// Back to menu only while paused, so a stray Esc doesn't end a run.
	if action == core.ActionBack && m.session.State().Paused {
		m.abandon()
		m.backToMenu = true
		return m, nil
	}

	m.held.Press(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	frame := m.held.Frame()
	result := m.session.Step(frame)
	if m.rec != nil {
		m.rec.Tick(frame)
	}

	if result.State.GameOver {
		m.finish()
		return m, nil
	}
	return m, tickCmd(m.id, m.env.Config.TickRate)
}

// handleSecond advances the session clock.
func (m GameModel) handleSecond() (tea.Model, tea.Cmd) {
	state := m.session.Second()
	if m.rec != nil {
		m.rec.Second()
	}

	if state.GameOver {
		m.finish()
		return m, nil
	}
	return m, secondCmd(m.id)
}

// finish persists the result and closes the replay. Persistence is best-effort.
func (m *GameModel) finish() {
	m.finished = true
	m.completed++
	m.result = m.session.Result()

	if m.rec != nil {
		if err := m.rec.Finish(m.session); err != nil {
			m.env.Logger.Warn("could not finish replay", "path", m.rec.Path(), "error", err)
		}
		m.rec = nil
	}

	if m.env.Store != nil {
		outcome, err := m.env.Store.RecordResult(m.env.Profile, m.env.Catalog, m.result)
		if err != nil {
			m.saveErr = err
			m.env.Logger.Error("could not save result", "profile", m.env.Profile, "city", m.city.ID, "error", err)
		} else {
			m.outcome = &outcome
		}
	}

	m.env.Logger.Info("session finished",
		"profile", m.env.Profile,
		"city", m.city.ID,
		"score", m.result.Score,
		"stars", m.result.Stars,
	)
}

// abandon drops an unfinished run. Its replay is left without a footer.
func (m *GameModel) abandon() {
	if m.rec != nil {
		if err := m.rec.Close(); err != nil {
			m.env.Logger.Warn("could not close replay", "path", m.rec.Path(), "error", err)
		}
		m.rec = nil
	}
	m.id = 0
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".trashhero", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.city.ID, timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.finished {
		return lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, m.resultsView())
	}

	m.session.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// resultsView renders the end-of-session summary.
func (m GameModel) resultsView() string {
	t := m.theme
	r := m.result

	var b strings.Builder
	b.WriteString(t.PanelTitle.Render(fmt.Sprintf("TIME'S UP - %s", m.city.Name)))
	b.WriteString("\n")
	b.WriteString(t.Stars.Render(StarString(r.Stars)))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Score", fmt.Sprintf("%d", r.Score)},
		{"Correct drops", fmt.Sprintf("%d", r.Correct)},
		{"Wrong drops", fmt.Sprintf("%d", r.Wrong)},
		{"Litter left", fmt.Sprintf("%d", r.RemainingLitter)},
		{"Time left", game.FormatClock(r.RemainingTime)},
		{"Hits taken", fmt.Sprintf("%d", r.HitsTaken)},
	}
	if m.loadout.Shield {
		rows = append(rows, [2]string{"Shield blocks", fmt.Sprintf("%d", r.ShieldBlocks)})
	}
	if m.loadout.HasWeapon() {
		rows = append(rows, [2]string{"Litterers stunned", fmt.Sprintf("%d", r.NPCsStunned)})
	}
	for _, row := range rows {
		b.WriteString(t.Muted.Render(fmt.Sprintf("%-18s", row[0])))
		b.WriteString(t.Text.Render(row[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Coins.Render(fmt.Sprintf("+%d coins", r.Coins())))
	if m.outcome != nil {
		b.WriteString(t.Muted.Render(fmt.Sprintf("  (balance %d)", m.outcome.CoinsBalance)))
		if m.outcome.NewBest {
			b.WriteString("\n")
			b.WriteString(t.Success.Render("New best score!"))
		}
		if m.outcome.Unlocked != "" {
			name := m.outcome.Unlocked
			if c, err := m.env.Catalog.City(name); err == nil {
				name = c.Name
			}
			b.WriteString("\n")
			b.WriteString(t.Success.Render(name + " unlocked!"))
		}
	}
	if m.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(t.Error.Render("Progress not saved: " + m.saveErr.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(t.Help.Render("R: play again  |  Enter/Esc: menu  |  Q: quit"))

	return t.Panel.Render(b.String())
}

// Finished reports whether the session has ended.
func (m GameModel) Finished() bool {
	return m.finished
}

// Completed counts the sessions finished by this model, restarts included.
func (m GameModel) Completed() int {
	return m.completed
}

// Result returns the final result once Finished is true.
func (m GameModel) Result() game.Result {
	return m.result
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
