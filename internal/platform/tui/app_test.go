package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/core"
	"github.com/vovakirdan/trash-hero/internal/game"
	"github.com/vovakirdan/trash-hero/internal/replay"
	"github.com/vovakirdan/trash-hero/internal/storage"
)

func testEnv(t *testing.T, store *storage.Store) Env {
	t.Helper()
	return Env{
		Store:   store,
		Catalog: config.DefaultCatalog(),
		Profile: "tester",
		Logger:  log.New(io.Discard),
		Config:  core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 42},
	}
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func budapest(t *testing.T) config.City {
	t.Helper()
	city, err := config.DefaultCatalog().City("budapest")
	if err != nil {
		t.Fatalf("City: %v", err)
	}
	return city
}

func updateGame(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

// runOut plays the session to the end with one tick per timer second.
func runOut(t *testing.T, m GameModel) GameModel {
	t.Helper()
	for i := 0; i < game.GameDuration && !m.Finished(); i++ {
		m, _ = updateGame(t, m, TickMsg{Game: m.id})
		m, _ = updateGame(t, m, SecondMsg{Game: m.id})
	}
	if !m.Finished() {
		t.Fatal("session should have finished")
	}
	return m
}

func TestGameModelTicksSession(t *testing.T) {
	m, err := NewGameModel(testEnv(t, nil), budapest(t), game.DefaultEquipment())
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}

	m, cmd := updateGame(t, m, TickMsg{Game: m.id})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.session.Tick() != 1 {
		t.Errorf("session tick = %d, expected 1", m.session.Tick())
	}

	m, _ = updateGame(t, m, SecondMsg{Game: m.id})
	if got := m.session.State().Remaining; got != game.GameDuration-1 {
		t.Errorf("remaining = %d, expected %d", got, game.GameDuration-1)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m, err := NewGameModel(testEnv(t, nil), budapest(t), game.DefaultEquipment())
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}

	m, cmd := updateGame(t, m, TickMsg{Game: m.id + 1000})
	if cmd != nil || m.session.Tick() != 0 {
		t.Error("tick for another game should be ignored")
	}
	m, _ = updateGame(t, m, SecondMsg{Game: m.id + 1000})
	if m.session.State().Remaining != game.GameDuration {
		t.Error("second for another game should be ignored")
	}
}

func TestGameModelHeldMovement(t *testing.T) {
	m, err := NewGameModel(testEnv(t, nil), budapest(t), game.DefaultEquipment())
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}
	start := m.session.Snapshot().Player.Pos

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 3; i++ {
		m, _ = updateGame(t, m, TickMsg{Game: m.id})
	}

	pos := m.session.Snapshot().Player.Pos
	if pos.X >= start.X {
		t.Errorf("player should have moved left over several ticks: %v -> %v", start, pos)
	}
}

func TestGameModelPauseAndBack(t *testing.T) {
	m, err := NewGameModel(testEnv(t, nil), budapest(t), game.DefaultEquipment())
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}

	// Esc while running does nothing
	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Esc should not leave a running session")
	}

	m, _ = updateGame(t, m, runeKey('p'))
	m, _ = updateGame(t, m, TickMsg{Game: m.id})
	if !m.session.State().Paused {
		t.Fatal("P should pause on the next tick")
	}

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc while paused should return to the menu")
	}
}

func TestGameModelQuit(t *testing.T) {
	m, err := NewGameModel(testEnv(t, nil), budapest(t), game.DefaultEquipment())
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}

	m, cmd := updateGame(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelFinishPersists(t *testing.T) {
	store := testStore(t)
	env := testEnv(t, store)
	env.ReplayDir = filepath.Join(t.TempDir(), "replays")

	m, err := NewGameModel(env, budapest(t), game.DefaultEquipment())
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}
	m = runOut(t, m)

	if m.Completed() != 1 {
		t.Errorf("Completed = %d, expected 1", m.Completed())
	}
	if m.outcome == nil {
		t.Fatalf("result should be recorded, save error: %v", m.saveErr)
	}

	history, err := store.History("tester", "budapest", 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].Score != m.Result().Score {
		t.Errorf("history = %+v, expected one session with score %d", history, m.Result().Score)
	}

	if !strings.Contains(m.View(), "TIME'S UP") {
		t.Error("finished model should show the results screen")
	}

	// The replay re-simulates to the same final state
	files, err := filepath.Glob(filepath.Join(env.ReplayDir, "budapest-*"+replay.Extension))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one replay file, got %v (%v)", files, err)
	}
	rep, err := replay.Load(files[0])
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	report, err := replay.Verify(rep)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !report.Match {
		t.Error("recorded replay should verify")
	}

	// Stale ticks after the end are ignored
	before := m.session.Tick()
	m, _ = updateGame(t, m, TickMsg{Game: m.id})
	if m.session.Tick() != before {
		t.Error("finished session should not tick")
	}
}

func TestGameModelRestart(t *testing.T) {
	m, err := NewGameModel(testEnv(t, nil), budapest(t), game.DefaultEquipment())
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}
	m = runOut(t, m)
	oldID := m.id

	m, cmd := updateGame(t, m, runeKey('r'))
	if m.Finished() {
		t.Error("restart should begin a new session")
	}
	if m.id == oldID {
		t.Error("restart should use a new game id")
	}
	if cmd == nil {
		t.Error("restart should schedule ticks")
	}
	if m.session.State().Remaining != game.GameDuration {
		t.Error("restarted session should have a full clock")
	}
}

func TestGameModelAbandonLeavesIncompleteReplay(t *testing.T) {
	env := testEnv(t, nil)
	env.ReplayDir = t.TempDir()

	m, err := NewGameModel(env, budapest(t), game.DefaultEquipment())
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}
	m, _ = updateGame(t, m, TickMsg{Game: m.id})
	m, _ = updateGame(t, m, runeKey('q'))

	entries, err := os.ReadDir(env.ReplayDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one replay file: %v %v", entries, err)
	}
	rep, err := replay.Load(filepath.Join(env.ReplayDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rep.Footer != nil {
		t.Error("abandoned replay should have no footer")
	}
}

func updateApp(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am
}

func TestAppMenuLocksCities(t *testing.T) {
	m := NewAppModel(testEnv(t, testStore(t)))

	// Move to paris, which starts locked
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Current() != ScreenMenu {
		t.Fatal("locked city should not start a game")
	}
	if !strings.Contains(m.View(), "locked") {
		t.Error("menu should show locked cities")
	}

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Current() != ScreenGame {
		t.Error("first city should start a game")
	}
}

func TestAppWithoutStoreUnlocksAll(t *testing.T) {
	m := NewAppModel(testEnv(t, nil))

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Current() != ScreenGame {
		t.Error("without a store every city should be playable")
	}
}

func TestAppGameFlowCreditsCoinsWithoutStore(t *testing.T) {
	m := NewAppModel(testEnv(t, nil))
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Current() != ScreenGame {
		t.Fatal("expected game screen")
	}

	for i := 0; i < game.GameDuration && !m.game.Finished(); i++ {
		m = updateApp(t, m, SecondMsg{Game: m.game.id})
	}
	if !m.game.Finished() {
		t.Fatal("game should have finished")
	}
	if m.credited != 1 {
		t.Errorf("credited = %d, expected 1", m.credited)
	}
	if m.Inventory().Coins != m.game.Result().Coins() {
		t.Errorf("coins = %d, expected %d", m.Inventory().Coins, m.game.Result().Coins())
	}

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Current() != ScreenMenu {
		t.Error("Enter on results should return to the menu")
	}
}

func TestAppShopAndScores(t *testing.T) {
	store := testStore(t)
	m := NewAppModel(testEnv(t, store))

	m = updateApp(t, m, runeKey('$'))
	if m.Current() != ScreenShop {
		t.Fatal("$ should open the shop")
	}
	// Gloves are owned and equipped already
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "Equipped") {
		t.Error("selecting an owned item should equip it")
	}
	// Grabber costs coins we don't have
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "Not enough coins") {
		t.Error("buying without coins should fail")
	}

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Current() != ScreenMenu {
		t.Fatal("Esc should return to the menu")
	}

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Current() != ScreenScores {
		t.Fatal("Tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "Budapest") {
		t.Error("scoreboard should start at the selected city")
	}
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Current() != ScreenMenu {
		t.Error("Esc should leave the scoreboard")
	}
}

func TestShopBuyPersists(t *testing.T) {
	store := testStore(t)
	env := testEnv(t, store)

	if _, err := store.RecordResult("tester", env.Catalog, game.Result{CityID: "budapest", Score: 120, Stars: 1}); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	m := NewShopScreenModel(env)
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyDown}) // Grabber, 100 coins
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	inv, err := store.Inventory("tester")
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	if !inv.Owns(string(game.ToolStick)) || inv.Equipped.Tool != game.ToolStick {
		t.Errorf("grabber should be bought and equipped: %+v", inv)
	}
	if inv.Coins != 20 {
		t.Errorf("coins = %d, expected 20", inv.Coins)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || next.(AppModel).Current() != ScreenShop {
		t.Error("single-screen shop should quit on back")
	}
}

func TestPlayModelStartsInGame(t *testing.T) {
	m, err := NewPlayModel(testEnv(t, nil), budapest(t))
	if err != nil {
		t.Fatalf("NewPlayModel: %v", err)
	}
	if m.Current() != ScreenGame {
		t.Fatal("play model should start in the game")
	}
	if m.Init() == nil {
		t.Error("play model should start ticking")
	}
}

func TestProfileForUser(t *testing.T) {
	tests := []struct {
		user, expected string
	}{
		{"alice", "alice"},
		{"bob.smith", "bob.smith"},
		{"evil/../user", "evil_.._user"},
		{"", "ssh-"},
		{storage.DefaultProfile, "ssh-" + storage.DefaultProfile},
	}

	for _, tc := range tests {
		if got := ProfileForUser(tc.user); got != tc.expected {
			t.Errorf("ProfileForUser(%q) = %q, expected %q", tc.user, got, tc.expected)
		}
	}
}
