// Package storage provides SQLite-based persistence for city progress,
// the shop inventory and session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/game"
	"github.com/vovakirdan/trash-hero/internal/shop"
)

// DefaultProfile is the profile used by local (non-SSH) play.
const DefaultProfile = "local"

// Store manages the SQLite database connection.
// All data is keyed by profile so SSH users don't share progress.
type Store struct {
	db *sql.DB
}

// CityProgress is a city's state for one profile.
type CityProgress struct {
	City      config.City
	Unlocked  bool
	BestScore int
	Stars     int
}

// SessionEntry is one finished session from the history table.
type SessionEntry struct {
	ID        int64
	Profile   string
	CityID    string
	Score     int
	Correct   int
	Wrong     int
	Remaining int
	Stars     int
	CreatedAt time.Time
}

// Outcome describes what a recorded result changed.
type Outcome struct {
	NewBest      bool
	Unlocked     string // id of the city newly unlocked, if any
	CoinsEarned  int
	CoinsBalance int
}

// CityStats contains aggregated statistics for a city.
type CityStats struct {
	CityID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions write concurrently; a single connection serializes them
	// instead of surfacing SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS city_progress (
			profile TEXT NOT NULL,
			city_id TEXT NOT NULL,
			unlocked INTEGER NOT NULL DEFAULT 0,
			best_score INTEGER NOT NULL DEFAULT 0,
			stars INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (profile, city_id)
		);

		CREATE TABLE IF NOT EXISTS inventory (
			profile TEXT PRIMARY KEY,
			coins INTEGER NOT NULL DEFAULT 0,
			equipped_tool TEXT NOT NULL,
			equipped_bag TEXT NOT NULL,
			equipped_shield TEXT NOT NULL,
			equipped_weapon TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS owned_items (
			profile TEXT NOT NULL,
			category TEXT NOT NULL,
			item_id TEXT NOT NULL,
			PRIMARY KEY (profile, item_id)
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			city_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			wrong INTEGER NOT NULL,
			remaining INTEGER NOT NULL,
			stars INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_profile ON sessions(profile);
		CREATE INDEX IF NOT EXISTS idx_sessions_city ON sessions(profile, city_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Progress returns every catalog city in order with the profile's state.
// The first city is always unlocked.
func (s *Store) Progress(profile string, cat config.Catalog) ([]CityProgress, error) {
	rows, err := s.db.Query(
		`SELECT city_id, unlocked, best_score, stars
		 FROM city_progress
		 WHERE profile = ?`,
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	type row struct {
		unlocked bool
		best     int
		stars    int
	}
	saved := make(map[string]row)
	for rows.Next() {
		var id string
		var r row
		if err := rows.Scan(&id, &r.unlocked, &r.best, &r.stars); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		saved[id] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	progress := make([]CityProgress, len(cat.Cities))
	for i, city := range cat.Cities {
		r := saved[city.ID]
		progress[i] = CityProgress{
			City:      city,
			Unlocked:  i == 0 || r.unlocked,
			BestScore: r.best,
			Stars:     r.stars,
		}
	}
	return progress, nil
}

// Unlocked reports whether the profile may play the city.
func (s *Store) Unlocked(profile string, cat config.Catalog, cityID string) (bool, error) {
	progress, err := s.Progress(profile, cat)
	if err != nil {
		return false, err
	}
	for _, p := range progress {
		if p.City.ID == cityID {
			return p.Unlocked, nil
		}
	}
	return false, fmt.Errorf("storage: %w: %q", config.ErrUnknownCity, cityID)
}

// RecordResult applies a finished session in one transaction: best score and
// stars are kept, one star or more unlocks the next city, the score is added
// to the coin balance and a history row is written.
func (s *Store) RecordResult(profile string, cat config.Catalog, r game.Result) (Outcome, error) {
	var out Outcome
	if cat.Index(r.CityID) < 0 {
		return out, fmt.Errorf("storage: %w: %q", config.ErrUnknownCity, r.CityID)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return out, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var prevBest sql.NullInt64
	err = tx.QueryRow(
		"SELECT best_score FROM city_progress WHERE profile = ? AND city_id = ?",
		profile, r.CityID,
	).Scan(&prevBest)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return out, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	out.NewBest = !prevBest.Valid || r.Score > int(prevBest.Int64)

	_, err = tx.Exec(
		`INSERT INTO city_progress (profile, city_id, unlocked, best_score, stars)
		 VALUES (?, ?, 1, ?, ?)
		 ON CONFLICT(profile, city_id) DO UPDATE SET
		   unlocked = 1,
		   best_score = MAX(best_score, excluded.best_score),
		   stars = MAX(stars, excluded.stars)`,
		profile, r.CityID, r.Score, r.Stars,
	)
	if err != nil {
		return out, fmt.Errorf("storage: cannot save progress: %w", err)
	}

	if next, ok := cat.Next(r.CityID); ok && r.Stars >= 1 {
		var wasUnlocked sql.NullBool
		err = tx.QueryRow(
			"SELECT unlocked FROM city_progress WHERE profile = ? AND city_id = ?",
			profile, next.ID,
		).Scan(&wasUnlocked)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return out, fmt.Errorf("storage: cannot query unlock: %w", err)
		}
		if !wasUnlocked.Bool {
			out.Unlocked = next.ID
		}
		_, err = tx.Exec(
			`INSERT INTO city_progress (profile, city_id, unlocked)
			 VALUES (?, ?, 1)
			 ON CONFLICT(profile, city_id) DO UPDATE SET unlocked = 1`,
			profile, next.ID,
		)
		if err != nil {
			return out, fmt.Errorf("storage: cannot unlock %s: %w", next.ID, err)
		}
	}

	if err := ensureInventory(tx, profile); err != nil {
		return out, err
	}
	out.CoinsEarned = r.Coins()
	_, err = tx.Exec("UPDATE inventory SET coins = coins + ? WHERE profile = ?", out.CoinsEarned, profile)
	if err != nil {
		return out, fmt.Errorf("storage: cannot add coins: %w", err)
	}
	if err := tx.QueryRow("SELECT coins FROM inventory WHERE profile = ?", profile).Scan(&out.CoinsBalance); err != nil {
		return out, fmt.Errorf("storage: cannot read coins: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO sessions (profile, city_id, score, correct, wrong, remaining, stars)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		profile, r.CityID, r.Score, r.Correct, r.Wrong, r.RemainingLitter, r.Stars,
	)
	if err != nil {
		return out, fmt.Errorf("storage: cannot save session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return out, fmt.Errorf("storage: cannot commit result: %w", err)
	}
	return out, nil
}

// Inventory loads the profile's inventory, or the default one if the profile
// has never saved.
func (s *Store) Inventory(profile string) (shop.Inventory, error) {
	inv := shop.DefaultInventory()
	var eq game.Equipment
	err := s.db.QueryRow(
		`SELECT coins, equipped_tool, equipped_bag, equipped_shield, equipped_weapon
		 FROM inventory WHERE profile = ?`,
		profile,
	).Scan(&inv.Coins, &eq.Tool, &eq.Bag, &eq.Shield, &eq.Weapon)
	if errors.Is(err, sql.ErrNoRows) {
		return inv, nil
	}
	if err != nil {
		return inv, fmt.Errorf("storage: cannot query inventory: %w", err)
	}
	inv.Equipped = eq

	rows, err := s.db.Query("SELECT item_id FROM owned_items WHERE profile = ?", profile)
	if err != nil {
		return inv, fmt.Errorf("storage: cannot query owned items: %w", err)
	}
	defer rows.Close()

	inv.Owned = make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return inv, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		inv.Owned[id] = true
	}
	if err := rows.Err(); err != nil {
		return inv, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return inv, nil
}

// SaveInventory replaces the profile's coins, owned items and equipped set.
func (s *Store) SaveInventory(profile string, inv shop.Inventory) error {
	if _, err := game.ResolveLoadout(inv.Equipped); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := upsertInventory(tx, profile, inv); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM owned_items WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear owned items: %w", err)
	}
	for id, owned := range inv.Owned {
		if !owned {
			continue
		}
		it, err := shop.Find(id)
		if err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		_, err = tx.Exec(
			"INSERT INTO owned_items (profile, category, item_id) VALUES (?, ?, ?)",
			profile, string(it.Category), id,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save owned item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit inventory: %w", err)
	}
	return nil
}

// History returns the profile's most recent sessions, newest first.
// An empty cityID returns sessions for every city.
func (s *Store) History(profile, cityID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, profile, city_id, score, correct, wrong, remaining, stars, created_at
		 FROM sessions
		 WHERE profile = ? AND (? = '' OR city_id = ?)
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		profile, cityID, cityID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.CityID, &e.Score, &e.Correct, &e.Wrong,
			&e.Remaining, &e.Stars, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CityStats retrieves aggregated statistics for every city the profile has played.
func (s *Store) CityStats(profile string) (map[string]*CityStats, error) {
	rows, err := s.db.Query(
		`SELECT city_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM sessions
		 WHERE profile = ?
		 GROUP BY city_id`,
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get city stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*CityStats)
	for rows.Next() {
		var cs CityStats
		var lastPlayed any
		if err := rows.Scan(&cs.CityID, &cs.GamesCount, &cs.HighScore, &cs.AvgScore, &cs.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		cs.LastPlayed = parseTime(lastPlayed)
		stats[cs.CityID] = &cs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ensureInventory writes the default inventory for a profile that has none.
func ensureInventory(tx *sql.Tx, profile string) error {
	var exists int
	err := tx.QueryRow("SELECT COUNT(*) FROM inventory WHERE profile = ?", profile).Scan(&exists)
	if err != nil {
		return fmt.Errorf("storage: cannot query inventory: %w", err)
	}
	if exists > 0 {
		return nil
	}

	inv := shop.DefaultInventory()
	if err := upsertInventory(tx, profile, inv); err != nil {
		return err
	}
	for id := range inv.Owned {
		it, err := shop.Find(id)
		if err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		_, err = tx.Exec(
			"INSERT OR IGNORE INTO owned_items (profile, category, item_id) VALUES (?, ?, ?)",
			profile, string(it.Category), id,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save owned item: %w", err)
		}
	}
	return nil
}

func upsertInventory(tx *sql.Tx, profile string, inv shop.Inventory) error {
	_, err := tx.Exec(
		`INSERT INTO inventory (profile, coins, equipped_tool, equipped_bag, equipped_shield, equipped_weapon)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(profile) DO UPDATE SET
		   coins = excluded.coins,
		   equipped_tool = excluded.equipped_tool,
		   equipped_bag = excluded.equipped_bag,
		   equipped_shield = excluded.equipped_shield,
		   equipped_weapon = excluded.equipped_weapon`,
		profile, inv.Coins,
		string(inv.Equipped.Tool), string(inv.Equipped.Bag),
		string(inv.Equipped.Shield), string(inv.Equipped.Weapon),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save inventory: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
