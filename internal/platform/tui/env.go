package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/core"
	"github.com/vovakirdan/trash-hero/internal/game"
	"github.com/vovakirdan/trash-hero/internal/storage"
)

// Env bundles the collaborators every screen needs.
type Env struct {
	Store     *storage.Store // nil runs without persistence
	Catalog   config.Catalog
	Profile   string
	ReplayDir string // empty disables replay recording
	Logger    *log.Logger
	Config    core.RuntimeConfig
}

// normalized fills unset fields with defaults.
func (e Env) normalized() Env {
	if e.Profile == "" {
		e.Profile = storage.DefaultProfile
	}
	if e.Logger == nil {
		e.Logger = log.Default()
	}
	if len(e.Catalog.Cities) == 0 {
		e.Catalog = config.DefaultCatalog()
	}
	if e.Config.TickRate <= 0 {
		e.Config.TickRate = game.DefaultTicksPerSec
	}
	if e.Config.ScreenW <= 0 || e.Config.ScreenH <= 0 {
		def := core.DefaultConfig()
		e.Config.ScreenW, e.Config.ScreenH = def.ScreenW, def.ScreenH
	}
	return e
}

// seed returns the configured seed, or a time-based one when unset.
func (e Env) seed() int64 {
	if e.Config.Seed != 0 {
		return e.Config.Seed
	}
	return time.Now().UnixNano()
}
