package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/core"
	"github.com/vovakirdan/trash-hero/internal/platform/tui"
	"github.com/vovakirdan/trash-hero/internal/storage"
)

// newLogger builds the process logger. It writes to stderr so it never
// mixes with command output.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "trashhero",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// loadCatalog loads the city catalog or exits.
func loadCatalog() config.Catalog {
	cat, err := config.LoadCities(flagCitiesPath)
	if err != nil {
		fail("%v", err)
	}
	return cat
}

// openStore opens the progress database. When required is false a failure
// is logged and the game runs without persistence.
func openStore(logger *log.Logger, required bool) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		if required {
			fail("could not open database: %v", err)
		}
		logger.Warn("could not open database, progress will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig reads the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newEnv assembles the collaborators shared by all interactive commands.
func newEnv(store *storage.Store, cat config.Catalog, logger *log.Logger) tui.Env {
	return tui.Env{
		Store:     store,
		Catalog:   cat,
		Profile:   flagProfile,
		ReplayDir: expandHome(flagReplayDir),
		Logger:    logger,
		Config:    runtimeConfig(),
	}
}

// closeStore closes store if it was opened.
func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close database", "error", err)
	}
}
