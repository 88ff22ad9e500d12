// Package replay records sessions as zstd-compressed JSONL and re-simulates
// them to check that the engine reproduces the same final state.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/core"
	"github.com/vovakirdan/trash-hero/internal/game"
)

// FormatVersion is written to every header. Readers reject other versions.
const FormatVersion = 1

// Extension is the suffix of replay files.
const Extension = ".jsonl.zst"

// Entry kinds.
const (
	KindHeader = "header"
	KindTick   = "tick"
	KindSecond = "second"
	KindFooter = "footer"
)

// Header describes how the session was set up. The full city is stored so
// a replay stays valid after the city catalog changes.
type Header struct {
	Version   int            `json:"version"`
	Seed      int64          `json:"seed"`
	Profile   string         `json:"profile,omitempty"`
	City      config.City    `json:"city"`
	Equipment game.Equipment `json:"equipment"`
	Created   time.Time      `json:"created"`
}

// Footer is written once the session ends.
type Footer struct {
	Hash  uint64 `json:"hash"`
	Score int    `json:"score"`
	Ticks uint64 `json:"ticks"`
}

// Entry is one JSONL line.
type Entry struct {
	Kind   string  `json:"kind"`
	Input  uint32  `json:"input,omitempty"`
	Header *Header `json:"header,omitempty"`
	Footer *Footer `json:"footer,omitempty"`
}

// Recorder appends a session's inputs to a replay file.
// Write errors are sticky: the first one is logged and returned by Finish.
type Recorder struct {
	path   string
	logger *log.Logger

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
	err error
}

// Create opens a new replay file named <city>-<unix>.jsonl.zst in dir and
// writes the header.
func Create(dir string, h Header, logger *log.Logger) (*Recorder, error) {
	if logger == nil {
		logger = log.Default()
	}
	if h.Created.IsZero() {
		h.Created = time.Now().UTC()
	}
	h.Version = FormatVersion

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("replay: cannot create directory %s: %w", dir, err)
	}

	f, path, err := createUnique(dir, h.City.ID, h.Created.Unix())
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("replay: cannot create encoder: %w", err)
	}

	r := &Recorder{
		path:   path,
		logger: logger,
		f:      f,
		enc:    enc,
		w:      bufio.NewWriterSize(enc, 64*1024),
	}
	r.write(Entry{Kind: KindHeader, Header: &h})
	if r.err != nil {
		_ = r.closeLocked()
		return nil, r.err
	}
	logger.Debug("recording replay", "path", path, "city", h.City.ID, "seed", h.Seed)
	return r, nil
}

// createUnique avoids clobbering a replay started in the same second,
// e.g. by another SSH user in the same city.
func createUnique(dir, cityID string, unix int64) (*os.File, string, error) {
	for i := 1; i <= 100; i++ {
		name := fmt.Sprintf("%s-%d%s", cityID, unix, Extension)
		if i > 1 {
			name = fmt.Sprintf("%s-%d-%d%s", cityID, unix, i, Extension)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("replay: cannot create %s: %w", path, err)
		}
	}
	return nil, "", fmt.Errorf("replay: too many replays for %s at %d", cityID, unix)
}

// Path returns the file being written.
func (r *Recorder) Path() string {
	return r.path
}

// Tick records one engine step with its input.
func (r *Recorder) Tick(in core.InputFrame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(Entry{Kind: KindTick, Input: in.Bits()})
}

// Second records one timer second.
func (r *Recorder) Second() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write(Entry{Kind: KindSecond})
}

// Finish writes the footer from the session's final state and closes the file.
func (r *Recorder) Finish(s *game.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := s.Snapshot()
	r.write(Entry{Kind: KindFooter, Footer: &Footer{
		Hash:  snap.Hash(),
		Score: snap.Score,
		Ticks: s.Tick(),
	}})
	if err := r.closeLocked(); err != nil && r.err == nil {
		r.err = fmt.Errorf("replay: cannot close %s: %w", r.path, err)
	}
	return r.err
}

// Close closes the file without a footer. The replay is then incomplete and
// fails verification.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closeLocked()
}

func (r *Recorder) write(e Entry) {
	if r.err != nil || r.w == nil {
		return
	}
	b, err := json.Marshal(e)
	if err == nil {
		_, err = r.w.Write(b)
	}
	if err == nil {
		err = r.w.WriteByte('\n')
	}
	if err != nil {
		r.err = fmt.Errorf("replay: cannot write %s: %w", r.path, err)
		r.logger.Warn("replay recording stopped", "path", r.path, "error", err)
	}
}

func (r *Recorder) closeLocked() error {
	var err error
	if r.w != nil {
		err = r.w.Flush()
		r.w = nil
	}
	if r.enc != nil {
		if cerr := r.enc.Close(); err == nil {
			err = cerr
		}
		r.enc = nil
	}
	if r.f != nil {
		if cerr := r.f.Close(); err == nil {
			err = cerr
		}
		r.f = nil
	}
	return err
}
