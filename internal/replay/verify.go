package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/trash-hero/internal/core"
	"github.com/vovakirdan/trash-hero/internal/game"
)

// ErrIncomplete is returned when a replay has no footer, typically because
// the player quit before the session ended.
var ErrIncomplete = errors.New("replay: missing footer")

// Event is one recorded engine call, in the order it happened.
type Event struct {
	Second bool
	Input  core.InputFrame
}

// Replay is a decoded replay file.
type Replay struct {
	Header Header
	Events []Event
	Footer *Footer
}

// Report is the outcome of re-simulating a replay.
type Report struct {
	Header   Header
	Ticks    int
	Seconds  int
	Expected uint64
	Actual   uint64
	Match    bool
	Result   game.Result
}

// Load reads and decodes a replay file.
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()

	rep, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return rep, nil
}

// Read decodes a zstd-compressed JSONL replay stream.
func Read(r io.Reader) (*Replay, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot create decoder: %w", err)
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var rep Replay
	line := 0
	sawHeader := false
	for sc.Scan() {
		line++
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("replay: line %d: %w", line, err)
		}
		if !sawHeader && e.Kind != KindHeader {
			return nil, fmt.Errorf("replay: line %d: expected header, got %q", line, e.Kind)
		}
		if rep.Footer != nil {
			return nil, fmt.Errorf("replay: line %d: entry after footer", line)
		}

		switch e.Kind {
		case KindHeader:
			if sawHeader || e.Header == nil {
				return nil, fmt.Errorf("replay: line %d: bad header", line)
			}
			if e.Header.Version != FormatVersion {
				return nil, fmt.Errorf("replay: unsupported version %d", e.Header.Version)
			}
			rep.Header = *e.Header
			sawHeader = true
		case KindTick:
			rep.Events = append(rep.Events, Event{Input: core.FrameFromBits(e.Input)})
		case KindSecond:
			rep.Events = append(rep.Events, Event{Second: true})
		case KindFooter:
			if e.Footer == nil {
				return nil, fmt.Errorf("replay: line %d: bad footer", line)
			}
			rep.Footer = e.Footer
		default:
			return nil, fmt.Errorf("replay: line %d: unknown entry %q", line, e.Kind)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay: cannot read: %w", err)
	}
	if !sawHeader {
		return nil, errors.New("replay: empty file")
	}
	return &rep, nil
}

// Verify re-runs the recorded events on a fresh session and compares the
// final snapshot hash with the footer.
func Verify(rep *Replay) (Report, error) {
	report := Report{Header: rep.Header}
	if rep.Footer == nil {
		return report, ErrIncomplete
	}
	report.Expected = rep.Footer.Hash

	lo, err := game.ResolveLoadout(rep.Header.Equipment)
	if err != nil {
		return report, fmt.Errorf("replay: %w", err)
	}
	s, err := game.New(rep.Header.City, lo, game.NewRand(rep.Header.Seed))
	if err != nil {
		return report, fmt.Errorf("replay: %w", err)
	}

	for _, ev := range rep.Events {
		if ev.Second {
			s.Second()
			report.Seconds++
			continue
		}
		s.Step(ev.Input)
		report.Ticks++
	}

	snap := s.Snapshot()
	report.Actual = snap.Hash()
	report.Match = report.Actual == report.Expected
	report.Result = s.Result()
	return report, nil
}
