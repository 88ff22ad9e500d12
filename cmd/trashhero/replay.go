package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trash-hero/internal/game"
	"github.com/vovakirdan/trash-hero/internal/platform/tui"
	"github.com/vovakirdan/trash-hero/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded session",
	Long: `Re-simulate a replay file and check that it reaches the recorded
final state. Exits with status 1 when the replay does not match.

Replays are written to ~/.trashhero/replays (see --replays) as
<city>-<unix time>.jsonl.zst.

Examples:
  trashhero replay ~/.trashhero/replays/paris-1760000000.jsonl.zst`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	rep, err := replay.Load(expandHome(args[0]))
	if err != nil {
		fail("%v", err)
	}

	report, err := replay.Verify(rep)
	if errors.Is(err, replay.ErrIncomplete) {
		fail("%s was not finished, nothing to verify", args[0])
	}
	if err != nil {
		fail("%v", err)
	}

	h := report.Header
	r := report.Result
	fmt.Printf("Replay - %s (%s)\n", h.City.Name, h.Created.Local().Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("  %-10s %s\n", "Profile", h.Profile)
	fmt.Printf("  %-10s %d\n", "Seed", h.Seed)
	fmt.Printf("  %-10s %s\n", "Equipment", equipmentString(h.Equipment))
	fmt.Printf("  %-10s %d ticks, %d seconds\n", "Events", report.Ticks, report.Seconds)
	fmt.Printf("  %-10s %d (%d correct, %d wrong, %d litter left)\n", "Score", r.Score, r.Correct, r.Wrong, r.RemainingLitter)
	fmt.Printf("  %-10s %s\n", "Stars", tui.StarString(r.Stars))
	fmt.Printf("  %-10s %016x\n", "Expected", report.Expected)
	fmt.Printf("  %-10s %016x\n", "Actual", report.Actual)
	fmt.Println()

	if !report.Match {
		fmt.Fprintln(os.Stderr, "MISMATCH: the replay does not reproduce the recorded session")
		os.Exit(1)
	}
	fmt.Println("OK: replay matches")
}

func equipmentString(eq game.Equipment) string {
	return fmt.Sprintf("%s, %s bag, shield %s, weapon %s", eq.Tool, eq.Bag, eq.Shield, eq.Weapon)
}
