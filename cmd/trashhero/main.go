// trashhero is a terminal arcade game about cleaning up litter in five cities.
//
// Usage:
//
//	trashhero cities                 - List cities and your progress
//	trashhero play <city>            - Play a city
//	trashhero menu                   - Pick cities, shop and scores interactively
//	trashhero shop [buy|equip <id>]  - Browse or buy equipment
//	trashhero scores [city]          - Show recent scores
//	trashhero serve                  - Start SSH server for remote play
//	trashhero replay <file>          - Verify a recorded session
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.trashhero/trashhero.db)
//	--profile <name>  - Player profile (default: local)
//	--cities <path>   - Custom city catalog YAML
//	--replays <dir>   - Replay directory, "" disables recording
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trash-hero/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagProfile    string
	flagCitiesPath string
	flagReplayDir  string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trashhero",
	Short: "Trash Hero - clean up the city before time runs out",
	Long: `Trash Hero is a terminal arcade game. Pick up litter, sort it into the
right bins and dodge the litterers before the ten minute clock runs out.

Available commands:
  cities   - Show cities and progress
  play     - Play a specific city directly
  menu     - Interactive city picker with shop and scores
  shop     - Buy and equip tools, bags, shields and weapons
  scores   - View recent scores
  serve    - Start SSH server for remote play
  replay   - Re-simulate a recorded session

Examples:
  trashhero cities
  trashhero play budapest
  trashhero menu
  trashhero shop buy stick
  trashhero serve --ssh :2222
  trashhero replay ~/.trashhero/replays/budapest-1760000000.jsonl.zst`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trashhero/trashhero.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Player profile")
	rootCmd.PersistentFlags().StringVar(&flagCitiesPath, "cities", "", "Path to custom city catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagReplayDir, "replays", "~/.trashhero/replays", "Directory for replay files (empty disables recording)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}
