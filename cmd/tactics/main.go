// tactics is a turn-based squad combat game played in the terminal.
//
// Usage:
//
//	tactics missions           - List available missions
//	tactics play [mission]     - Deploy on a mission
//	tactics menu               - Interactive mission picker
//	tactics serve              - Start SSH server for remote play
//	tactics scores [mission]   - Show mission records
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible battles
//	--db <path>     - Set database path (default: ~/.tactics/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tactics",
	Short: "Tactics - Turn-based squad combat in your terminal",
	Long: `Tactics is a terminal-based squad combat game: move across walled
maps, use cover, trade fire with hostiles, clear the mission.

Available commands:
  missions - Show all available missions
  play     - Deploy on a mission directly
  menu     - Interactive mission picker
  serve    - Start SSH server for remote play
  scores   - View mission records

Examples:
  tactics missions
  tactics play m01
  tactics play m02 --difficulty commander
  tactics menu
  tactics serve --ssh :2222
  tactics scores m01`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tactics/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(missionsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
