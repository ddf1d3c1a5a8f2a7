package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tactics/internal/core"
	"github.com/vovakirdan/tui-tactics/internal/games/tactics"
	"github.com/vovakirdan/tui-tactics/internal/platform/tui"
	"github.com/vovakirdan/tui-tactics/internal/registry"
	"github.com/vovakirdan/tui-tactics/internal/session"
	"github.com/vovakirdan/tui-tactics/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMissionDir string
)

var playCmd = &cobra.Command{
	Use:   "play [mission]",
	Short: "Deploy on a mission",
	Long: `Start the specified mission. With no argument the first mission is loaded.

Controls:
  Arrows/WASD - Move cursor
  Enter/Space - Move to cursor tile
  F           - Fire at hovered enemy
  R           - Reload (restart after the mission ends)
  E/Tab       - End turn
  V           - Toggle fog of war
  P           - Pause
  Q/Ctrl+C    - Quit

Difficulty presets:
  recruit    - Tougher squad, sloppier hostiles
  veteran    - Mission stats as authored
  commander  - Sharper, tougher hostiles

Examples:
  tactics play
  tactics play m02
  tactics play m01 --difficulty recruit
  tactics play m03 --config ./my-tactics.yaml
  tactics play --missions ./maps`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules/combat config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: recruit, veteran, commander")
	playCmd.Flags().StringVar(&flagMissionDir, "missions", "", "Directory with custom mission YAML files")
}

func runPlay(cmd *cobra.Command, args []string) {
	missionID := ""
	if len(args) > 0 {
		missionID = args[0]
	}

	tactics.SetConfigPath(flagConfig)
	tactics.SetDifficultyPreset(flagDifficulty)
	tactics.SetMissionDir(flagMissionDir)
	tactics.SetMissionID(missionID)

	// A named mission must exist before we enter the alt screen.
	if missionID != "" && !missionExists(missionID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mission %q\n", missionID)
		fmt.Fprintln(os.Stderr, "Run 'tactics missions' to see available missions.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create("tactics")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var saver session.ResultSaver
	if store != nil {
		saver = store
	}

	runErr := tui.Run(game, saver, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// missionExists reports whether a mission ID is present in the mission set.
func missionExists(id string) bool {
	all, err := tactics.ListMissions()
	if err != nil {
		return false
	}
	for _, m := range all {
		if m.ID == id {
			return true
		}
	}
	return false
}
