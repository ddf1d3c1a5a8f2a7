package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tactics/internal/games/tactics"
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List all available missions",
	Long:  `Shows a list of all missions, builtin or from --missions.`,
	Run:   runMissions,
}

func init() {
	missionsCmd.Flags().StringVar(&flagMissionDir, "missions", "", "Directory with custom mission YAML files")
}

func runMissions(cmd *cobra.Command, args []string) {
	tactics.SetMissionDir(flagMissionDir)

	all, err := tactics.ListMissions()
	if err != nil {
		fmt.Printf("Error loading missions: %v\n", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No missions available.")
		return
	}

	fmt.Println("Available missions:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, m := range all {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
		if len(m.Name) > maxNameLen {
			maxNameLen = len(m.Name)
		}
	}

	fmt.Printf("  %-*s  %-*s  %-9s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Hostiles")
	fmt.Printf("  %-*s  %-*s  %-9s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "--------")

	for _, m := range all {
		size := fmt.Sprintf("%dx%d", m.Width, m.Height)
		fmt.Printf("  %-*s  %-*s  %-9s  %d\n", maxIDLen, m.ID, maxNameLen, m.Name, size, len(m.EnemySpawns))
	}

	fmt.Println()
	fmt.Println("Run 'tactics play <id>' to deploy.")
}
