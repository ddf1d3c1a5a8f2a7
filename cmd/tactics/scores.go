package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tactics/internal/games/tactics"
	"github.com/vovakirdan/tui-tactics/internal/storage"
)

var flagRecent bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mission]",
	Short: "Show mission records",
	Long: `Display the top 10 runs for a mission, or across all missions
when no mission is given.

Examples:
  tactics scores
  tactics scores m01
  tactics scores --recent`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
}

func runScores(cmd *cobra.Command, args []string) {
	missionID := ""
	if len(args) > 0 {
		missionID = args[0]
	}

	title := "all missions"
	if missionID != "" {
		if !missionExists(missionID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mission %q\n", missionID)
			fmt.Fprintln(os.Stderr, "Run 'tactics missions' to see available missions.")
			os.Exit(1)
		}
		if all, listErr := tactics.ListMissions(); listErr == nil {
			for _, m := range all {
				if m.ID == missionID {
					title = fmt.Sprintf("%s - %s", m.ID, m.Name)
				}
			}
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var results []storage.ResultEntry
	if flagRecent {
		results, err = store.RecentResults(10)
	} else {
		results, err = store.TopResults(missionID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mission Records - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tactics play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-7s  %s\n", "Rank", "Mission", "Score", "Result", "Rounds", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %-7s  %s\n", "----", "-------", "-----", "------", "------", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-8d  %-7s  %-7d  %s\n", i+1, entry.MissionID, entry.Score, entry.Outcome, entry.Turns, dateStr)
	}

	if missionID != "" {
		fmt.Println()
		if stats, statsErr := store.GetMissionStats(missionID); statsErr == nil && stats.Runs > 0 {
			fmt.Printf("Runs: %d  Wins: %d  Best: %d  Avg rounds: %.1f\n",
				stats.Runs, stats.Wins, stats.BestScore, stats.AvgTurns)
		}
	}
}
