package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/aggregate"
	"github.com/jaehyuklee/studymate/internal/db"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Show the total study time ranking",
	Long: `Rank every profile by total recorded study time, most first.
Your own row is marked; with no sessions you appear unranked at the top.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		sessions, err := db.AllSessions()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		names, err := db.AllDisplayNames()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		entries := aggregate.Rankings(sessions, names)

		viewerRanked := false
		for _, e := range entries {
			if e.OwnerID == profile.ID {
				viewerRanked = true
				break
			}
		}

		fmt.Printf("%-5s %-20s %s\n", "RANK", "NAME", "TOTAL")
		fmt.Println(strings.Repeat("-", 44))

		if !viewerRanked {
			me := aggregate.ViewerPlaceholder(profile.ID, names)
			fmt.Printf("%-5s %-20s %s   ← 내 순위\n", "-", me.DisplayName, me.TotalStudyTime)
		}

		for _, e := range entries {
			marker := ""
			if e.OwnerID == profile.ID {
				marker = "   ← 내 순위"
			}
			fmt.Printf("%-5d %-20s %s%s\n", e.Rank, e.DisplayName, e.TotalStudyTime, marker)
		}
	}),
}
