package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/tui"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Open the study calendar",
	Long: `Open the interactive month view. Days are shaded by how much you
studied; dots mark assignments, group schedules, and deadlines. Arrow
keys move the selection, [ and ] change the month.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		if err := tui.RunCalendarTUI(profile); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}),
}
