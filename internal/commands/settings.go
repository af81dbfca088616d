package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/db"
)

var (
	settingsFocus int
	settingsShort int
	settingsLong  int
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change pomodoro interval settings",
	Long: `Show the current profile's pomodoro intervals, or change them:

  studymate settings
  studymate settings --focus 50 --short 10 --long 20

Intervals are minutes. A long break follows every fourth focus interval.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		if !cmd.Flags().Changed("focus") &&
			!cmd.Flags().Changed("short") &&
			!cmd.Flags().Changed("long") {
			fmt.Printf("Focus:       %d min\n", profile.FocusMinutes)
			fmt.Printf("Short break: %d min\n", profile.ShortBreakMinutes)
			fmt.Printf("Long break:  %d min\n", profile.LongBreakMinutes)
			return
		}

		focus := profile.FocusMinutes
		short := profile.ShortBreakMinutes
		long := profile.LongBreakMinutes
		if cmd.Flags().Changed("focus") {
			focus = settingsFocus
		}
		if cmd.Flags().Changed("short") {
			short = settingsShort
		}
		if cmd.Flags().Changed("long") {
			long = settingsLong
		}

		updated, err := db.SavePomodoroSettings(focus, short, long)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Pomodoro set to %d/%d/%d\n",
			updated.FocusMinutes, updated.ShortBreakMinutes, updated.LongBreakMinutes)
	}),
}

func init() {
	settingsCmd.Flags().IntVar(&settingsFocus, "focus", 25, "Focus interval in minutes")
	settingsCmd.Flags().IntVar(&settingsShort, "short", 5, "Short break in minutes")
	settingsCmd.Flags().IntVar(&settingsLong, "long", 15, "Long break in minutes")
}
