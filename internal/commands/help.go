package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for studymate",
	Long:  `Display detailed help for all studymate commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗
██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝
███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝
╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝
███████║   ██║   ╚██████╔╝██████╔╝   ██║
╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝

studymate - Terminal Study Tracker

COMMANDS:

  start                   Interactive stopwatch timer
    -p, --pomodoro        Pomodoro mode (focus/break intervals)

    Timer keys:
      space         Start/pause
      s             Save session and reset
      tab           Switch stopwatch/pomodoro
      ←/→           Cycle subject
      q             Save and quit

  log <duration>          Record a session timed elsewhere
    -s, --subject         Subject name
    -d, --date            Session date (default today)

    Durations: 90, 45m, 1h30m

  today                   Today's study time by subject
  week                    This week's total and per-day breakdown

  calendar                Interactive month view
    Days shade with study time; dots mark schedules.
      ↑↓←→          Move selection
      [ / ]         Previous / next month

  rank                    Profiles ranked by total study time

  subject list|add|rm     Manage the current profile's subjects
  profile create|use|list Manage study profiles
  settings                Show or set pomodoro intervals
    --focus --short --long (minutes)

  group                   Study groups
    create <name>         Create and join a group
    list                  All groups (* = joined)
    join|leave <name>     Membership
    post <group> <msg>    Post to the group board
    posts <group>         Read the board, newest first
    schedule <group> <date> <title>   Shared schedule entry
    schedules <group>     Show the shared schedule

  assignment add|list|rm  Personal assignments
  deadline add|list|rm    Deadlines with one-shot reminders
  remind                  Fire due deadline reminders
    -w, --wait            Keep running until they trigger
  notifications           Reminder feed (clear to empty it)

  version                 Version information
  help                    Show this help

Dates: YYYY-MM-DD, today, tomorrow, "3 days", "2 weeks".

`)
}
