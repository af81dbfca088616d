package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/aggregate"
	"github.com/jaehyuklee/studymate/internal/db"
	"github.com/jaehyuklee/studymate/internal/logger"
	"github.com/jaehyuklee/studymate/internal/models"
	"github.com/jaehyuklee/studymate/internal/parser"
	"github.com/jaehyuklee/studymate/internal/tui"
)

var startPomodoro bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the study timer",
	Long: `Start an interactive timer session.

Runs a stopwatch by default. Pass --pomodoro to run focus and break
intervals using your saved pomodoro settings instead.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		if err := tui.RunTimerTUI(profile, startPomodoro); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}),
}

var logSubject string
var logDate string

var logCmd = &cobra.Command{
	Use:   "log <duration>",
	Short: "Record a finished study session",
	Long: `Record a study session you timed elsewhere.

Durations accept bare minutes or an h/m form:
  studymate log 90
  studymate log 1h30m --subject 수학
  studymate log 45m --date yesterday`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		seconds, err := parser.ParseStudyDuration(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		subject := logSubject
		if subject == "" {
			subject = models.DefaultSubject
			if len(profile.Subjects) > 0 {
				subject = profile.Subjects[0]
			}
		}

		completedAt := time.Now()
		if logDate != "" {
			key, err := parser.ParseDateKey(logDate)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			day, _ := time.ParseInLocation(aggregate.DateKeyFormat, key, time.Local)
			completedAt = day.Add(12 * time.Hour)
		}

		session, err := db.SaveSessionAt(profile.ID, subject, models.TimerStopwatch, seconds, completedAt)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("session logged manually", "subject", subject, "seconds", seconds)
		fmt.Printf("✓ Logged %s of %s\n", formatShort(session.DurationSeconds), session.Subject)
	}),
}

func formatShort(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func init() {
	startCmd.Flags().BoolVarP(&startPomodoro, "pomodoro", "p", false, "Run in pomodoro mode")
	logCmd.Flags().StringVarP(&logSubject, "subject", "s", "", "Subject to log the session under")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Date of the session (default today)")
}
