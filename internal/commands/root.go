package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/db"
	"github.com/jaehyuklee/studymate/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "studymate",
	Short: "A terminal study tracker",
	Long: `studymate tracks your study time with a stopwatch or pomodoro timer,
aggregates it on a calendar, ranks you against other local profiles, and
keeps study group schedules and deadlines in one place.`,
}

// initApp initializes logging and the database and panics on failure
func initApp() {
	dataDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".studymate")
	}
	if err := logger.Init(dataDir, debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	if err := db.Initialize(); err != nil {
		panic(err)
	}
}

// withDB wraps a command function to initialize the app first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studymate %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	// Add subcommands here
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(subjectCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(assignmentCmd)
	rootCmd.AddCommand(deadlineCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
