package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/db"
	"github.com/jaehyuklee/studymate/internal/models"
)

// mustProfile returns the current profile or exits with a hint.
func mustProfile() *models.UserProfile {
	profile, err := db.CurrentProfile()
	if err != nil {
		if errors.Is(err, db.ErrNoProfile) {
			fmt.Println("No profile yet. Create one with:")
			fmt.Println("  studymate profile create <name>")
			os.Exit(1)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return profile
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage study profiles",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new profile and switch to it",
	Args:  cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		profile, err := db.CreateProfile(name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Created profile %q (now current)\n", profile.DisplayName)
	}),
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the current profile",
	Args:  cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		profile, err := db.UseProfile(name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Now studying as %q\n", profile.DisplayName)
	}),
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profiles, err := db.ListProfiles()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles. Create one with 'studymate profile create <name>'.")
			return
		}

		fmt.Printf("%-3s %-20s %-30s %s\n", "", "NAME", "SUBJECTS", "POMODORO")
		fmt.Println(strings.Repeat("-", 64))
		for _, p := range profiles {
			marker := " "
			if p.Current {
				marker = "*"
			}
			subjects := strings.Join(p.Subjects, ", ")
			if len(subjects) > 28 {
				subjects = subjects[:25] + "..."
			}
			fmt.Printf("%-3s %-20s %-30s %d/%d/%d\n",
				marker, p.DisplayName, subjects,
				p.FocusMinutes, p.ShortBreakMinutes, p.LongBreakMinutes)
		}
	}),
}

func init() {
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileListCmd)
}
