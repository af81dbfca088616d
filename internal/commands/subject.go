package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/db"
)

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Manage the current profile's subjects",
}

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		if len(profile.Subjects) == 0 {
			fmt.Println("No subjects. Add one with 'studymate subject add <name>'.")
			return
		}
		for _, s := range profile.Subjects {
			fmt.Printf("  %s\n", s)
		}
	}),
}

var subjectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a subject",
	Args:  cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		profile, err := db.AddSubject(name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Added %q (%d subjects)\n", name, len(profile.Subjects))
	}),
}

var subjectRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a subject",
	Args:    cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		profile, err := db.RemoveSubject(name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Removed %q (%d subjects left)\n", name, len(profile.Subjects))
	}),
}

func init() {
	subjectCmd.AddCommand(subjectListCmd)
	subjectCmd.AddCommand(subjectAddCmd)
	subjectCmd.AddCommand(subjectRmCmd)
}
