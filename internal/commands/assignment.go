package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/db"
	"github.com/jaehyuklee/studymate/internal/parser"
)

var assignmentCmd = &cobra.Command{
	Use:     "assignment",
	Aliases: []string{"assign"},
	Short:   "Manage personal assignments",
}

var assignmentDescription string

var assignmentAddCmd = &cobra.Command{
	Use:   "add <date> <title>",
	Short: "Add an assignment",
	Long: `Add a personal assignment for a date. Dates accept YYYY-MM-DD, today,
tomorrow, or relative forms like "2 weeks".

  studymate assignment add tomorrow "선형대수 과제 3장"`,
	Args: cobra.MinimumNArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		date, err := parser.ParseDateKey(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		title := strings.Join(args[1:], " ")

		assignment, err := db.CreateAssignment(profile.ID, title, date, assignmentDescription)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Added %q on %s\n", assignment.Title, assignment.Date)
	}),
}

var assignmentMonth string

var assignmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List this month's assignments",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		year, month := monthFlagOrNow(assignmentMonth)
		assignments, err := db.AssignmentsInMonth(profile.ID, year, month)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(assignments) == 0 {
			fmt.Printf("No assignments in %d-%02d.\n", year, month)
			return
		}

		sort.Slice(assignments, func(i, j int) bool {
			return assignments[i].Date < assignments[j].Date
		})
		for _, a := range assignments {
			fmt.Printf("  %s  %-30s %s\n", a.Date, a.Title, shortID(a.ID))
			if a.Description != "" {
				fmt.Printf("              %s\n", a.Description)
			}
		}
	}),
}

var assignmentRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove an assignment by id prefix",
	Args:    cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		id, err := resolveAssignmentID(profile.ID, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := db.DeleteAssignment(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Assignment removed")
	}),
}

// monthFlagOrNow parses a YYYY-MM flag value, defaulting to the current month.
func monthFlagOrNow(flag string) (int, time.Month) {
	if flag != "" {
		if t, err := time.ParseInLocation("2006-01", flag, time.Local); err == nil {
			return t.Year(), t.Month()
		}
		fmt.Printf("Error: invalid month %q, want YYYY-MM\n", flag)
		os.Exit(1)
	}
	now := time.Now()
	return now.Year(), now.Month()
}

// shortID returns the first 8 characters of a uuid for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func resolveAssignmentID(ownerID, prefix string) (string, error) {
	assignments, err := db.Assignments(ownerID)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, a := range assignments {
		if strings.HasPrefix(a.ID, prefix) {
			matches = append(matches, a.ID)
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no assignment matching %q", prefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("%q matches %d assignments, use a longer prefix", prefix, len(matches))
	}
	return matches[0], nil
}

func init() {
	assignmentAddCmd.Flags().StringVarP(&assignmentDescription, "description", "d", "", "Assignment notes")
	assignmentListCmd.Flags().StringVarP(&assignmentMonth, "month", "m", "", "Month to list (YYYY-MM)")

	assignmentCmd.AddCommand(assignmentAddCmd)
	assignmentCmd.AddCommand(assignmentListCmd)
	assignmentCmd.AddCommand(assignmentRmCmd)
}
