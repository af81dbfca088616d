package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/db"
	"github.com/jaehyuklee/studymate/internal/parser"
)

var deadlineCmd = &cobra.Command{
	Use:   "deadline",
	Short: "Manage deadlines",
}

var deadlineTime string

var deadlineAddCmd = &cobra.Command{
	Use:   "add <date> <title>",
	Short: "Add a deadline",
	Long: `Add a deadline on a date, optionally at a time of day. Deadlines get
a reminder once via 'studymate remind'.

  studymate deadline add 2026-09-12 "장학금 신청 마감" --time 18:00`,
	Args: cobra.MinimumNArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		date, err := parser.ParseDateKey(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		timeOfDay := ""
		if deadlineTime != "" {
			timeOfDay, err = parser.ParseClockTime(deadlineTime)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}

		title := strings.Join(args[1:], " ")
		deadline, err := db.CreateDeadline(profile.ID, title, date, timeOfDay)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Deadline %q on %s\n", deadline.Title, deadline.Date)
	}),
}

var deadlineMonth string

var deadlineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List this month's deadlines",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		year, month := monthFlagOrNow(deadlineMonth)
		deadlines, err := db.DeadlinesInMonth(profile.ID, year, month)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(deadlines) == 0 {
			fmt.Printf("No deadlines in %d-%02d.\n", year, month)
			return
		}

		sort.Slice(deadlines, func(i, j int) bool {
			return deadlines[i].Date < deadlines[j].Date
		})
		for _, d := range deadlines {
			clock := "     "
			if d.Time != "" {
				clock = d.Time
			}
			reminded := ""
			if d.RemindedAt != nil {
				reminded = " (reminded)"
			}
			fmt.Printf("  %s %s  %-30s %s%s\n", d.Date, clock, d.Title, shortID(d.ID), reminded)
		}
	}),
}

var deadlineRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove a deadline by id prefix",
	Args:    cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		id, err := resolveDeadlineID(profile.ID, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := db.DeleteDeadline(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Deadline removed")
	}),
}

func resolveDeadlineID(ownerID, prefix string) (string, error) {
	deadlines, err := db.Deadlines(ownerID)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, d := range deadlines {
		if strings.HasPrefix(d.ID, prefix) {
			matches = append(matches, d.ID)
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no deadline matching %q", prefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("%q matches %d deadlines, use a longer prefix", prefix, len(matches))
	}
	return matches[0], nil
}

func init() {
	deadlineAddCmd.Flags().StringVarP(&deadlineTime, "time", "t", "", "Time of day (HH:MM)")
	deadlineListCmd.Flags().StringVarP(&deadlineMonth, "month", "m", "", "Month to list (YYYY-MM)")

	deadlineCmd.AddCommand(deadlineAddCmd)
	deadlineCmd.AddCommand(deadlineListCmd)
	deadlineCmd.AddCommand(deadlineRmCmd)
}
