package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/aggregate"
	"github.com/jaehyuklee/studymate/internal/db"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's study time",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		now := time.Now()
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		sessions, err := db.SessionsInRange(profile.ID, start, start.AddDate(0, 0, 1))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		daily := aggregate.ByDay(sessions)
		agg, ok := daily[aggregate.DateKey(now)]
		if !ok {
			fmt.Println("오늘 공부 기록이 없습니다.")
			return
		}

		fmt.Printf("오늘: %s\n", aggregate.FormatDuration(agg.TotalSeconds))
		printBySubject(agg.BySubject)
	}),
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show this week's study time",
	Long:  "Show total study time for the current week, Sunday through Saturday.",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		now := time.Now()
		start := aggregate.StartOfWeek(now)
		sessions, err := db.SessionsInRange(profile.ID, start, start.AddDate(0, 0, 7))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		daily := aggregate.ByDay(sessions)
		week := aggregate.Weekly(daily, aggregate.DateKey(now))
		if week.TotalSeconds == 0 {
			fmt.Println("이번 주 공부 기록이 없습니다.")
			return
		}

		fmt.Printf("이번 주 (%s ~): %s\n",
			start.Format(aggregate.DateKeyFormat), aggregate.FormatDuration(week.TotalSeconds))
		printBySubject(week.BySubject)

		// Per-day breakdown for the week
		fmt.Println(strings.Repeat("-", 32))
		for i := 0; i < 7; i++ {
			day := start.AddDate(0, 0, i)
			key := day.Format(aggregate.DateKeyFormat)
			total := 0
			if agg, ok := daily[key]; ok {
				total = agg.TotalSeconds
			}
			label := [...]string{"일", "월", "화", "수", "목", "금", "토"}[day.Weekday()]
			if total == 0 {
				fmt.Printf("  %s %s  -\n", key, label)
				continue
			}
			fmt.Printf("  %s %s  %s\n", key, label, aggregate.FormatDuration(total))
		}
	}),
}

func printBySubject(bySubject map[string]int) {
	subjects := make([]string, 0, len(bySubject))
	for s := range bySubject {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	for _, s := range subjects {
		fmt.Printf("  %-12s %s\n", s, aggregate.FormatDuration(bySubject[s]))
	}
}
