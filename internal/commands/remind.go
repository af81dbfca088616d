package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/db"
	"github.com/jaehyuklee/studymate/internal/logger"
	"github.com/jaehyuklee/studymate/internal/notify"
)

var remindWait bool

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Fire pending deadline reminders",
	Long: `Check upcoming deadlines and fire reminders for any that are due.
A reminder prints to the terminal, lands on the notification feed, and
fires only once per deadline.

With --wait the command stays running and fires reminders at their
scheduled times instead of only catching up on overdue ones.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		now := time.Now()
		pending, err := db.PendingReminders(profile.ID, now)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(pending) == 0 {
			fmt.Println("No pending reminders.")
			return
		}

		scheduler := notify.New(func(alert notify.Alert) {
			fmt.Printf("🔔 %s: %s\n", alert.Title, alert.Message)
			if _, err := db.AppendNotification(profile.ID, alert.Title, alert.Message); err != nil {
				logger.Error("failed to record notification", "error", err)
			}
			if err := db.MarkReminded(alert.ID, time.Now()); err != nil {
				logger.Error("failed to mark deadline reminded", "error", err)
			}
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		scheduled := 0
		for _, d := range pending {
			triggerAt, err := notify.TriggerTime(d.Date, d.Time)
			if err != nil {
				logger.Warn("skipping deadline with bad date", "id", d.ID, "date", d.Date)
				continue
			}
			if !remindWait && triggerAt.After(now) {
				continue
			}
			scheduler.Schedule(ctx, notify.Alert{
				ID:        d.ID,
				TriggerAt: triggerAt,
				Title:     "마감 알림",
				Message:   fmt.Sprintf("%s (%s)", d.Title, d.Date),
			})
			scheduled++
		}

		if scheduled == 0 {
			fmt.Println("No reminders due yet. Run with --wait to wait for them.")
			return
		}
		if remindWait {
			fmt.Printf("Waiting on %d reminder(s)... (ctrl+c to stop)\n", scheduled)
		}
		scheduler.Wait()
	}),
}

func init() {
	remindCmd.Flags().BoolVarP(&remindWait, "wait", "w", false, "Stay running until scheduled reminders fire")
}
