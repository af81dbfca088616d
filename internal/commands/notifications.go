package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/db"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"noti"},
	Short:   "Show the notification feed",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		notifications, err := db.Notifications(profile.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(notifications) == 0 {
			fmt.Println("알림이 없습니다.")
			return
		}

		for _, n := range notifications {
			fmt.Printf("[%s] %s\n", n.SentAt.Format("2006-01-02 15:04"), n.Title)
			fmt.Printf("  %s\n", n.Body)
		}
	}),
}

var notificationsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notifications",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		notifications, err := db.Notifications(profile.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		for _, n := range notifications {
			if err := db.DeleteNotification(n.ID); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Printf("✓ Cleared %d notification(s)\n", len(notifications))
	}),
}

func init() {
	notificationsCmd.AddCommand(notificationsClearCmd)
}
