package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaehyuklee/studymate/internal/db"
	"github.com/jaehyuklee/studymate/internal/models"
	"github.com/jaehyuklee/studymate/internal/parser"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage study groups",
}

var groupDescription string

var groupCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a study group and join it",
	Args:  cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		name := strings.Join(args, " ")

		group, err := db.CreateGroup(name, groupDescription)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := db.JoinGroup(group.ID, profile.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Created group %q\n", group.Name)
	}),
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all study groups",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()

		groups, err := db.ListGroups()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(groups) == 0 {
			fmt.Println("No groups yet. Create one with 'studymate group create <name>'.")
			return
		}

		fmt.Printf("%-3s %-20s %-8s %s\n", "", "NAME", "MEMBERS", "DESCRIPTION")
		fmt.Println(strings.Repeat("-", 60))
		for _, g := range groups {
			marker := " "
			if member, err := db.IsMember(g.ID, profile.ID); err == nil && member {
				marker = "*"
			}
			desc := g.Description
			if len(desc) > 26 {
				desc = desc[:23] + "..."
			}
			fmt.Printf("%-3s %-20s %-8d %s\n", marker, g.Name, g.MemberCount, desc)
		}
	}),
}

var groupJoinCmd = &cobra.Command{
	Use:   "join <name>",
	Short: "Join a study group",
	Args:  cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		group := mustGroup(strings.Join(args, " "))

		if err := db.JoinGroup(group.ID, profile.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Joined %q\n", group.Name)
	}),
}

var groupLeaveCmd = &cobra.Command{
	Use:   "leave <name>",
	Short: "Leave a study group",
	Args:  cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		group := mustGroup(strings.Join(args, " "))

		if err := db.LeaveGroup(group.ID, profile.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Left %q\n", group.Name)
	}),
}

var (
	postFile  string
	postImage string
)

var groupPostCmd = &cobra.Command{
	Use:   "post <group> <message>",
	Short: "Post a message to a group",
	Long: `Post a message to a group you belong to. A post may attach either a
file or an image, not both.`,
	Args: cobra.MinimumNArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		group := mustGroup(args[0])
		mustMembership(group, profile)

		content := strings.Join(args[1:], " ")
		fileURL := ""
		if postFile != "" {
			fileURL = postFile
		}
		_, err := db.CreatePost(group.ID, profile.DisplayName, content, postFile, fileURL, postImage)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Posted to %q\n", group.Name)
	}),
}

var groupPostsCmd = &cobra.Command{
	Use:   "posts <group>",
	Short: "Show a group's posts, newest first",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		group := mustGroup(args[0])
		mustMembership(group, profile)

		posts, err := db.GroupPosts(group.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(posts) == 0 {
			fmt.Println("No posts yet.")
			return
		}
		for _, p := range posts {
			fmt.Printf("[%s] %s\n", p.CreatedAt.Format("2006-01-02 15:04"), p.Author)
			fmt.Printf("  %s\n", p.Content)
			if p.FileName != "" {
				fmt.Printf("  📎 %s\n", p.FileName)
			}
			if p.ImageURL != "" {
				fmt.Printf("  🖼  %s\n", p.ImageURL)
			}
		}
	}),
}

var scheduleTime string

var groupScheduleCmd = &cobra.Command{
	Use:   "schedule <group> <date> <title>",
	Short: "Add a schedule entry to a group",
	Long: `Add a dated entry to a group's shared schedule. Dates accept
YYYY-MM-DD, today, tomorrow, or relative forms like "3 days".

  studymate group schedule 알고리즘스터디 2026-09-05 "모의 코딩테스트" --time 20:00`,
	Args: cobra.MinimumNArgs(3),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		group := mustGroup(args[0])
		mustMembership(group, profile)

		date, err := parser.ParseDateKey(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		timeOfDay := ""
		if scheduleTime != "" {
			timeOfDay, err = parser.ParseClockTime(scheduleTime)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}

		title := strings.Join(args[2:], " ")
		if _, err := db.CreateGroupSchedule(group.ID, title, date, timeOfDay); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Scheduled %q on %s\n", title, date)
	}),
}

var groupSchedulesCmd = &cobra.Command{
	Use:   "schedules <group>",
	Short: "Show a group's schedule",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		group := mustGroup(args[0])
		mustMembership(group, profile)

		schedules, err := db.GroupSchedules(group.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(schedules) == 0 {
			fmt.Println("No schedule entries.")
			return
		}
		for _, s := range schedules {
			if s.Time != "" {
				fmt.Printf("  %s %s  %s\n", s.Date, s.Time, s.Title)
				continue
			}
			fmt.Printf("  %s        %s\n", s.Date, s.Title)
		}
	}),
}

var groupWatchCmd = &cobra.Command{
	Use:   "watch <group>",
	Short: "Follow a group's posts and schedule live",
	Long: `Stay attached to a group and print its board and schedule whenever
they change. Stop with ctrl+c.`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		profile := mustProfile()
		group := mustGroup(args[0])
		mustMembership(group, profile)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		posts := db.WatchGroupPosts(ctx, group.ID)
		schedules := db.WatchGroupSchedules(ctx, group.ID)

		fmt.Printf("Watching %q (ctrl+c to stop)\n", group.Name)
		for posts != nil || schedules != nil {
			select {
			case snapshot, ok := <-posts:
				if !ok {
					posts = nil
					continue
				}
				fmt.Printf("\n── 게시판 (%d) ──\n", len(snapshot))
				for i, p := range snapshot {
					if i == 3 {
						break
					}
					fmt.Printf("  [%s] %s: %s\n",
						p.CreatedAt.Format("15:04"), p.Author, p.Content)
				}
			case snapshot, ok := <-schedules:
				if !ok {
					schedules = nil
					continue
				}
				fmt.Printf("\n── 일정 (%d) ──\n", len(snapshot))
				for _, s := range snapshot {
					fmt.Printf("  %s %s  %s\n", s.Date, s.Time, s.Title)
				}
			}
		}
	}),
}

// mustGroup resolves a group by name or exits.
func mustGroup(name string) *models.StudyGroup {
	group, err := db.GetGroupByName(name)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return group
}

// mustMembership exits unless the profile belongs to the group.
func mustMembership(group *models.StudyGroup, profile *models.UserProfile) {
	member, err := db.IsMember(group.ID, profile.ID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if !member {
		fmt.Printf("You are not a member of %q. Join it first:\n", group.Name)
		fmt.Printf("  studymate group join %s\n", group.Name)
		os.Exit(1)
	}
}

func init() {
	groupCreateCmd.Flags().StringVarP(&groupDescription, "description", "d", "", "Group description")
	groupPostCmd.Flags().StringVar(&postFile, "file", "", "Attach a file name")
	groupPostCmd.Flags().StringVar(&postImage, "image", "", "Attach an image URL")
	groupScheduleCmd.Flags().StringVarP(&scheduleTime, "time", "t", "", "Time of day (HH:MM)")

	groupCmd.AddCommand(groupCreateCmd)
	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupJoinCmd)
	groupCmd.AddCommand(groupLeaveCmd)
	groupCmd.AddCommand(groupPostCmd)
	groupCmd.AddCommand(groupPostsCmd)
	groupCmd.AddCommand(groupScheduleCmd)
	groupCmd.AddCommand(groupSchedulesCmd)
	groupCmd.AddCommand(groupWatchCmd)
}
