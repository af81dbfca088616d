package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jaehyuklee/studymate/internal/db"
)

func openTestDB(t *testing.T) {
	t.Helper()
	if err := db.Open(filepath.Join(t.TempDir(), "studymate.db")); err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
}

func TestSaveAndQuerySessions(t *testing.T) {
	openTestDB(t)

	profile, err := db.CreateProfile("하늘")
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	if _, err := db.SaveSession(profile.ID, "수학", "stopwatch", 1800); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if _, err := db.SaveSession(profile.ID, "영어", "pomodoro", 1500); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	now := time.Now()
	sessions, err := db.SessionsInMonth(profile.ID, now.Year(), now.Month())
	if err != nil {
		t.Fatalf("SessionsInMonth: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].Subject != "수학" || sessions[0].DurationSeconds != 1800 {
		t.Errorf("first session = %+v", sessions[0])
	}

	// Sessions belong to their owner only.
	other, err := db.SessionsInMonth("someone-else", now.Year(), now.Month())
	if err != nil {
		t.Fatalf("SessionsInMonth: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("foreign owner sees %d sessions", len(other))
	}
}

func TestSaveSessionValidation(t *testing.T) {
	openTestDB(t)

	if _, err := db.SaveSession("", "수학", "stopwatch", 60); err == nil {
		t.Error("empty owner accepted")
	}
	if _, err := db.SaveSession("u1", "수학", "stopwatch", 0); err == nil {
		t.Error("zero duration accepted")
	}
}

func TestProfileLifecycle(t *testing.T) {
	openTestDB(t)

	if _, err := db.CurrentProfile(); err == nil {
		t.Error("CurrentProfile succeeded with no profiles")
	}

	first, err := db.CreateProfile("하늘")
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	second, err := db.CreateProfile("바다")
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	// The newest profile becomes current.
	current, err := db.CurrentProfile()
	if err != nil {
		t.Fatalf("CurrentProfile: %v", err)
	}
	if current.ID != second.ID {
		t.Errorf("current = %s, want %s", current.DisplayName, second.DisplayName)
	}

	if _, err := db.UseProfile("하늘"); err != nil {
		t.Fatalf("UseProfile: %v", err)
	}
	current, err = db.CurrentProfile()
	if err != nil {
		t.Fatalf("CurrentProfile: %v", err)
	}
	if current.ID != first.ID {
		t.Errorf("current = %s after switch, want %s", current.DisplayName, first.DisplayName)
	}

	if len(current.Subjects) != 1 || current.Subjects[0] != "기본" {
		t.Errorf("default subjects = %v", current.Subjects)
	}
}

func TestSubjects(t *testing.T) {
	openTestDB(t)

	if _, err := db.CreateProfile("하늘"); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	profile, err := db.AddSubject("알고리즘")
	if err != nil {
		t.Fatalf("AddSubject: %v", err)
	}
	if len(profile.Subjects) != 2 {
		t.Errorf("subjects = %v", profile.Subjects)
	}

	if _, err := db.AddSubject("알고리즘"); err == nil {
		t.Error("duplicate subject accepted")
	}

	profile, err = db.RemoveSubject("기본")
	if err != nil {
		t.Fatalf("RemoveSubject: %v", err)
	}
	if len(profile.Subjects) != 1 || profile.Subjects[0] != "알고리즘" {
		t.Errorf("subjects after remove = %v", profile.Subjects)
	}

	if _, err := db.RemoveSubject("없는 과목"); err == nil {
		t.Error("removing unknown subject succeeded")
	}
}

func TestGroupMembership(t *testing.T) {
	openTestDB(t)

	profile, err := db.CreateProfile("하늘")
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	group, err := db.CreateGroup("알고리즘 스터디", "매주 문제 풀이")
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}

	// Creating a group seeds the welcome post.
	posts, err := db.GroupPosts(group.ID)
	if err != nil {
		t.Fatalf("GroupPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want seeded welcome post", len(posts))
	}

	if err := db.JoinGroup(group.ID, profile.ID); err != nil {
		t.Fatalf("JoinGroup: %v", err)
	}
	if err := db.JoinGroup(group.ID, profile.ID); err == nil {
		t.Error("double join accepted")
	}

	refreshed, err := db.GetGroupByName("알고리즘 스터디")
	if err != nil {
		t.Fatalf("GetGroupByName: %v", err)
	}
	if refreshed.MemberCount != 1 {
		t.Errorf("MemberCount = %d, want 1", refreshed.MemberCount)
	}

	ok, err := db.IsMember(group.ID, profile.ID)
	if err != nil || !ok {
		t.Errorf("IsMember = %v, %v", ok, err)
	}

	if err := db.LeaveGroup(group.ID, profile.ID); err != nil {
		t.Fatalf("LeaveGroup: %v", err)
	}
	refreshed, _ = db.GetGroupByName("알고리즘 스터디")
	if refreshed.MemberCount != 0 {
		t.Errorf("MemberCount after leave = %d, want 0", refreshed.MemberCount)
	}
	if err := db.LeaveGroup(group.ID, profile.ID); err == nil {
		t.Error("leaving twice succeeded")
	}
}

func TestSchedulesForMember(t *testing.T) {
	openTestDB(t)

	profile, _ := db.CreateProfile("하늘")
	joined, _ := db.CreateGroup("알고리즘 스터디", "")
	ignored, _ := db.CreateGroup("영어 회화", "")

	if err := db.JoinGroup(joined.ID, profile.ID); err != nil {
		t.Fatalf("JoinGroup: %v", err)
	}
	if _, err := db.CreateGroupSchedule(joined.ID, "모의 코테", "2026-03-07", "20:00"); err != nil {
		t.Fatalf("CreateGroupSchedule: %v", err)
	}
	if _, err := db.CreateGroupSchedule(ignored.ID, "프리토킹", "2026-03-07", ""); err != nil {
		t.Fatalf("CreateGroupSchedule: %v", err)
	}

	schedules, names, err := db.SchedulesForMember(profile.ID)
	if err != nil {
		t.Fatalf("SchedulesForMember: %v", err)
	}
	if len(schedules) != 1 || schedules[0].Title != "모의 코테" {
		t.Errorf("schedules = %+v", schedules)
	}
	if names[joined.ID] != "알고리즘 스터디" {
		t.Errorf("group names = %v", names)
	}
}

func TestDeadlineReminderQueries(t *testing.T) {
	openTestDB(t)

	profile, _ := db.CreateProfile("하늘")
	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	upcoming, err := db.CreateDeadline(profile.ID, "과제 제출", tomorrow, "23:59")
	if err != nil {
		t.Fatalf("CreateDeadline: %v", err)
	}
	if _, err := db.CreateDeadline(profile.ID, "지난 과제", yesterday, "10:00"); err != nil {
		t.Fatalf("CreateDeadline: %v", err)
	}

	pending, err := db.PendingReminders(profile.ID, now)
	if err != nil {
		t.Fatalf("PendingReminders: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != upcoming.ID {
		t.Errorf("pending = %+v", pending)
	}

	if err := db.MarkReminded(upcoming.ID, now); err != nil {
		t.Fatalf("MarkReminded: %v", err)
	}
	pending, _ = db.PendingReminders(profile.ID, now)
	if len(pending) != 0 {
		t.Errorf("reminded deadline still pending: %+v", pending)
	}
}

func TestWatchMonthSessions(t *testing.T) {
	openTestDB(t)

	profile, _ := db.CreateProfile("하늘")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	snapshots := db.WatchMonthSessions(ctx, profile.ID, now.Year(), now.Month())

	// Initial snapshot: empty result set, not an error.
	select {
	case snapshot := <-snapshots:
		if len(snapshot) != 0 {
			t.Fatalf("initial snapshot has %d sessions", len(snapshot))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no initial snapshot")
	}

	if _, err := db.SaveSession(profile.ID, "수학", "stopwatch", 600); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	// The write pushes a fresh full snapshot.
	select {
	case snapshot := <-snapshots:
		if len(snapshot) != 1 || snapshot[0].Subject != "수학" {
			t.Fatalf("snapshot = %+v", snapshot)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after write")
	}

	// Cancellation closes the stream.
	cancel()
	select {
	case _, open := <-snapshots:
		if open {
			// A last in-flight snapshot is fine; the next read must
			// observe the close.
			if _, stillOpen := <-snapshots; stillOpen {
				t.Fatal("stream not closed after cancel")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stream not closed after cancel")
	}
}
