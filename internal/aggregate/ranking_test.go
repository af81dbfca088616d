package aggregate_test

import (
	"testing"
	"time"

	"github.com/jaehyuklee/studymate/internal/aggregate"
	"github.com/jaehyuklee/studymate/internal/models"
)

func TestRankings(t *testing.T) {
	now := time.Now()
	sessions := []models.StudySession{
		session("A", "수학", 100, now),
		session("A", "수학", 200, now),
		session("B", "영어", 50, now),
	}
	names := map[string]string{"A": "하늘", "B": "바다"}

	entries := aggregate.Rankings(sessions, names)

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].OwnerID != "A" || entries[0].Rank != 1 || entries[0].TotalSeconds != 300 {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].OwnerID != "B" || entries[1].Rank != 2 || entries[1].TotalSeconds != 50 {
		t.Errorf("second entry = %+v", entries[1])
	}
	if entries[0].DisplayName != "하늘" {
		t.Errorf("DisplayName = %q", entries[0].DisplayName)
	}
}

func TestRankingsTieBrokenByOwnerID(t *testing.T) {
	now := time.Now()
	sessions := []models.StudySession{
		session("zed", "수학", 100, now),
		session("abe", "수학", 100, now),
	}

	entries := aggregate.Rankings(sessions, nil)

	if entries[0].OwnerID != "abe" || entries[1].OwnerID != "zed" {
		t.Errorf("tie order = [%s, %s], want owner-id ascending", entries[0].OwnerID, entries[1].OwnerID)
	}
	// Sequential ranks even on equal totals.
	if entries[0].Rank != 1 || entries[1].Rank != 2 {
		t.Errorf("ranks = [%d, %d], want [1, 2]", entries[0].Rank, entries[1].Rank)
	}
}

func TestRankingsMissingDisplayName(t *testing.T) {
	entries := aggregate.Rankings([]models.StudySession{
		session("abcdef123456", "수학", 100, time.Now()),
	}, nil)

	if entries[0].DisplayName != "User...3456" {
		t.Errorf("DisplayName = %q, want User...3456", entries[0].DisplayName)
	}
}

func TestRankingsEmpty(t *testing.T) {
	if entries := aggregate.Rankings(nil, nil); len(entries) != 0 {
		t.Errorf("Rankings(nil) = %v, want empty", entries)
	}
}

func TestViewerPlaceholder(t *testing.T) {
	entry := aggregate.ViewerPlaceholder("me01", map[string]string{"me01": "나"})
	if entry.Rank != 0 {
		t.Errorf("Rank = %d, want 0", entry.Rank)
	}
	if entry.TotalStudyTime != aggregate.NoRecordTime {
		t.Errorf("TotalStudyTime = %q", entry.TotalStudyTime)
	}
	if entry.DisplayName != "나" {
		t.Errorf("DisplayName = %q", entry.DisplayName)
	}
}
