package aggregate

import (
	"fmt"
	"sort"

	"github.com/jaehyuklee/studymate/internal/models"
)

// RankingEntry is one row of the cross-user leaderboard.
type RankingEntry struct {
	OwnerID        string `json:"owner_id"`
	Rank           int    `json:"rank"`
	DisplayName    string `json:"display_name"`
	TotalSeconds   int    `json:"total_seconds"`
	TotalStudyTime string `json:"total_study_time"`
}

// NoRecordTime is shown for a viewer who has no sessions at all.
const NoRecordTime = "기록 없음"

// Rankings sums all sessions per owner and orders owners by total study
// time, descending. Ties are broken by owner ID so repeated computations
// give the same order. Ranks are sequential and 1-based; equal totals do
// not share a rank. Owners with no sessions do not appear.
func Rankings(sessions []models.StudySession, displayNames map[string]string) []RankingEntry {
	totals := make(map[string]int)
	for _, s := range sessions {
		totals[s.OwnerID] += s.DurationSeconds
	}

	entries := make([]RankingEntry, 0, len(totals))
	for ownerID, seconds := range totals {
		entries = append(entries, RankingEntry{
			OwnerID:        ownerID,
			DisplayName:    displayNameFor(ownerID, displayNames),
			TotalSeconds:   seconds,
			TotalStudyTime: FormatDuration(seconds),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalSeconds != entries[j].TotalSeconds {
			return entries[i].TotalSeconds > entries[j].TotalSeconds
		}
		return entries[i].OwnerID < entries[j].OwnerID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// ViewerPlaceholder builds the "no record" row shown for the current user
// when they are absent from the rankings. Rank 0 renders as "-".
func ViewerPlaceholder(ownerID string, displayNames map[string]string) RankingEntry {
	return RankingEntry{
		OwnerID:        ownerID,
		Rank:           0,
		DisplayName:    displayNameFor(ownerID, displayNames),
		TotalStudyTime: NoRecordTime,
	}
}

func displayNameFor(ownerID string, displayNames map[string]string) string {
	if name, ok := displayNames[ownerID]; ok && name != "" {
		return name
	}
	tail := ownerID
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return fmt.Sprintf("User...%s", tail)
}
