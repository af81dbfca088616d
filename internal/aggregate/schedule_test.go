package aggregate_test

import (
	"testing"

	"github.com/jaehyuklee/studymate/internal/aggregate"
)

func TestMergeSchedulesOrdering(t *testing.T) {
	date := "2026-03-02"
	personal := []aggregate.ScheduleItem{
		{ID: "p1", Title: "복습", Date: date},
		{ID: "p2", Title: "단어 암기", Date: date},
	}
	group := []aggregate.ScheduleItem{
		{ID: "g1", Title: "스터디 모임", Date: date, GroupName: "알고리즘 스터디"},
	}
	deadlines := []aggregate.ScheduleItem{
		{ID: "d1", Title: "과제 제출", Date: date, Time: "23:59"},
	}

	// Input order across sources must not matter for the merged order.
	merged := aggregate.MergeSchedules(personal, group, deadlines)

	items := merged[date]
	if len(items) != 4 {
		t.Fatalf("got %d items, want 4", len(items))
	}
	wantIDs := []string{"p1", "p2", "g1", "d1"}
	wantKinds := []string{
		aggregate.KindPersonal, aggregate.KindPersonal,
		aggregate.KindGroup, aggregate.KindDeadline,
	}
	for i, item := range items {
		if item.ID != wantIDs[i] {
			t.Errorf("items[%d].ID = %s, want %s", i, item.ID, wantIDs[i])
		}
		if item.Kind != wantKinds[i] {
			t.Errorf("items[%d].Kind = %s, want %s", i, item.Kind, wantKinds[i])
		}
	}
}

func TestMergeSchedulesNoDedup(t *testing.T) {
	date := "2026-03-02"
	personal := []aggregate.ScheduleItem{{ID: "p1", Title: "시험", Date: date}}
	deadlines := []aggregate.ScheduleItem{{ID: "d1", Title: "시험", Date: date}}

	merged := aggregate.MergeSchedules(personal, nil, deadlines)
	if len(merged[date]) != 2 {
		t.Errorf("colliding titles were deduplicated: %v", merged[date])
	}
}

func TestMergeSchedulesGroupsByDate(t *testing.T) {
	merged := aggregate.MergeSchedules(
		[]aggregate.ScheduleItem{{ID: "p1", Date: "2026-03-02"}},
		[]aggregate.ScheduleItem{{ID: "g1", Date: "2026-03-09"}},
		nil,
	)
	if len(merged) != 2 || len(merged["2026-03-02"]) != 1 || len(merged["2026-03-09"]) != 1 {
		t.Errorf("merged = %v", merged)
	}
}

func TestMergeSchedulesEmpty(t *testing.T) {
	if merged := aggregate.MergeSchedules(nil, nil, nil); len(merged) != 0 {
		t.Errorf("MergeSchedules(nil, nil, nil) = %v, want empty", merged)
	}
}
