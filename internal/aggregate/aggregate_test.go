package aggregate_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/jaehyuklee/studymate/internal/aggregate"
	"github.com/jaehyuklee/studymate/internal/models"
)

func session(owner, subject string, seconds int, completedAt time.Time) models.StudySession {
	return models.StudySession{
		OwnerID:         owner,
		Subject:         subject,
		DurationSeconds: seconds,
		CompletedAt:     completedAt,
	}
}

func localDate(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

func TestByDayEmpty(t *testing.T) {
	daily := aggregate.ByDay(nil)
	if len(daily) != 0 {
		t.Errorf("ByDay(nil) = %v, want empty map", daily)
	}
}

func TestByDayBucketsByDate(t *testing.T) {
	sessions := []models.StudySession{
		session("u1", "수학", 1800, localDate(2026, 3, 2, 9)),
		session("u1", "영어", 600, localDate(2026, 3, 2, 14)),
		session("u1", "수학", 3600, localDate(2026, 3, 3, 20)),
	}

	daily := aggregate.ByDay(sessions)

	if len(daily) != 2 {
		t.Fatalf("got %d days, want 2", len(daily))
	}

	day := daily["2026-03-02"]
	if day == nil {
		t.Fatal("missing aggregate for 2026-03-02")
	}
	if day.TotalSeconds != 2400 {
		t.Errorf("TotalSeconds = %d, want 2400", day.TotalSeconds)
	}
	want := map[string]int{"수학": 1800, "영어": 600}
	if !reflect.DeepEqual(day.BySubject, want) {
		t.Errorf("BySubject = %v, want %v", day.BySubject, want)
	}
}

func TestByDayDefaultSubject(t *testing.T) {
	daily := aggregate.ByDay([]models.StudySession{
		session("u1", "", 300, localDate(2026, 3, 2, 9)),
	})

	day := daily["2026-03-02"]
	if day == nil {
		t.Fatal("missing aggregate for 2026-03-02")
	}
	if day.BySubject[models.DefaultSubject] != 300 {
		t.Errorf("BySubject[%q] = %d, want 300", models.DefaultSubject, day.BySubject[models.DefaultSubject])
	}
}

// The per-subject breakdown must always add up to the day's total.
func TestByDayTotalsInvariant(t *testing.T) {
	sessions := []models.StudySession{
		session("u1", "수학", 1800, localDate(2026, 3, 2, 9)),
		session("u1", "", 90, localDate(2026, 3, 2, 10)),
		session("u1", "영어", 45, localDate(2026, 3, 2, 11)),
		session("u1", "수학", 7200, localDate(2026, 3, 5, 9)),
	}

	for date, day := range aggregate.ByDay(sessions) {
		sum := 0
		for _, seconds := range day.BySubject {
			sum += seconds
		}
		if sum != day.TotalSeconds {
			t.Errorf("%s: sum(BySubject) = %d, TotalSeconds = %d", date, sum, day.TotalSeconds)
		}
	}
}

func TestByDayIdempotent(t *testing.T) {
	sessions := []models.StudySession{
		session("u1", "수학", 1800, localDate(2026, 3, 2, 9)),
		session("u2", "영어", 600, localDate(2026, 3, 2, 14)),
	}

	first := aggregate.ByDay(sessions)
	second := aggregate.ByDay(sessions)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated ByDay differs: %v vs %v", first, second)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{localDate(2026, 3, 4, 15), "2026-03-01"}, // Wednesday -> previous Sunday
		{localDate(2026, 3, 1, 0), "2026-03-01"},  // Sunday maps to itself
		{localDate(2026, 3, 7, 23), "2026-03-01"}, // Saturday, end of the window
	}
	for _, tt := range tests {
		got := aggregate.StartOfWeek(tt.in).Format(aggregate.DateKeyFormat)
		if got != tt.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tt.in.Format(aggregate.DateKeyFormat), got, tt.want)
		}
	}
}

func TestWeekly(t *testing.T) {
	// Week of Sunday 2026-03-01: Monday has 1800s, Wednesday 3600s.
	daily := aggregate.ByDay([]models.StudySession{
		session("u1", "수학", 1800, localDate(2026, 3, 2, 9)),
		session("u1", "영어", 3600, localDate(2026, 3, 4, 9)),
		session("u1", "수학", 9999, localDate(2026, 3, 9, 9)), // next week, excluded
	})

	week := aggregate.Weekly(daily, "2026-03-05")

	if week.TotalSeconds != 5400 {
		t.Errorf("TotalSeconds = %d, want 5400", week.TotalSeconds)
	}
	if week.BySubject["수학"] != 1800 || week.BySubject["영어"] != 3600 {
		t.Errorf("BySubject = %v", week.BySubject)
	}
}

func TestWeeklyEmptyAndInvalid(t *testing.T) {
	if got := aggregate.Weekly(nil, "2026-03-05"); got.TotalSeconds != 0 {
		t.Errorf("Weekly over no data = %d seconds, want 0", got.TotalSeconds)
	}
	if got := aggregate.Weekly(nil, "not-a-date"); got.TotalSeconds != 0 {
		t.Errorf("Weekly with bad key = %d seconds, want 0", got.TotalSeconds)
	}
}
