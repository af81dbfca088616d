package aggregate

import (
	"time"

	"github.com/jaehyuklee/studymate/internal/models"
)

// DateKeyFormat is the calendar-day key used throughout the app (local time).
const DateKeyFormat = "2006-01-02"

// DailyAggregate is the total study time for one calendar day, broken down
// by subject. Derived, never persisted.
type DailyAggregate struct {
	Date         string         `json:"date"`
	TotalSeconds int            `json:"total_seconds"`
	BySubject    map[string]int `json:"by_subject"`
}

// WeeklyAggregate is the rollup over one Sunday-to-Saturday week.
type WeeklyAggregate struct {
	TotalSeconds int            `json:"total_seconds"`
	BySubject    map[string]int `json:"by_subject"`
}

// DateKey returns the calendar-day key for t in local time.
func DateKey(t time.Time) string {
	return t.Local().Format(DateKeyFormat)
}

// ByDay buckets sessions into per-day aggregates keyed by calendar date.
// Sessions without a subject are counted under models.DefaultSubject.
// Empty input yields an empty map.
func ByDay(sessions []models.StudySession) map[string]*DailyAggregate {
	daily := make(map[string]*DailyAggregate)
	for _, s := range sessions {
		key := DateKey(s.CompletedAt)
		agg, ok := daily[key]
		if !ok {
			agg = &DailyAggregate{Date: key, BySubject: make(map[string]int)}
			daily[key] = agg
		}
		subject := s.Subject
		if subject == "" {
			subject = models.DefaultSubject
		}
		agg.TotalSeconds += s.DurationSeconds
		agg.BySubject[subject] += s.DurationSeconds
	}
	return daily
}

// StartOfWeek returns midnight of the most recent Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// Weekly sums the seven days starting at the Sunday of the week containing
// selected. Days without an aggregate contribute zero. An unparseable
// selected key yields a zero aggregate.
func Weekly(daily map[string]*DailyAggregate, selected string) WeeklyAggregate {
	week := WeeklyAggregate{BySubject: make(map[string]int)}

	day, err := time.ParseInLocation(DateKeyFormat, selected, time.Local)
	if err != nil {
		return week
	}

	start := StartOfWeek(day)
	for i := 0; i < 7; i++ {
		key := start.AddDate(0, 0, i).Format(DateKeyFormat)
		agg, ok := daily[key]
		if !ok {
			continue
		}
		week.TotalSeconds += agg.TotalSeconds
		for subject, seconds := range agg.BySubject {
			week.BySubject[subject] += seconds
		}
	}
	return week
}
