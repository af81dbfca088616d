package notify

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Alert is one local reminder: a message to surface at a point in time.
type Alert struct {
	ID        string
	TriggerAt time.Time
	Title     string
	Message   string
}

// Sink receives fired alerts. Delivery is best-effort and fire-and-forget;
// nothing flows back to the scheduler.
type Sink func(alert Alert)

// Scheduler fires alerts at their trigger time. Each scheduled alert gets
// its own timer goroutine; cancelling the context drops everything still
// pending.
type Scheduler struct {
	sink Sink
	wg   sync.WaitGroup
}

// New creates a scheduler delivering into sink.
func New(sink Sink) *Scheduler {
	return &Scheduler{sink: sink}
}

// Schedule arms a timer for the alert. Alerts whose trigger time has
// already passed fire immediately.
func (s *Scheduler) Schedule(ctx context.Context, alert Alert) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		delay := time.Until(alert.TriggerAt)
		if delay <= 0 {
			s.sink(alert)
			return
		}

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			s.sink(alert)
		case <-ctx.Done():
		}
	}()
}

// Wait blocks until every scheduled alert has fired or been cancelled.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// TriggerTime resolves a deadline's date and optional HH:MM into the
// moment the reminder should fire, in local time. A missing time means
// start of the day.
func TriggerTime(date, timeOfDay string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if timeOfDay == "" {
		return day, nil
	}
	clock, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", timeOfDay, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}
