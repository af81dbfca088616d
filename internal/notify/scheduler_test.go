package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/jaehyuklee/studymate/internal/notify"
)

func TestSchedulerFiresAtTrigger(t *testing.T) {
	fired := make(chan notify.Alert, 1)
	s := notify.New(func(a notify.Alert) { fired <- a })

	s.Schedule(context.Background(), notify.Alert{
		ID:        "d1",
		TriggerAt: time.Now().Add(50 * time.Millisecond),
		Title:     "과제 제출",
	})

	select {
	case a := <-fired:
		if a.ID != "d1" {
			t.Errorf("fired alert = %+v", a)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("alert never fired")
	}
	s.Wait()
}

func TestSchedulerPastTriggerFiresImmediately(t *testing.T) {
	fired := make(chan notify.Alert, 1)
	s := notify.New(func(a notify.Alert) { fired <- a })

	s.Schedule(context.Background(), notify.Alert{
		ID:        "d1",
		TriggerAt: time.Now().Add(-time.Hour),
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("overdue alert never fired")
	}
	s.Wait()
}

func TestSchedulerCancellation(t *testing.T) {
	fired := make(chan notify.Alert, 1)
	s := notify.New(func(a notify.Alert) { fired <- a })

	ctx, cancel := context.WithCancel(context.Background())
	s.Schedule(ctx, notify.Alert{
		ID:        "d1",
		TriggerAt: time.Now().Add(time.Hour),
	})
	cancel()
	s.Wait()

	select {
	case a := <-fired:
		t.Errorf("cancelled alert fired: %+v", a)
	default:
	}
}

func TestTriggerTime(t *testing.T) {
	got, err := notify.TriggerTime("2026-03-02", "23:59")
	if err != nil {
		t.Fatalf("TriggerTime: %v", err)
	}
	want := time.Date(2026, 3, 2, 23, 59, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("TriggerTime = %v, want %v", got, want)
	}

	midnight, err := notify.TriggerTime("2026-03-02", "")
	if err != nil {
		t.Fatalf("TriggerTime: %v", err)
	}
	if midnight.Hour() != 0 || midnight.Minute() != 0 {
		t.Errorf("empty time = %v, want start of day", midnight)
	}

	if _, err := notify.TriggerTime("bad", "10:00"); err == nil {
		t.Error("bad date accepted")
	}
	if _, err := notify.TriggerTime("2026-03-02", "25:00"); err == nil {
		t.Error("bad time accepted")
	}
}
