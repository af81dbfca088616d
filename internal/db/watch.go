package db

import (
	"context"
	"sync"
	"time"

	"github.com/jaehyuklee/studymate/internal/models"
)

// topic names one watched collection.
type topic string

const (
	topicSessions  topic = "study_sessions"
	topicPosts     topic = "group_posts"
	topicSchedules topic = "schedules"
)

// broker fans out change pings per topic. Services call publish after every
// write; each watcher re-queries and delivers a full snapshot, never a
// delta. Subscribers cancel by dropping their context.
type broker struct {
	mu   sync.Mutex
	subs map[topic][]chan struct{}
}

var watches = &broker{subs: make(map[topic][]chan struct{})}

func (b *broker) subscribe(t topic) chan struct{} {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.subs[t] = append(b.subs[t], ch)
	b.mu.Unlock()
	return ch
}

func (b *broker) unsubscribe(t topic, ch chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[t]
	for i, sub := range subs {
		if sub == ch {
			b.subs[t] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

func (b *broker) publish(t topic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[t] {
		// Coalesce: one pending ping is enough, the watcher re-queries
		// the full set anyway.
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// watchLoop drives one subscription: an initial snapshot, then a fresh one
// after every publish on the topic. Undelivered snapshots are replaced by
// newer ones (last write wins), so a slow consumer only ever sees current
// data.
func watchLoop[T any](ctx context.Context, t topic, query func() ([]T, error), out chan []T) {
	ping := watches.subscribe(t)
	defer watches.unsubscribe(t, ping)
	defer close(out)

	deliver := func() {
		snapshot, err := query()
		if err != nil {
			// A failed read is treated as "no data yet"; the next
			// change will retry.
			return
		}
		select {
		case <-out:
		default:
		}
		select {
		case out <- snapshot:
		case <-ctx.Done():
		}
	}

	deliver()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ping:
			deliver()
		}
	}
}

// WatchMonthSessions streams full snapshots of the owner's sessions for one
// month, starting with the current state and again after every new session.
func WatchMonthSessions(ctx context.Context, ownerID string, year int, month time.Month) <-chan []models.StudySession {
	out := make(chan []models.StudySession, 1)
	go watchLoop(ctx, topicSessions, func() ([]models.StudySession, error) {
		return SessionsInMonth(ownerID, year, month)
	}, out)
	return out
}

// WatchGroupPosts streams snapshots of a group's feed, newest first.
func WatchGroupPosts(ctx context.Context, groupID string) <-chan []models.GroupPost {
	out := make(chan []models.GroupPost, 1)
	go watchLoop(ctx, topicPosts, func() ([]models.GroupPost, error) {
		return GroupPosts(groupID)
	}, out)
	return out
}

// WatchGroupSchedules streams snapshots of a group's calendar entries.
func WatchGroupSchedules(ctx context.Context, groupID string) <-chan []models.GroupSchedule {
	out := make(chan []models.GroupSchedule, 1)
	go watchLoop(ctx, topicSchedules, func() ([]models.GroupSchedule, error) {
		return GroupSchedules(groupID)
	}, out)
	return out
}
