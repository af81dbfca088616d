package db

import (
	"fmt"
	"time"

	"github.com/jaehyuklee/studymate/internal/models"
)

// SaveSession records one completed study session for the owner. Sessions
// are append-only; nothing ever updates them afterwards.
func SaveSession(ownerID, subject, timerType string, durationSeconds int) (*models.StudySession, error) {
	return SaveSessionAt(ownerID, subject, timerType, durationSeconds, time.Now())
}

// SaveSessionAt records a session with an explicit completion time, for
// backfilling sessions timed outside the app.
func SaveSessionAt(ownerID, subject, timerType string, durationSeconds int, completedAt time.Time) (*models.StudySession, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("no current profile; run 'studymate profile create' first")
	}
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("session duration must be positive")
	}

	session := models.StudySession{
		OwnerID:         ownerID,
		Subject:         subject,
		DurationSeconds: durationSeconds,
		TimerType:       timerType,
		CompletedAt:     completedAt,
	}

	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}

	watches.publish(topicSessions)
	return &session, nil
}

// SessionsInMonth returns the owner's finished sessions whose completion
// time falls inside the given month.
func SessionsInMonth(ownerID string, year int, month time.Month) ([]models.StudySession, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)
	return SessionsInRange(ownerID, start, end)
}

// SessionsInRange returns the owner's sessions completed in [start, end).
func SessionsInRange(ownerID string, start, end time.Time) ([]models.StudySession, error) {
	var sessions []models.StudySession

	err := DB.Where("owner_id = ? AND completed_at >= ? AND completed_at < ?", ownerID, start, end).
		Order("completed_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// AllSessions returns every session across all owners, for the rankings.
func AllSessions() ([]models.StudySession, error) {
	var sessions []models.StudySession
	if err := DB.Order("completed_at ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
