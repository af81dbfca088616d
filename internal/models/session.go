package models

import (
	"time"

	"gorm.io/gorm"
)

// Timer types recorded with each study session
const (
	TimerStopwatch = "stopwatch"
	TimerPomodoro  = "pomodoro"
)

// DefaultSubject is the fallback bucket for sessions saved without a subject.
const DefaultSubject = "기타"

// StudySession represents one completed stretch of studying. Sessions are
// written once by the timer on completion and never mutated.
type StudySession struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID         string    `gorm:"not null;index" json:"owner_id"`
	Subject         string    `json:"subject"`
	DurationSeconds int       `gorm:"not null" json:"duration_seconds"`
	TimerType       string    `gorm:"default:stopwatch" json:"timer_type"` // stopwatch, pomodoro
	CompletedAt     time.Time `gorm:"not null;index" json:"completed_at"`
}
