package models

import (
	"time"

	"gorm.io/gorm"
)

// Assignment is a personal to-do pinned to a calendar day.
type Assignment struct {
	ID        string         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID     string `gorm:"not null;index" json:"owner_id"`
	Title       string `gorm:"not null" json:"title"`
	Date        string `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	Description string `json:"description"`
}

// Deadline is a time-boxed reminder. When Remind is set the reminder
// scheduler fires a local alert at Date+Time.
type Deadline struct {
	ID        string         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID    string     `gorm:"not null;index" json:"owner_id"`
	Title      string     `gorm:"not null" json:"title"`
	Date       string     `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	Time       string     `json:"time"`                       // HH:MM
	Remind     bool       `gorm:"default:true" json:"remind"`
	RemindedAt *time.Time `json:"reminded_at"`
}

// Notification is one entry on the user's notification feed, written when
// a reminder fires.
type Notification struct {
	ID        string         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID string    `gorm:"not null;index" json:"owner_id"`
	Title   string    `gorm:"not null" json:"title"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sent_at"`
}
