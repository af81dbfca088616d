package models

import (
	"time"

	"gorm.io/gorm"
)

// Pomodoro defaults, in minutes
const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
)

// UserProfile holds a local user identity plus their timer preferences.
// Exactly one profile is marked current at a time; it stands in for the
// authenticated user of the mobile app.
type UserProfile struct {
	ID        string         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	DisplayName string   `gorm:"not null" json:"display_name"`
	Subjects    []string `gorm:"serializer:json" json:"subjects"`
	Current     bool     `gorm:"default:false;index" json:"current"`

	// Pomodoro interval lengths, minutes
	FocusMinutes      int `gorm:"default:25" json:"focus_minutes"`
	ShortBreakMinutes int `gorm:"default:5" json:"short_break_minutes"`
	LongBreakMinutes  int `gorm:"default:15" json:"long_break_minutes"`

	// Relationships
	Groups []StudyGroup `gorm:"many2many:group_members;" json:"-"`
}
