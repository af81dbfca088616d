package models

import (
	"time"

	"gorm.io/gorm"
)

// StudyGroup is a shared study space with members, a post feed, and a
// group calendar.
type StudyGroup struct {
	ID        string         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	MemberCount int    `gorm:"default:0" json:"member_count"`

	// Relationships
	Members   []UserProfile   `gorm:"many2many:group_members;" json:"-"`
	Posts     []GroupPost     `gorm:"foreignKey:GroupID" json:"posts"`
	Schedules []GroupSchedule `gorm:"foreignKey:GroupID" json:"schedules"`
}

// GroupMember is the join table between groups and profiles.
type GroupMember struct {
	StudyGroupID  string `gorm:"primaryKey"`
	UserProfileID string `gorm:"primaryKey"`
}

// GroupPost is a message on a group's feed, optionally carrying a file or
// image reference.
type GroupPost struct {
	ID        string         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GroupID string `gorm:"not null;index" json:"group_id"`
	Author  string `gorm:"not null" json:"author"`
	Content string `json:"content"`

	// Optional attachment metadata
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
	ImageURL string `json:"image_url"`
}

// GroupSchedule is an entry on a group's shared calendar.
type GroupSchedule struct {
	ID        string         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GroupID string `gorm:"not null;index" json:"group_id"`
	Title   string `gorm:"not null" json:"title"`
	Date    string `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	Time    string `json:"time"`                       // HH:MM, optional
}
