package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jaehyuklee/studymate/internal/models"
)

// AppendNotification records a fired reminder on the owner's feed.
func AppendNotification(ownerID, title, body string) (*models.Notification, error) {
	notification := models.Notification{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Title:   title,
		Body:    body,
		SentAt:  time.Now(),
	}
	if err := DB.Create(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// Notifications returns the owner's feed, newest first.
func Notifications(ownerID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := DB.Where("owner_id = ?", ownerID).
		Order("sent_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// DeleteNotification removes one feed entry.
func DeleteNotification(id string) error {
	result := DB.Where("id = ?", id).Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %s not found", id)
	}
	return nil
}
