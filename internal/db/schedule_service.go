package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jaehyuklee/studymate/internal/models"
)

// CreateAssignment adds a personal assignment on the given date.
func CreateAssignment(ownerID, title, date, description string) (*models.Assignment, error) {
	if title == "" || date == "" {
		return nil, fmt.Errorf("assignment title and date are required")
	}

	assignment := models.Assignment{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Date:        date,
		Description: description,
	}
	if err := DB.Create(&assignment).Error; err != nil {
		return nil, err
	}

	watches.publish(topicSchedules)
	return &assignment, nil
}

// AssignmentsInMonth returns the owner's assignments dated inside the month.
func AssignmentsInMonth(ownerID string, year int, month time.Month) ([]models.Assignment, error) {
	start, end := monthKeyRange(year, month)

	var assignments []models.Assignment
	err := DB.Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, start, end).
		Order("date ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// Assignments returns all of the owner's assignments ordered by date.
func Assignments(ownerID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := DB.Where("owner_id = ?", ownerID).
		Order("date ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// DeleteAssignment removes an assignment by ID.
func DeleteAssignment(id string) error {
	result := DB.Where("id = ?", id).Delete(&models.Assignment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("assignment %s not found", id)
	}
	watches.publish(topicSchedules)
	return nil
}

// CreateDeadline adds a deadline with an optional reminder time.
func CreateDeadline(ownerID, title, date, timeOfDay string) (*models.Deadline, error) {
	if title == "" || date == "" {
		return nil, fmt.Errorf("deadline title and date are required")
	}

	deadline := models.Deadline{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Title:   title,
		Date:    date,
		Time:    timeOfDay,
		Remind:  true,
	}
	if err := DB.Create(&deadline).Error; err != nil {
		return nil, err
	}

	watches.publish(topicSchedules)
	return &deadline, nil
}

// DeadlinesInMonth returns the owner's deadlines dated inside the month.
func DeadlinesInMonth(ownerID string, year int, month time.Month) ([]models.Deadline, error) {
	start, end := monthKeyRange(year, month)

	var deadlines []models.Deadline
	err := DB.Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, start, end).
		Order("date ASC").
		Find(&deadlines).Error
	if err != nil {
		return nil, err
	}
	return deadlines, nil
}

// Deadlines returns all of the owner's deadlines ordered by date.
func Deadlines(ownerID string) ([]models.Deadline, error) {
	var deadlines []models.Deadline
	err := DB.Where("owner_id = ?", ownerID).
		Order("date ASC").
		Find(&deadlines).Error
	if err != nil {
		return nil, err
	}
	return deadlines, nil
}

// DeleteDeadline removes a deadline by ID.
func DeleteDeadline(id string) error {
	result := DB.Where("id = ?", id).Delete(&models.Deadline{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("deadline %s not found", id)
	}
	watches.publish(topicSchedules)
	return nil
}

// PendingReminders returns deadlines that still want a reminder: Remind set,
// not yet fired, dated today or later.
func PendingReminders(ownerID string, now time.Time) ([]models.Deadline, error) {
	today := now.Format("2006-01-02")

	var deadlines []models.Deadline
	err := DB.Where("owner_id = ? AND remind = ? AND reminded_at IS NULL AND date >= ?", ownerID, true, today).
		Order("date ASC").
		Find(&deadlines).Error
	if err != nil {
		return nil, err
	}
	return deadlines, nil
}

// MarkReminded stamps a deadline as having fired its reminder.
func MarkReminded(id string, at time.Time) error {
	return DB.Model(&models.Deadline{}).Where("id = ?", id).
		Update("reminded_at", at).Error
}

// monthKeyRange returns the first and last date keys of a month. Date keys
// sort lexically, so string comparison works in queries.
func monthKeyRange(year int, month time.Month) (string, string) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}
