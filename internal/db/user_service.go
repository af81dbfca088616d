package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jaehyuklee/studymate/internal/models"
)

// ErrNoProfile is returned when no profile is marked current.
var ErrNoProfile = errors.New("no current profile; run 'studymate profile create' first")

// CreateProfile creates a new local profile and makes it current.
func CreateProfile(displayName string) (*models.UserProfile, error) {
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}

	profile := models.UserProfile{
		ID:                uuid.NewString(),
		DisplayName:       displayName,
		Subjects:          []string{"기본"},
		FocusMinutes:      models.DefaultFocusMinutes,
		ShortBreakMinutes: models.DefaultShortBreakMinutes,
		LongBreakMinutes:  models.DefaultLongBreakMinutes,
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.UserProfile{}).Where("current = ?", true).
			Update("current", false).Error; err != nil {
			return err
		}
		profile.Current = true
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// CurrentProfile returns the profile marked current.
func CurrentProfile() (*models.UserProfile, error) {
	var profile models.UserProfile
	err := DB.Where("current = ?", true).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoProfile
		}
		return nil, err
	}
	return &profile, nil
}

// UseProfile switches the current profile to the one matching the given
// display name.
func UseProfile(displayName string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := DB.Where("display_name = ?", displayName).First(&profile).Error; err != nil {
		return nil, fmt.Errorf("profile %q not found", displayName)
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.UserProfile{}).Where("current = ?", true).
			Update("current", false).Error; err != nil {
			return err
		}
		return tx.Model(&profile).Update("current", true).Error
	})
	if err != nil {
		return nil, err
	}

	profile.Current = true
	return &profile, nil
}

// ListProfiles returns all profiles.
func ListProfiles() ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	if err := DB.Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// AddSubject appends a subject to the current profile's list. Duplicates
// are rejected here rather than silently merged.
func AddSubject(name string) (*models.UserProfile, error) {
	profile, err := CurrentProfile()
	if err != nil {
		return nil, err
	}

	for _, s := range profile.Subjects {
		if s == name {
			return nil, fmt.Errorf("subject %q already exists", name)
		}
	}

	profile.Subjects = append(profile.Subjects, name)
	if err := DB.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveSubject drops a subject from the current profile's list. Existing
// sessions keep the subject string they were recorded with.
func RemoveSubject(name string) (*models.UserProfile, error) {
	profile, err := CurrentProfile()
	if err != nil {
		return nil, err
	}

	kept := profile.Subjects[:0]
	found := false
	for _, s := range profile.Subjects {
		if s == name {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return nil, fmt.Errorf("subject %q not found", name)
	}

	profile.Subjects = kept
	if err := DB.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// SavePomodoroSettings updates the current profile's interval lengths.
func SavePomodoroSettings(focus, shortBreak, longBreak int) (*models.UserProfile, error) {
	if focus < 1 || shortBreak < 1 || longBreak < 1 {
		return nil, fmt.Errorf("interval minutes must be at least 1")
	}

	profile, err := CurrentProfile()
	if err != nil {
		return nil, err
	}

	profile.FocusMinutes = focus
	profile.ShortBreakMinutes = shortBreak
	profile.LongBreakMinutes = longBreak
	if err := DB.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// AllDisplayNames maps every profile ID to its display name, for the
// rankings view.
func AllDisplayNames() (map[string]string, error) {
	profiles, err := ListProfiles()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		names[p.ID] = p.DisplayName
	}
	return names, nil
}
