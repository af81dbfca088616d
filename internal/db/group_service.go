package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jaehyuklee/studymate/internal/models"
)

// CreateGroup creates a study group and a welcome post on its feed.
func CreateGroup(name, description string) (*models.StudyGroup, error) {
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}

	group := models.StudyGroup{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		welcome := models.GroupPost{
			ID:      uuid.NewString(),
			GroupID: group.ID,
			Author:  "관리자",
			Content: fmt.Sprintf("%s 그룹에 오신 것을 환영합니다! 함께 열심히 공부해봐요!", name),
		}
		return tx.Create(&welcome).Error
	})
	if err != nil {
		return nil, err
	}

	return &group, nil
}

// ListGroups returns all study groups.
func ListGroups() ([]models.StudyGroup, error) {
	var groups []models.StudyGroup
	if err := DB.Order("created_at ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroupByName looks up a group by its display name.
func GetGroupByName(name string) (*models.StudyGroup, error) {
	var group models.StudyGroup
	if err := DB.Where("name = ?", name).First(&group).Error; err != nil {
		return nil, fmt.Errorf("group %q not found", name)
	}
	return &group, nil
}

// JoinGroup adds the profile to the group's member list and bumps the
// member count, atomically.
func JoinGroup(groupID, profileID string) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var existing models.GroupMember
		err := tx.Where("study_group_id = ? AND user_profile_id = ?", groupID, profileID).
			First(&existing).Error
		if err == nil {
			return fmt.Errorf("already a member of this group")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		member := models.GroupMember{StudyGroupID: groupID, UserProfileID: profileID}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		return tx.Model(&models.StudyGroup{}).Where("id = ?", groupID).
			Update("member_count", gorm.Expr("member_count + 1")).Error
	})
}

// LeaveGroup removes the profile from the group, atomically with the
// member count.
func LeaveGroup(groupID, profileID string) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("study_group_id = ? AND user_profile_id = ?", groupID, profileID).
			Delete(&models.GroupMember{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("not a member of this group")
		}
		return tx.Model(&models.StudyGroup{}).Where("id = ?", groupID).
			Update("member_count", gorm.Expr("member_count - 1")).Error
	})
}

// IsMember reports whether the profile belongs to the group.
func IsMember(groupID, profileID string) (bool, error) {
	var count int64
	err := DB.Model(&models.GroupMember{}).
		Where("study_group_id = ? AND user_profile_id = ?", groupID, profileID).
		Count(&count).Error
	return count > 0, err
}

// MemberGroups returns the groups the profile has joined.
func MemberGroups(profileID string) ([]models.StudyGroup, error) {
	var groups []models.StudyGroup
	err := DB.Joins("JOIN group_members ON group_members.study_group_id = study_groups.id").
		Where("group_members.user_profile_id = ?", profileID).
		Order("study_groups.created_at ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// CreatePost adds a post to the group feed. Members only.
func CreatePost(groupID, author, content, fileName, fileURL, imageURL string) (*models.GroupPost, error) {
	if content == "" && fileName == "" && imageURL == "" {
		return nil, fmt.Errorf("post content is required")
	}
	if fileName != "" && imageURL != "" {
		return nil, fmt.Errorf("a post can carry a file or an image, not both")
	}

	post := models.GroupPost{
		ID:       uuid.NewString(),
		GroupID:  groupID,
		Author:   author,
		Content:  content,
		FileName: fileName,
		FileURL:  fileURL,
		ImageURL: imageURL,
	}
	if err := DB.Create(&post).Error; err != nil {
		return nil, err
	}

	watches.publish(topicPosts)
	return &post, nil
}

// GroupPosts returns the group's feed, newest first.
func GroupPosts(groupID string) ([]models.GroupPost, error) {
	var posts []models.GroupPost
	err := DB.Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CreateGroupSchedule puts an entry on the group calendar.
func CreateGroupSchedule(groupID, title, date, timeOfDay string) (*models.GroupSchedule, error) {
	if title == "" || date == "" {
		return nil, fmt.Errorf("schedule title and date are required")
	}

	schedule := models.GroupSchedule{
		ID:      uuid.NewString(),
		GroupID: groupID,
		Title:   title,
		Date:    date,
		Time:    timeOfDay,
	}
	if err := DB.Create(&schedule).Error; err != nil {
		return nil, err
	}

	watches.publish(topicSchedules)
	return &schedule, nil
}

// GroupSchedules returns the group's calendar entries, date ascending.
func GroupSchedules(groupID string) ([]models.GroupSchedule, error) {
	var schedules []models.GroupSchedule
	err := DB.Where("group_id = ?", groupID).
		Order("date ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// SchedulesForMember returns calendar entries from every group the profile
// belongs to, with the group name attached for display.
func SchedulesForMember(profileID string) ([]models.GroupSchedule, map[string]string, error) {
	groups, err := MemberGroups(profileID)
	if err != nil {
		return nil, nil, err
	}

	groupNames := make(map[string]string, len(groups))
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		groupNames[g.ID] = g.Name
		ids = append(ids, g.ID)
	}
	if len(ids) == 0 {
		return nil, groupNames, nil
	}

	var schedules []models.GroupSchedule
	err = DB.Where("group_id IN ?", ids).
		Order("date ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, nil, err
	}
	return schedules, groupNames, nil
}
