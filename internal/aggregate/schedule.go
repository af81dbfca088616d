package aggregate

// Schedule item source kinds
const (
	KindPersonal = "personal"
	KindGroup    = "group"
	KindDeadline = "deadline"
)

// ScheduleItem is a calendar entry from one of three independent sources:
// a personal assignment, a group schedule, or a deadline.
type ScheduleItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description"`
	Kind        string `json:"kind"`
	GroupName   string `json:"group_name,omitempty"`
	Time        string `json:"time,omitempty"` // HH:MM
}

// MergeSchedules buckets the three schedule sources by date key. Within a
// date, personal items come before group items before deadlines; items from
// the same source keep their input order. Items are never deduplicated
// across sources, even on identical titles.
func MergeSchedules(personal, group, deadlines []ScheduleItem) map[string][]ScheduleItem {
	byDate := make(map[string][]ScheduleItem)
	appendKind := func(items []ScheduleItem, kind string) {
		for _, item := range items {
			item.Kind = kind
			byDate[item.Date] = append(byDate[item.Date], item)
		}
	}
	appendKind(personal, KindPersonal)
	appendKind(group, KindGroup)
	appendKind(deadlines, KindDeadline)
	return byDate
}
