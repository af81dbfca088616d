package aggregate

// Opacity band for the study-intensity background. Four hours of study in
// one day saturates the mark.
const (
	MinOpacity     = 0.2
	MaxOpacity     = 1.0
	FullMarkHours  = 4.0
	secondsPerHour = 3600.0
)

// DayMark is the calendar rendering metadata for one date.
type DayMark struct {
	Date string `json:"date"`

	// Study-intensity background. HasStudy false means no background at
	// all, which is distinct from a minimum-opacity mark.
	HasStudy          bool    `json:"has_study"`
	BackgroundOpacity float64 `json:"background_opacity"`

	// Schedule dot. DotKind is the highest-precedence kind present on the
	// date: deadline over personal over group.
	HasScheduleDot bool   `json:"has_schedule_dot"`
	DotKind        string `json:"dot_kind,omitempty"`

	Selected bool `json:"selected"`
}

// kindPrecedence orders dot colors when several kinds share a date.
// Deadlines are the most urgent and always win.
var kindPrecedence = map[string]int{
	KindDeadline: 3,
	KindPersonal: 2,
	KindGroup:    1,
}

// Marks derives per-day calendar marks from the daily aggregates and the
// merged schedule map. The selected date always gets an entry, synthesized
// if it has neither study time nor schedule items.
func Marks(daily map[string]*DailyAggregate, itemsByDate map[string][]ScheduleItem, selected string) map[string]DayMark {
	marks := make(map[string]DayMark)

	for date, agg := range daily {
		if agg.TotalSeconds <= 0 {
			continue
		}
		opacity := float64(agg.TotalSeconds) / secondsPerHour / FullMarkHours
		if opacity < MinOpacity {
			opacity = MinOpacity
		}
		if opacity > MaxOpacity {
			opacity = MaxOpacity
		}
		marks[date] = DayMark{
			Date:              date,
			HasStudy:          true,
			BackgroundOpacity: opacity,
		}
	}

	for date, items := range itemsByDate {
		if len(items) == 0 {
			continue
		}
		mark := marks[date]
		mark.Date = date
		mark.HasScheduleDot = true
		for _, item := range items {
			if kindPrecedence[item.Kind] > kindPrecedence[mark.DotKind] {
				mark.DotKind = item.Kind
			}
		}
		marks[date] = mark
	}

	if selected != "" {
		mark := marks[selected]
		mark.Date = selected
		mark.Selected = true
		marks[selected] = mark
	}

	return marks
}
