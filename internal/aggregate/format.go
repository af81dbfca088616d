package aggregate

import "fmt"

// FormatDuration renders seconds the way the ranking and stats screens show
// study time: anything under a minute is "1분 미만", otherwise hours and
// minutes with the hour part omitted when zero.
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return "1분 미만"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%d시간 %d분", hours, minutes)
	}
	return fmt.Sprintf("%d분", minutes)
}

// FormatClock renders seconds as a running clock: MM:SS, or HH:MM:SS once
// an hour has passed.
func FormatClock(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
