package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseStudyDuration parses a study duration argument into seconds.
// Supported formats:
// - bare minutes (e.g., "90")
// - minutes with suffix (e.g., "45m")
// - hours and minutes (e.g., "1h30m", "2h")
func ParseStudyDuration(input string) (int, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return 0, fmt.Errorf("duration is required")
	}

	// Bare number means minutes.
	if minutes, err := strconv.Atoi(input); err == nil {
		if minutes < 1 {
			return 0, fmt.Errorf("duration must be at least 1 minute")
		}
		return minutes * 60, nil
	}

	durationRegex := regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)
	matches := durationRegex.FindStringSubmatch(input)
	if len(matches) != 3 || (matches[1] == "" && matches[2] == "") {
		return 0, fmt.Errorf("invalid duration %q. Use: minutes, Nm, or NhMm", input)
	}

	hours := 0
	minutes := 0
	if matches[1] != "" {
		hours, _ = strconv.Atoi(matches[1])
	}
	if matches[2] != "" {
		minutes, _ = strconv.Atoi(matches[2])
	}

	seconds := hours*3600 + minutes*60
	if seconds < 60 {
		return 0, fmt.Errorf("duration must be at least 1 minute")
	}
	if seconds > 24*3600 {
		return 0, fmt.Errorf("duration must be at most 24 hours")
	}
	return seconds, nil
}
