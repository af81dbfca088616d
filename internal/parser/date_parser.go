package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDateKey parses a calendar-day argument into the YYYY-MM-DD key.
// Supported formats:
// - YYYY-MM-DD (e.g., "2026-03-02")
// - "today", "tomorrow"
// - X days (e.g., "3 days", "1 day")
// - X weeks (e.g., "2 weeks", "1 week")
func ParseDateKey(input string) (string, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return "", fmt.Errorf("date is required")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "today":
		return today.Format("2006-01-02"), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format("2006-01-02"), nil
	}

	if key, err := parseAbsoluteDate(input); err == nil {
		return key, nil
	}

	if key, err := parseRelativeDate(input, today); err == nil {
		return key, nil
	}

	return "", fmt.Errorf("invalid date format. Use: YYYY-MM-DD, today, tomorrow, X days, or X weeks")
}

// parseAbsoluteDate validates and normalizes a YYYY-MM-DD key
func parseAbsoluteDate(input string) (string, error) {
	dateRegex := regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return "", fmt.Errorf("invalid date format")
	}

	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	day, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return "", fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return "", fmt.Errorf("day must be between 1 and 31")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return "", fmt.Errorf("invalid date")
	}

	return date.Format("2006-01-02"), nil
}

// parseRelativeDate parses relative formats like "3 days" or "2 weeks"
func parseRelativeDate(input string, today time.Time) (string, error) {
	relativeRegex := regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)$`)
	matches := relativeRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return "", fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return "", fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "day", "days":
		if amount < 1 || amount > 365 {
			return "", fmt.Errorf("days must be between 1 and 365")
		}
		return today.AddDate(0, 0, amount).Format("2006-01-02"), nil
	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return "", fmt.Errorf("weeks must be between 1 and 52")
		}
		return today.AddDate(0, 0, amount*7).Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("unsupported unit")
}

// ParseClockTime validates an HH:MM argument and returns it normalized.
func ParseClockTime(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	t, err := time.Parse("15:04", input)
	if err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", input)
	}
	return t.Format("15:04"), nil
}
