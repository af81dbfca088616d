package parser_test

import (
	"testing"
	"time"

	"github.com/jaehyuklee/studymate/internal/parser"
)

func TestParseDateKeyAbsolute(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2026-03-02", "2026-03-02", true},
		{"2026-3-2", "2026-03-02", true},
		{"2026-02-29", "", false}, // not a leap year
		{"2024-02-29", "2024-02-29", true},
		{"2026-13-01", "", false},
		{"garbage", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := parser.ParseDateKey(tt.input)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseDateKey(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseDateKey(%q) succeeded with %q", tt.input, got)
		}
	}
}

func TestParseDateKeyRelative(t *testing.T) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	got, err := parser.ParseDateKey("today")
	if err != nil || got != today.Format("2006-01-02") {
		t.Errorf("today = %q, %v", got, err)
	}

	got, err = parser.ParseDateKey("3 days")
	if err != nil || got != today.AddDate(0, 0, 3).Format("2006-01-02") {
		t.Errorf("3 days = %q, %v", got, err)
	}

	got, err = parser.ParseDateKey("2 weeks")
	if err != nil || got != today.AddDate(0, 0, 14).Format("2006-01-02") {
		t.Errorf("2 weeks = %q, %v", got, err)
	}
}

func TestParseClockTime(t *testing.T) {
	if got, err := parser.ParseClockTime("9:05"); err != nil || got != "09:05" {
		t.Errorf("ParseClockTime(9:05) = %q, %v", got, err)
	}
	if got, err := parser.ParseClockTime(""); err != nil || got != "" {
		t.Errorf("empty time = %q, %v", got, err)
	}
	if _, err := parser.ParseClockTime("25:00"); err == nil {
		t.Error("25:00 accepted")
	}
}

func TestParseStudyDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"90", 90 * 60, true},
		{"45m", 45 * 60, true},
		{"1h30m", 5400, true},
		{"2h", 7200, true},
		{"0", 0, false},
		{"30s", 0, false},
		{"25h", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := parser.ParseStudyDuration(tt.input)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseStudyDuration(%q) = %d, %v; want %d", tt.input, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseStudyDuration(%q) succeeded with %d", tt.input, got)
		}
	}
}
