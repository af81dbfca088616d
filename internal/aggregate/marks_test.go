package aggregate_test

import (
	"math"
	"testing"

	"github.com/jaehyuklee/studymate/internal/aggregate"
)

func dailyOf(date string, seconds int) map[string]*aggregate.DailyAggregate {
	return map[string]*aggregate.DailyAggregate{
		date: {Date: date, TotalSeconds: seconds, BySubject: map[string]int{"수학": seconds}},
	}
}

func TestMarksOpacity(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    float64
	}{
		{"two hours is half", 2 * 3600, 0.5},
		{"five hours caps at one", 5 * 3600, 1.0},
		{"ten minutes floors at 0.2", 600, 0.2},
		{"exactly four hours saturates", 4 * 3600, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marks := aggregate.Marks(dailyOf("2026-03-02", tt.seconds), nil, "")
			mark, ok := marks["2026-03-02"]
			if !ok {
				t.Fatal("missing mark")
			}
			if !mark.HasStudy {
				t.Error("HasStudy = false, want true")
			}
			if math.Abs(mark.BackgroundOpacity-tt.want) > 1e-9 {
				t.Errorf("BackgroundOpacity = %v, want %v", mark.BackgroundOpacity, tt.want)
			}
		})
	}
}

func TestMarksZeroStudyGetsNoBackground(t *testing.T) {
	marks := aggregate.Marks(dailyOf("2026-03-02", 0), nil, "")
	if _, ok := marks["2026-03-02"]; ok {
		t.Error("zero-study day produced a mark; absence expected")
	}
}

func TestMarksDotPrecedence(t *testing.T) {
	items := map[string][]aggregate.ScheduleItem{
		"2026-03-02": {
			{Title: "스터디 모임", Date: "2026-03-02", Kind: aggregate.KindGroup},
			{Title: "과제 제출", Date: "2026-03-02", Kind: aggregate.KindDeadline},
			{Title: "복습", Date: "2026-03-02", Kind: aggregate.KindPersonal},
		},
		"2026-03-03": {
			{Title: "복습", Date: "2026-03-03", Kind: aggregate.KindPersonal},
			{Title: "스터디 모임", Date: "2026-03-03", Kind: aggregate.KindGroup},
		},
	}

	marks := aggregate.Marks(nil, items, "")

	if got := marks["2026-03-02"].DotKind; got != aggregate.KindDeadline {
		t.Errorf("DotKind = %q, want deadline to win", got)
	}
	if got := marks["2026-03-03"].DotKind; got != aggregate.KindPersonal {
		t.Errorf("DotKind = %q, want personal over group", got)
	}
	if !marks["2026-03-02"].HasScheduleDot {
		t.Error("HasScheduleDot = false")
	}
}

func TestMarksSelectedSynthesized(t *testing.T) {
	marks := aggregate.Marks(nil, nil, "2026-03-15")
	mark, ok := marks["2026-03-15"]
	if !ok {
		t.Fatal("selected date has no mark")
	}
	if !mark.Selected {
		t.Error("Selected = false")
	}
	if mark.HasStudy || mark.HasScheduleDot {
		t.Errorf("synthesized mark carries stray flags: %+v", mark)
	}
}

func TestMarksSelectedOverlaysExisting(t *testing.T) {
	marks := aggregate.Marks(dailyOf("2026-03-02", 3600), nil, "2026-03-02")
	mark := marks["2026-03-02"]
	if !mark.Selected || !mark.HasStudy {
		t.Errorf("selection must not clobber the study mark: %+v", mark)
	}
}
