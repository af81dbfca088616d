package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaehyuklee/studymate/internal/aggregate"
	"github.com/jaehyuklee/studymate/internal/models"
)

// RunTimerTUI starts the interactive stopwatch/pomodoro view and prints a
// summary of what was recorded once it closes.
func RunTimerTUI(profile *models.UserProfile, pomodoro bool) error {
	model := NewTimerModel(profile, pomodoro)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(TimerModel); ok {
		if m.saveErr != nil {
			return fmt.Errorf("failed to save session: %w", m.saveErr)
		}
		if m.savedCount > 0 {
			fmt.Printf("✅ %d개 세션, 총 %s 기록되었습니다.\n",
				m.savedCount, aggregate.FormatDuration(m.savedSeconds))
		} else {
			fmt.Println("기록된 세션이 없습니다.")
		}
	}

	return nil
}

// RunCalendarTUI starts the interactive month view.
func RunCalendarTUI(profile *models.UserProfile) error {
	model := NewCalendarModel(profile)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
