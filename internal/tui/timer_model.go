package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jaehyuklee/studymate/internal/aggregate"
	"github.com/jaehyuklee/studymate/internal/db"
	"github.com/jaehyuklee/studymate/internal/models"
	"github.com/jaehyuklee/studymate/internal/timer"
)

// TimerModel runs the stopwatch/pomodoro view.
type TimerModel struct {
	width  int
	height int

	profile *models.UserProfile
	machine *timer.Machine

	mode         string // models.TimerStopwatch or models.TimerPomodoro
	subjectIndex int

	// Session bookkeeping for the post-exit summary
	savedSeconds int
	savedCount   int
	statusLine   string
	saveErr      error

	exiting bool
}

// timerTickMsg is sent every second to advance the machine
type timerTickMsg struct{}

// NewTimerModel creates the timer view for the current profile. With pomodoro
// set it starts in pomodoro mode using the profile's saved interval settings.
func NewTimerModel(profile *models.UserProfile, pomodoro bool) TimerModel {
	if pomodoro {
		return TimerModel{
			profile: profile,
			machine: timer.NewPomodoro(pomodoroSettings(profile)),
			mode:    models.TimerPomodoro,
		}
	}
	return TimerModel{
		profile: profile,
		machine: timer.NewStopwatch(),
		mode:    models.TimerStopwatch,
	}
}

func (m TimerModel) Init() tea.Cmd {
	return tickOnce()
}

func tickOnce() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if result := m.machine.Tick(); result != nil {
			m.saveResult(result)
			m.statusLine = fmt.Sprintf("집중 완료! %s 저장됨 · 휴식을 시작하세요",
				aggregate.FormatDuration(result.DurationSeconds))
		}
		if m.exiting {
			return m, nil
		}
		return m, tickOnce()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		m.machine.Toggle()
		m.statusLine = ""
		return m, nil

	case "s", "S":
		// Stop and save whatever has been counted
		if result := m.machine.Stop(); result != nil {
			m.saveResult(result)
			m.statusLine = fmt.Sprintf("기록 완료: %s", aggregate.FormatDuration(result.DurationSeconds))
		} else if m.machine.HasProgress() || m.machine.Elapsed() > 0 {
			m.statusLine = "최소 1분 이상 측정해야 기록이 저장됩니다"
		}
		m.machine.Reset()
		return m, nil

	case "r", "R":
		m.machine.Reset()
		m.statusLine = ""
		return m, nil

	case "tab":
		// Mode switch only when nothing would be lost
		if m.machine.Running() || m.machine.HasProgress() {
			m.statusLine = "타이머가 실행 중일 때는 모드를 변경할 수 없습니다"
			return m, nil
		}
		if m.mode == models.TimerStopwatch {
			m.mode = models.TimerPomodoro
			m.machine = timer.NewPomodoro(m.settings())
		} else {
			m.mode = models.TimerStopwatch
			m.machine = timer.NewStopwatch()
		}
		return m, nil

	case "left", "h":
		if !m.machine.Running() && len(m.profile.Subjects) > 0 {
			m.subjectIndex = (m.subjectIndex + len(m.profile.Subjects) - 1) % len(m.profile.Subjects)
		}
		return m, nil

	case "right", "l":
		if !m.machine.Running() && len(m.profile.Subjects) > 0 {
			m.subjectIndex = (m.subjectIndex + 1) % len(m.profile.Subjects)
		}
		return m, nil

	case "ctrl+c", "esc", "q":
		// Counted time below the save floor is dropped silently
		if result := m.machine.Stop(); result != nil {
			m.saveResult(result)
		}
		m.exiting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *TimerModel) saveResult(result *timer.Result) {
	_, err := db.SaveSession(m.profile.ID, m.currentSubject(), result.TimerType, result.DurationSeconds)
	if err != nil {
		m.saveErr = err
		return
	}
	m.savedSeconds += result.DurationSeconds
	m.savedCount++
}

func (m TimerModel) currentSubject() string {
	if len(m.profile.Subjects) == 0 {
		return ""
	}
	return m.profile.Subjects[m.subjectIndex]
}

func (m TimerModel) settings() timer.Settings {
	return pomodoroSettings(m.profile)
}

func pomodoroSettings(profile *models.UserProfile) timer.Settings {
	return timer.Settings{
		FocusMinutes:      profile.FocusMinutes,
		ShortBreakMinutes: profile.ShortBreakMinutes,
		LongBreakMinutes:  profile.LongBreakMinutes,
	}
}

func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	headerText := "⏱  스톱워치"
	if m.mode == models.TimerPomodoro {
		headerText = "🍅  뽀모도로"
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(headerText))

	subjectStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, subjectStyle.Render(m.renderSubjectRow()))

	components = append(components, m.renderClock())

	if m.mode == models.TimerPomodoro {
		components = append(components, m.renderPomodoroStatus())
	}

	if m.statusLine != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, statusStyle.Render(m.statusLine))
	}
	if m.saveErr != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, errStyle.Render(fmt.Sprintf("저장 실패: %v", m.saveErr)))
	}

	content := strings.Join(components, "\n\n")

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelpBar())
}

func (m TimerModel) renderSubjectRow() string {
	if len(m.profile.Subjects) == 0 {
		return "과목 없음"
	}
	parts := make([]string, len(m.profile.Subjects))
	for i, subject := range m.profile.Subjects {
		if i == m.subjectIndex {
			parts[i] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorAccentBright)).
				Bold(true).
				Render("[" + subject + "]")
		} else {
			parts[i] = subject
		}
	}
	return strings.Join(parts, "  ")
}

func (m TimerModel) renderClock() string {
	seconds := m.machine.Elapsed()
	if m.mode == models.TimerPomodoro {
		seconds = m.machine.Remaining()
	}

	clockColor := ColorPrimaryText
	if m.machine.Running() {
		clockColor = ColorAccentBright
	}
	if m.mode == models.TimerPomodoro && m.machine.Mode() != timer.ModeFocus {
		clockColor = ColorBreak
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(clockColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(renderBigClock(aggregate.FormatClock(seconds)))
}

// renderPomodoroStatus draws the interval progress bar and cycle dots
func (m TimerModel) renderPomodoroStatus() string {
	interval := m.machine.Interval()
	done := interval - m.machine.Remaining()

	barWidth := 32
	filled := 0
	if interval > 0 {
		filled = done * barWidth / interval
	}
	barColor := ColorAccentMain
	modeLabel := "집중"
	switch m.machine.Mode() {
	case timer.ModeShortBreak:
		barColor = ColorBreak
		modeLabel = "짧은 휴식"
	case timer.ModeLongBreak:
		barColor = ColorBreak
		modeLabel = "긴 휴식"
	}

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(barColor)).
		Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).
			Render(strings.Repeat("░", barWidth-filled))

	dots := make([]string, timer.PomodorosUntilLongBreak)
	for i := range dots {
		if i < m.machine.Cycle()%timer.PomodorosUntilLongBreak ||
			(m.machine.Cycle() > 0 && m.machine.Cycle()%timer.PomodorosUntilLongBreak == 0) {
			dots[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("○")
		}
	}

	line := fmt.Sprintf("%s  %s  %s", modeLabel, bar, strings.Join(dots, " "))
	return lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width).Render(line)
}

func (m TimerModel) renderHelpBar() string {
	action := "시작"
	if m.machine.Running() {
		action = "일시정지"
	}
	help := fmt.Sprintf("space %s · s 저장 · r 초기화 · tab 모드 · ←/→ 과목 · q 종료", action)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Align(lipgloss.Center).
		Width(m.width).
		Render(help)
}

// renderBigClock blows the clock string up to a block-digit banner.
func renderBigClock(clock string) string {
	font := map[rune][3]string{
		'0': {"█▀█", "█ █", "▀▀▀"},
		'1': {" █ ", " █ ", " ▀ "},
		'2': {"▀▀█", "█▀▀", "▀▀▀"},
		'3': {"▀▀█", " ▀█", "▀▀▀"},
		'4': {"█ █", "▀▀█", "  ▀"},
		'5': {"█▀▀", "▀▀█", "▀▀▀"},
		'6': {"█▀▀", "█▀█", "▀▀▀"},
		'7': {"▀▀█", "  █", "  ▀"},
		'8': {"█▀█", "█▀█", "▀▀▀"},
		'9': {"█▀█", "▀▀█", "▀▀▀"},
		':': {" ▄ ", " ▄ ", "   "},
	}

	var rows [3]strings.Builder
	for _, r := range clock {
		glyph, ok := font[r]
		if !ok {
			continue
		}
		for i := 0; i < 3; i++ {
			rows[i].WriteString(glyph[i])
			rows[i].WriteString(" ")
		}
	}
	return rows[0].String() + "\n" + rows[1].String() + "\n" + rows[2].String()
}
