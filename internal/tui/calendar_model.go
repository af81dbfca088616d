package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jaehyuklee/studymate/internal/aggregate"
	"github.com/jaehyuklee/studymate/internal/db"
	"github.com/jaehyuklee/studymate/internal/models"
)

var weekdayHeader = []string{"일", "월", "화", "수", "목", "금", "토"}

// calendarKeyMap binds the calendar navigation keys.
type calendarKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Quit      key.Binding
}

func (k calendarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.PrevMonth, k.NextMonth, k.Today, k.Quit}
}

func (k calendarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Today, k.Quit},
	}
}

var calendarKeys = calendarKeyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "이전 날")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "다음 날")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "지난 주")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "다음 주")),
	PrevMonth: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("[", "이전 달")),
	NextMonth: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("]", "다음 달")),
	Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "오늘")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "종료")),
}

// sessionSnapshotMsg carries a full month result set from the watch stream.
// Snapshots are keyed by month so stale deliveries for a month the user has
// navigated away from are dropped.
type sessionSnapshotMsg struct {
	year     int
	month    time.Month
	sessions []models.StudySession
	open     bool
}

// scheduleLoadedMsg carries the merged schedule sources for one month.
type scheduleLoadedMsg struct {
	year  int
	month time.Month
	items map[string][]aggregate.ScheduleItem
	err   error
}

// CalendarModel is the month view: study-intensity marks, schedule dots,
// and a per-day detail pane.
type CalendarModel struct {
	width  int
	height int

	profile  *models.UserProfile
	selected time.Time // the selected calendar day
	year     int
	month    time.Month

	daily map[string]*aggregate.DailyAggregate
	items map[string][]aggregate.ScheduleItem

	watchCancel context.CancelFunc
	snapshots   <-chan []models.StudySession

	keys calendarKeyMap
	help help.Model
	err  error
}

// NewCalendarModel opens the calendar on today.
func NewCalendarModel(profile *models.UserProfile) CalendarModel {
	now := time.Now()
	m := CalendarModel{
		profile:  profile,
		selected: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
		year:     now.Year(),
		month:    now.Month(),
		daily:    map[string]*aggregate.DailyAggregate{},
		items:    map[string][]aggregate.ScheduleItem{},
		keys:     calendarKeys,
		help:     help.New(),
	}
	return m.startWatch()
}

func (m CalendarModel) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(m.snapshots, m.year, m.month),
		loadSchedules(m.profile.ID, m.year, m.month),
	)
}

// startWatch (re)opens the session watch for the month in view.
func (m CalendarModel) startWatch() CalendarModel {
	if m.watchCancel != nil {
		m.watchCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.watchCancel = cancel
	m.snapshots = db.WatchMonthSessions(ctx, m.profile.ID, m.year, m.month)
	return m
}

func waitForSnapshot(ch <-chan []models.StudySession, year int, month time.Month) tea.Cmd {
	return func() tea.Msg {
		sessions, open := <-ch
		return sessionSnapshotMsg{year: year, month: month, sessions: sessions, open: open}
	}
}

func loadSchedules(ownerID string, year int, month time.Month) tea.Cmd {
	return func() tea.Msg {
		msg := scheduleLoadedMsg{year: year, month: month}

		assignments, err := db.AssignmentsInMonth(ownerID, year, month)
		if err != nil {
			msg.err = err
			return msg
		}
		deadlines, err := db.DeadlinesInMonth(ownerID, year, month)
		if err != nil {
			msg.err = err
			return msg
		}
		groupSchedules, groupNames, err := db.SchedulesForMember(ownerID)
		if err != nil {
			msg.err = err
			return msg
		}

		monthPrefix := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Format("2006-01")

		personal := make([]aggregate.ScheduleItem, 0, len(assignments))
		for _, a := range assignments {
			personal = append(personal, aggregate.ScheduleItem{
				ID: a.ID, Title: a.Title, Date: a.Date, Description: a.Description,
			})
		}
		group := make([]aggregate.ScheduleItem, 0, len(groupSchedules))
		for _, s := range groupSchedules {
			if !strings.HasPrefix(s.Date, monthPrefix) {
				continue
			}
			group = append(group, aggregate.ScheduleItem{
				ID: s.ID, Title: s.Title, Date: s.Date,
				GroupName: groupNames[s.GroupID], Time: s.Time,
			})
		}
		due := make([]aggregate.ScheduleItem, 0, len(deadlines))
		for _, d := range deadlines {
			due = append(due, aggregate.ScheduleItem{
				ID: d.ID, Title: d.Title, Date: d.Date, Time: d.Time,
			})
		}

		msg.items = aggregate.MergeSchedules(personal, group, due)
		return msg
	}
}

func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionSnapshotMsg:
		if !msg.open {
			return m, nil
		}
		// Drop snapshots for a month no longer in view
		if msg.year != m.year || msg.month != m.month {
			return m, nil
		}
		m.daily = aggregate.ByDay(msg.sessions)
		return m, waitForSnapshot(m.snapshots, m.year, m.month)

	case scheduleLoadedMsg:
		if msg.year != m.year || msg.month != m.month {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.items = msg.items
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.watchCancel != nil {
				m.watchCancel()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			return m.moveSelection(-1)
		case key.Matches(msg, m.keys.Right):
			return m.moveSelection(1)
		case key.Matches(msg, m.keys.Up):
			return m.moveSelection(-7)
		case key.Matches(msg, m.keys.Down):
			return m.moveSelection(7)
		case key.Matches(msg, m.keys.PrevMonth):
			return m.moveMonth(-1)
		case key.Matches(msg, m.keys.NextMonth):
			return m.moveMonth(1)
		case key.Matches(msg, m.keys.Today):
			now := time.Now()
			m.selected = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
			return m.syncMonth()
		}
	}

	return m, nil
}

func (m CalendarModel) moveSelection(days int) (tea.Model, tea.Cmd) {
	m.selected = m.selected.AddDate(0, 0, days)
	return m.syncMonth()
}

func (m CalendarModel) moveMonth(months int) (tea.Model, tea.Cmd) {
	m.selected = m.selected.AddDate(0, months, 0)
	return m.syncMonth()
}

// syncMonth follows the selection across month boundaries, restarting the
// month watch when the visible month changes.
func (m CalendarModel) syncMonth() (tea.Model, tea.Cmd) {
	if m.selected.Year() == m.year && m.selected.Month() == m.month {
		return m, nil
	}
	m.year = m.selected.Year()
	m.month = m.selected.Month()
	m.daily = map[string]*aggregate.DailyAggregate{}
	m.items = map[string][]aggregate.ScheduleItem{}
	m = m.startWatch()
	return m, tea.Batch(
		waitForSnapshot(m.snapshots, m.year, m.month),
		loadSchedules(m.profile.ID, m.year, m.month),
	)
}

func (m CalendarModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	selectedKey := m.selected.Format(aggregate.DateKeyFormat)
	marks := aggregate.Marks(m.daily, m.items, selectedKey)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render(fmt.Sprintf("%d년 %d월", m.year, int(m.month)))

	grid := m.renderGrid(marks)
	detail := m.renderDetail(selectedKey)

	var sections []string
	sections = append(sections, title, grid, detail)
	if m.err != nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render(fmt.Sprintf("일정 로딩 실패: %v", m.err)))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CalendarModel) renderGrid(marks map[string]aggregate.DayMark) string {
	header := make([]string, len(weekdayHeader))
	for i, name := range weekdayHeader {
		header[i] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Width(5).
			Align(lipgloss.Center).
			Render(name)
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var cells []string
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, strings.Repeat(" ", 5))
	}
	for day := 1; day <= daysInMonth; day++ {
		key := time.Date(m.year, m.month, day, 0, 0, 0, 0, time.Local).Format(aggregate.DateKeyFormat)
		cells = append(cells, renderDayCell(day, marks[key]))
		if len(cells) == 7 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	if len(cells) > 0 {
		for len(cells) < 7 {
			cells = append(cells, strings.Repeat(" ", 5))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}

// renderDayCell draws one " 12• " cell with the intensity background, dot
// and selection styling from the mark.
func renderDayCell(day int, mark aggregate.DayMark) string {
	dot := " "
	if mark.HasScheduleDot {
		dot = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dotColor(mark.DotKind))).
			Render("•")
	}

	style := lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	if mark.HasStudy {
		style = style.Background(lipgloss.Color(studyBand(mark.BackgroundOpacity)))
	}
	if mark.Selected {
		style = style.Reverse(true).Bold(true)
	}

	return style.Render(fmt.Sprintf("%2d%s", day, dot))
}

// studyBand maps the continuous opacity onto the four theme shades.
func studyBand(opacity float64) string {
	switch {
	case opacity >= 1.0:
		return ColorStudyFull
	case opacity >= 0.6:
		return ColorStudyMedium
	case opacity >= 0.4:
		return ColorStudyLight
	default:
		return ColorStudyFaint
	}
}

func dotColor(kind string) string {
	switch kind {
	case aggregate.KindDeadline:
		return ColorDotDeadline
	case aggregate.KindPersonal:
		return ColorDotPersonal
	case aggregate.KindGroup:
		return ColorDotGroup
	}
	return ColorSecondaryText
}

func (m CalendarModel) renderDetail(selectedKey string) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	var lines []string
	lines = append(lines, labelStyle.Render(selectedKey))

	if agg, ok := m.daily[selectedKey]; ok && agg.TotalSeconds > 0 {
		lines = append(lines, textStyle.Render("공부 시간: "+aggregate.FormatDuration(agg.TotalSeconds)))

		subjects := make([]string, 0, len(agg.BySubject))
		for subject := range agg.BySubject {
			subjects = append(subjects, subject)
		}
		sort.Strings(subjects)
		for _, subject := range subjects {
			lines = append(lines, mutedStyle.Render(
				fmt.Sprintf("  %s  %s", subject, aggregate.FormatDuration(agg.BySubject[subject]))))
		}
	} else {
		lines = append(lines, mutedStyle.Render("공부 기록 없음"))
	}

	week := aggregate.Weekly(m.daily, selectedKey)
	lines = append(lines, textStyle.Render("이번 주: "+aggregate.FormatDuration(week.TotalSeconds)))

	if items := m.items[selectedKey]; len(items) > 0 {
		lines = append(lines, labelStyle.Render("일정"))
		for _, item := range items {
			marker := lipgloss.NewStyle().
				Foreground(lipgloss.Color(dotColor(item.Kind))).
				Render("•")
			line := fmt.Sprintf("%s %s", marker, item.Title)
			if item.GroupName != "" {
				line += mutedStyle.Render(" (" + item.GroupName + ")")
			}
			if item.Time != "" {
				line += mutedStyle.Render(" " + item.Time)
			}
			lines = append(lines, line)
		}
	}

	return lipgloss.NewStyle().
		MarginTop(1).
		Render(strings.Join(lines, "\n"))
}
