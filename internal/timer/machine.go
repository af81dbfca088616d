package timer

import "time"

// Mode is what the timer is currently counting.
type Mode string

const (
	ModeStopwatch  Mode = "stopwatch"
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
)

// PomodorosUntilLongBreak is how many focus intervals earn a long break.
const PomodorosUntilLongBreak = 4

// MinSessionSeconds is the shortest stretch worth recording. Anything
// under a minute is discarded, never saved.
const MinSessionSeconds = 60

// Settings are the pomodoro interval lengths in minutes.
type Settings struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
}

// DefaultSettings is the classic 25/5/15 split.
var DefaultSettings = Settings{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 15}

// Result is emitted when the machine decides a study session should be
// recorded.
type Result struct {
	DurationSeconds int
	TimerType       string // models.TimerStopwatch or models.TimerPomodoro
}

// Machine is the stopwatch/pomodoro engine. It is advanced one second at a
// time by Tick and is otherwise inert; the caller owns the wall clock.
type Machine struct {
	mode     Mode
	settings Settings
	running  bool

	// Stopwatch: seconds counted up. Pomodoro: seconds remaining.
	elapsed   int
	remaining int
	cycle     int // completed focus intervals
}

// NewStopwatch returns a machine counting up from zero.
func NewStopwatch() *Machine {
	return &Machine{mode: ModeStopwatch}
}

// NewPomodoro returns a machine in focus mode with the full focus interval
// remaining.
func NewPomodoro(settings Settings) *Machine {
	if settings.FocusMinutes <= 0 {
		settings = DefaultSettings
	}
	return &Machine{
		mode:      ModeFocus,
		settings:  settings,
		remaining: settings.FocusMinutes * 60,
	}
}

func (m *Machine) Mode() Mode     { return m.mode }
func (m *Machine) Running() bool  { return m.running }
func (m *Machine) Cycle() int     { return m.cycle }
func (m *Machine) Elapsed() int   { return m.elapsed }
func (m *Machine) Remaining() int { return m.remaining }

// Interval returns the full length in seconds of the current pomodoro
// interval. Zero for a stopwatch.
func (m *Machine) Interval() int {
	switch m.mode {
	case ModeFocus:
		return m.settings.FocusMinutes * 60
	case ModeShortBreak:
		return m.settings.ShortBreakMinutes * 60
	case ModeLongBreak:
		return m.settings.LongBreakMinutes * 60
	}
	return 0
}

// Toggle starts or pauses the machine.
func (m *Machine) Toggle() { m.running = !m.running }

// Tick advances the machine by one second. When a pomodoro focus interval
// runs out it returns the session to record and rolls into the next break;
// every PomodorosUntilLongBreak-th focus earns the long break. Breaks
// produce no session. A paused machine ignores ticks.
func (m *Machine) Tick() *Result {
	if !m.running {
		return nil
	}

	if m.mode == ModeStopwatch {
		m.elapsed++
		return nil
	}

	if m.remaining > 1 {
		m.remaining--
		return nil
	}
	m.remaining = 0
	return m.finishInterval()
}

func (m *Machine) finishInterval() *Result {
	m.running = false

	if m.mode != ModeFocus {
		// Break over, back to focus.
		m.mode = ModeFocus
		m.remaining = m.settings.FocusMinutes * 60
		return nil
	}

	m.cycle++
	result := &Result{
		DurationSeconds: m.settings.FocusMinutes * 60,
		TimerType:       "pomodoro",
	}

	if m.cycle%PomodorosUntilLongBreak == 0 {
		m.mode = ModeLongBreak
		m.remaining = m.settings.LongBreakMinutes * 60
	} else {
		m.mode = ModeShortBreak
		m.remaining = m.settings.ShortBreakMinutes * 60
	}
	return result
}

// Stop halts the machine and returns the session to record, if the elapsed
// time clears the one-minute floor. For a pomodoro machine the elapsed
// focus time is whatever has been counted off the current focus interval;
// stopping during a break records nothing.
func (m *Machine) Stop() *Result {
	m.running = false

	switch m.mode {
	case ModeStopwatch:
		if m.elapsed < MinSessionSeconds {
			return nil
		}
		return &Result{DurationSeconds: m.elapsed, TimerType: "stopwatch"}
	case ModeFocus:
		elapsed := m.settings.FocusMinutes*60 - m.remaining
		if elapsed < MinSessionSeconds {
			return nil
		}
		return &Result{DurationSeconds: elapsed, TimerType: "pomodoro"}
	}
	return nil
}

// Reset puts the machine back to its initial state, keeping its mode family
// and settings.
func (m *Machine) Reset() {
	m.running = false
	m.elapsed = 0
	m.cycle = 0
	if m.mode != ModeStopwatch {
		m.mode = ModeFocus
		m.remaining = m.settings.FocusMinutes * 60
	}
}

// HasProgress reports whether stopping now would lose counted time.
func (m *Machine) HasProgress() bool {
	if m.mode == ModeStopwatch {
		return m.elapsed > 0
	}
	return m.mode == ModeFocus && m.remaining < m.settings.FocusMinutes*60
}

// NextBreak tells the UI what follows the current focus interval.
func (m *Machine) NextBreak() (Mode, time.Duration) {
	if (m.cycle+1)%PomodorosUntilLongBreak == 0 {
		return ModeLongBreak, time.Duration(m.settings.LongBreakMinutes) * time.Minute
	}
	return ModeShortBreak, time.Duration(m.settings.ShortBreakMinutes) * time.Minute
}
