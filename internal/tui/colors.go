package tui

// Color constants for the studymate TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (labels, titles, clock)
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (amber, the app's signature color)
	ColorAccentMain   = "#FF8F00" // Headers, active elements, selection
	ColorAccentBright = "#FFC107" // Highlights, top ranks

	// Study-intensity background bands, light to saturated
	ColorStudyFaint  = "#4A3000"
	ColorStudyLight  = "#7A4F00"
	ColorStudyMedium = "#B36F00"
	ColorStudyFull   = "#FF8F00"

	// Schedule dot colors by item kind
	ColorDotPersonal = "#42A5F5" // personal assignment
	ColorDotGroup    = "#66BB6A" // group schedule
	ColorDotDeadline = "#EF5350" // deadline

	// State Colors
	ColorError   = "#EF4444" // Errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorBreak   = "#4CAF50" // Pomodoro break mode
)
