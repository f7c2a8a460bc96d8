package tui

// Color constants for the listo TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#10192E" // Dark blue
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorPlaceholder   = "#B1B8C7" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (app primary blue)
	ColorAccentMain   = "#5B9EF8" // Accent elements, active borders
	ColorAccentBright = "#8FBCFA" // Hover, highlights, current step

	// Section Colors
	ColorLate = "#FF5757" // Late section header
	ColorDone = "#8E8E93" // Done section header

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
)
