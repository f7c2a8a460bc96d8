package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// NormalizeHexColor normalizes display colors to uppercase #RRGGBB format
// Accepts formats like:
// - "#5b9ef8", "5B9EF8" -> "#5B9EF8"
// Returns error if format is invalid
func NormalizeHexColor(color string) (string, error) {
	if color == "" {
		return "", nil
	}

	color = strings.ToUpper(strings.TrimSpace(color))
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}

	colorRegex := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	if !colorRegex.MatchString(color) {
		return "", fmt.Errorf("invalid color format. Use: #RRGGBB")
	}

	return color, nil
}

// IsValidHexColor checks if a string is a #RRGGBB color
func IsValidHexColor(color string) bool {
	if color == "" {
		return true // Empty is valid (optional field)
	}
	_, err := NormalizeHexColor(color)
	return err == nil
}
