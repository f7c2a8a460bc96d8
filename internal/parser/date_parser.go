package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format stored on tasks
const DateLayout = "2006-01-02"

// ClockLayout is the clock time format stored on tasks
const ClockLayout = "15:04"

// ParseDate parses various due date formats into a task date string
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2026")
// - yyyy-mm-dd (e.g., "2026-12-15")
// - "today", "tomorrow"
// - X days (e.g., "3 days", "1 day")
// - X weeks (e.g., "2 weeks", "1 week")
func ParseDate(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "today":
		return time.Now().Format(DateLayout), nil
	case "tomorrow":
		return time.Now().AddDate(0, 0, 1).Format(DateLayout), nil
	}

	// Try dd/mm/yyyy format first
	if date, err := parseDateFormat(input); err == nil {
		return date, nil
	}

	// Already in stored form
	if parsed, err := time.ParseInLocation(DateLayout, input, time.Local); err == nil {
		return parsed.Format(DateLayout), nil
	}

	// Try relative formats
	if date, err := parseRelativeDate(input); err == nil {
		return date, nil
	}

	return "", fmt.Errorf("invalid date format. Use: dd/mm/yyyy, yyyy-mm-dd, today, tomorrow, X days, or X weeks")
}

// ParseClock validates an HH:MM clock time
func ParseClock(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	input = strings.TrimSpace(input)
	parsed, err := time.Parse(ClockLayout, input)
	if err != nil {
		return "", fmt.Errorf("invalid time format. Use: HH:MM (24-hour)")
	}
	return parsed.Format(ClockLayout), nil
}

// parseDateFormat parses dd/mm/yyyy format
func parseDateFormat(input string) (string, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return "", fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	// Validate date ranges
	if day < 1 || day > 31 {
		return "", fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return "", fmt.Errorf("month must be between 1 and 12")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return "", fmt.Errorf("invalid date")
	}

	return date.Format(DateLayout), nil
}

// parseRelativeDate parses relative formats like "3 days", "2 weeks"
func parseRelativeDate(input string) (string, error) {
	input = strings.ToLower(input)

	relativeRegex := regexp.MustCompile(`^(\d+)\s*(day|days|week|weeks)$`)
	matches := relativeRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return "", fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return "", fmt.Errorf("invalid number")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch matches[2] {
	case "day", "days":
		if amount < 1 || amount > 365 {
			return "", fmt.Errorf("days must be between 1 and 365")
		}
		return today.AddDate(0, 0, amount).Format(DateLayout), nil

	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return "", fmt.Errorf("weeks must be between 1 and 52")
		}
		return today.AddDate(0, 0, amount*7).Format(DateLayout), nil

	default:
		return "", fmt.Errorf("unsupported time unit")
	}
}

// DeriveStatus classifies a new task by its date relative to now:
// past dates are late, today's date or no date is today, future dates
// are upcoming. Only used at creation time; toggling owns the status
// afterwards.
func DeriveStatus(date string, now time.Time) string {
	if date == "" {
		return "today"
	}
	parsed, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return "today"
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case parsed.Before(today):
		return "late"
	case parsed.After(today):
		return "upcoming"
	default:
		return "today"
	}
}

// FormatDate formats a task date for display
func FormatDate(date string) string {
	if date == "" {
		return ""
	}

	parsed, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return date
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	daysDiff := int(parsed.Sub(today).Hours() / 24)

	dateStr := parsed.Format("02/01/2006")

	if daysDiff < 0 {
		return fmt.Sprintf("⚠️ OVERDUE (%s)", dateStr)
	} else if daysDiff == 0 {
		return fmt.Sprintf("🔥 Due today (%s)", dateStr)
	} else if daysDiff == 1 {
		return fmt.Sprintf("📅 Due tomorrow (%s)", dateStr)
	} else if daysDiff <= 7 {
		return fmt.Sprintf("📅 Due %s (in %d days)", dateStr, daysDiff)
	}
	return fmt.Sprintf("📅 Due %s", dateStr)
}
