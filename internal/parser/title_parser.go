package parser

import (
	"regexp"
	"strings"
)

// ParsedTask represents a task parsed from natural language
type ParsedTask struct {
	Title    string
	Category string
	Date     string
	Time     string
	Errors   []string
}

// ParseTitle extracts metadata from a task title using natural syntax
// Syntax: "Task title @category due:tomorrow at:16:00"
func ParseTitle(input string) ParsedTask {
	result := ParsedTask{
		Title:  input,
		Errors: []string{},
	}

	// Extract category (@category-id)
	categoryRegex := regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
	categoryMatches := categoryRegex.FindStringSubmatch(input)
	if len(categoryMatches) > 1 {
		result.Category = categoryMatches[1]
		// Remove from title
		input = categoryRegex.ReplaceAllString(input, "")
	}

	// Extract time before the date so "due:" never swallows "at:"
	// (at:16:00)
	timeRegex := regexp.MustCompile(`at:(\d{1,2}:\d{2})`)
	timeMatches := timeRegex.FindStringSubmatch(input)
	if len(timeMatches) > 1 {
		clock, err := ParseClock(timeMatches[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid time '"+timeMatches[1]+"': "+err.Error())
		} else {
			result.Time = clock
		}
		// Remove from title
		input = timeRegex.ReplaceAllString(input, "")
	}

	// Extract due date (due:tomorrow, due:15/12/2026, due:3days, etc.)
	dueRegex := regexp.MustCompile(`due:([^\s]+)`)
	dueMatches := dueRegex.FindStringSubmatch(input)
	if len(dueMatches) > 1 {
		date, err := ParseDate(dueMatches[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+dueMatches[1]+"': "+err.Error())
		} else {
			result.Date = date
		}
		// Remove from title
		input = dueRegex.ReplaceAllString(input, "")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.Join(strings.Fields(input), " ")
	result.Title = strings.TrimSpace(result.Title)

	return result
}
