package parser

import (
	"testing"
	"time"
)

func TestParseTitle(t *testing.T) {
	result := ParseTitle("Practice piano @music due:15/12/2026 at:16:00")

	if result.Title != "Practice piano" {
		t.Errorf("title = %q", result.Title)
	}
	if result.Category != "music" {
		t.Errorf("category = %q", result.Category)
	}
	if result.Date != "2026-12-15" {
		t.Errorf("date = %q", result.Date)
	}
	if result.Time != "16:00" {
		t.Errorf("time = %q", result.Time)
	}
	if len(result.Errors) != 0 {
		t.Errorf("errors = %v", result.Errors)
	}
}

func TestParseTitlePlain(t *testing.T) {
	result := ParseTitle("Buy milk")
	if result.Title != "Buy milk" || result.Category != "" || result.Date != "" || result.Time != "" {
		t.Errorf("plain title parsed as %+v", result)
	}
}

func TestParseTitleRelativeDue(t *testing.T) {
	result := ParseTitle("Call Max due:tomorrow")
	if result.Title != "Call Max" {
		t.Errorf("title = %q", result.Title)
	}
	if want := time.Now().AddDate(0, 0, 1).Format(DateLayout); result.Date != want {
		t.Errorf("date = %q, want %q", result.Date, want)
	}
}

func TestParseTitleCollectsErrors(t *testing.T) {
	result := ParseTitle("Fix it due:whenever at:99:99")
	if len(result.Errors) != 2 {
		t.Fatalf("errors = %v, want 2 entries", result.Errors)
	}
	if result.Title != "Fix it" {
		t.Errorf("title = %q, bad tokens should still be stripped", result.Title)
	}
}
