package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/listo/internal/state"
)

// RunAddTaskTUI starts the interactive add task form
func RunAddTaskTUI(st *state.Manager, prefilled map[string]string) error {
	model := NewAddTaskModel(st, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after the TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddTaskModel); ok {
		if m.cancelled {
			fmt.Println("❌ Task creation cancelled.")
		} else if m.completed {
			fmt.Printf("✅ New task \"%s\" added\n", m.createdTitle)
		}
	}

	return nil
}

// RunListTUI starts the interactive task list on the given category
func RunListTUI(st *state.Manager, categoryID string) error {
	model := NewListModel(st, categoryID)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
