package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/listo/internal/models"
	"github.com/balkashynov/listo/internal/parser"
	"github.com/balkashynov/listo/internal/state"
)

// Step represents the current step in the wizard
type Step int

const (
	StepTitle Step = iota
	StepCategory
	StepDueDate
	StepTime
	StepNotes
	StepComplete
)

// AddTaskModel represents the TUI model for adding tasks
type AddTaskModel struct {
	st          *state.Manager
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	// Category picker state
	categories    []models.CategoryView
	categoryIndex int

	// Task data
	title string
	date  string
	clock string
	notes string

	// State
	completed     bool
	cancelled     bool
	createdTitle  string
	validationErr string
}

// NewAddTaskModel creates a new add task TUI model
func NewAddTaskModel(st *state.Manager, prefilled map[string]string) AddTaskModel {
	inputs := make([]textinput.Model, 4)

	// Apply color theme to all inputs
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	// Title input
	inputs[0].Placeholder = "Enter task title... (required)"
	inputs[0].Focus()
	inputs[0].CharLimit = 200

	// Due date input
	inputs[1].Placeholder = "Due: dd/mm/yyyy, today, tomorrow, 3 days (Enter to skip)"
	inputs[1].CharLimit = 50

	// Time input
	inputs[2].Placeholder = "Time: HH:MM, sets a reminder (Enter to skip)"
	inputs[2].CharLimit = 5

	// Notes input
	inputs[3].Placeholder = "Additional notes (Enter to skip)"
	inputs[3].CharLimit = 500

	m := AddTaskModel{
		st:          st,
		currentStep: StepTitle,
		inputs:      inputs,
		categories:  st.Categories(),
	}

	if title, ok := prefilled["title"]; ok {
		m.inputs[0].SetValue(title)
	}
	if date, ok := prefilled["date"]; ok {
		m.inputs[1].SetValue(date)
	}
	if clock, ok := prefilled["time"]; ok {
		m.inputs[2].SetValue(clock)
	}
	if category, ok := prefilled["category"]; ok {
		for i, c := range m.categories {
			if c.ID == category {
				m.categoryIndex = i
				break
			}
		}
	}

	return m
}

// Init initializes the model
func (m AddTaskModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddTaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.advance()

		case "left", "right":
			if m.currentStep == StepCategory {
				if msg.String() == "left" {
					m.categoryIndex--
				} else {
					m.categoryIndex++
				}
				if m.categoryIndex < 0 {
					m.categoryIndex = len(m.categories) - 1
				}
				if m.categoryIndex >= len(m.categories) {
					m.categoryIndex = 0
				}
				return m, nil
			}
		}
	}

	// Forward everything else to the focused input
	if input := m.focusedInput(); input >= 0 {
		var cmd tea.Cmd
		m.inputs[input], cmd = m.inputs[input].Update(msg)
		return m, cmd
	}
	return m, nil
}

// advance validates the current step and moves to the next one
func (m AddTaskModel) advance() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case StepTitle:
		title := strings.TrimSpace(m.inputs[0].Value())
		if title == "" {
			m.validationErr = "Title is required"
			return m, nil
		}
		m.title = title
		m.inputs[0].Blur()
		m.currentStep = StepCategory

	case StepCategory:
		m.currentStep = StepDueDate
		m.inputs[1].Focus()
		return m, textinput.Blink

	case StepDueDate:
		date, err := parser.ParseDate(strings.TrimSpace(m.inputs[1].Value()))
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.date = date
		m.inputs[1].Blur()
		m.currentStep = StepTime
		m.inputs[2].Focus()
		return m, textinput.Blink

	case StepTime:
		clock, err := parser.ParseClock(strings.TrimSpace(m.inputs[2].Value()))
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.clock = clock
		m.inputs[2].Blur()
		m.currentStep = StepNotes
		m.inputs[3].Focus()
		return m, textinput.Blink

	case StepNotes:
		m.notes = strings.TrimSpace(m.inputs[3].Value())
		return m.save()
	}

	return m, nil
}

// save hands the draft to the state manager and quits
func (m AddTaskModel) save() (tea.Model, tea.Cmd) {
	category := models.AllCategoryID
	if len(m.categories) > 0 {
		category = m.categories[m.categoryIndex].ID
	}

	draft := models.Task{
		Title:     m.title,
		Date:      m.date,
		Time:      m.clock,
		Note:      m.notes,
		Category:  category,
		Completed: false,
		Status:    parser.DeriveStatus(m.date, time.Now()),
	}
	m.st.AddTask(context.Background(), draft)

	m.completed = true
	m.createdTitle = m.title
	m.currentStep = StepComplete
	return m, tea.Quit
}

func (m AddTaskModel) focusedInput() int {
	switch m.currentStep {
	case StepTitle:
		return 0
	case StepDueDate:
		return 1
	case StepTime:
		return 2
	case StepNotes:
		return 3
	default:
		return -1
	}
}

// View renders the wizard
func (m AddTaskModel) View() string {
	if m.currentStep == StepComplete {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))

	var b strings.Builder
	b.WriteString(labelStyle.Render("New task"))
	b.WriteString("\n\n")

	switch m.currentStep {
	case StepTitle:
		b.WriteString("Title\n")
		b.WriteString(m.inputs[0].View())
	case StepCategory:
		b.WriteString("Category  ")
		b.WriteString(helpStyle.Render("←/→ to choose, Enter to confirm"))
		b.WriteString("\n")
		b.WriteString(m.categoryView())
	case StepDueDate:
		b.WriteString("Due date\n")
		b.WriteString(m.inputs[1].View())
	case StepTime:
		b.WriteString("Time\n")
		b.WriteString(m.inputs[2].View())
	case StepNotes:
		b.WriteString("Notes\n")
		b.WriteString(m.inputs[3].View())
	}

	b.WriteString("\n")
	if m.validationErr != "" {
		b.WriteString(errorStyle.Render(m.validationErr))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Enter next • Esc cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// categoryView renders the category picker chips
func (m AddTaskModel) categoryView() string {
	var chips []string
	for i, c := range m.categories {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(ColorSecondaryText))
		if i == m.categoryIndex {
			color := c.Color
			if color == "" {
				color = ColorAccentMain
			}
			style = style.Foreground(lipgloss.Color(ColorPrimaryText)).
				Background(lipgloss.Color(color)).
				Bold(true)
		}
		chips = append(chips, style.Render(c.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}
