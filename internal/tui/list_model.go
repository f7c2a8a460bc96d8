package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/listo/internal/models"
	"github.com/balkashynov/listo/internal/state"
)

// ListModel represents the TUI model for browsing tasks per category
type ListModel struct {
	st     *state.Manager
	width  int
	height int

	// Current view
	categories    []models.CategoryView
	categoryIndex int
	tasks         []models.Task // flattened in section order
	selectedTask  int
}

// NewListModel creates a new list TUI model starting on categoryID
func NewListModel(st *state.Manager, categoryID string) ListModel {
	m := ListModel{st: st}
	m.reload()
	for i, c := range m.categories {
		if c.ID == categoryID {
			m.categoryIndex = i
			break
		}
	}
	m.reloadTasks()
	return m
}

// reload refreshes the category list from the state manager
func (m *ListModel) reload() {
	m.categories = m.st.Categories()
	if m.categoryIndex >= len(m.categories) {
		m.categoryIndex = 0
	}
}

// reloadTasks re-derives the flattened task list in section order
func (m *ListModel) reloadTasks() {
	categoryID := models.AllCategoryID
	if len(m.categories) > 0 {
		categoryID = m.categories[m.categoryIndex].ID
	}
	buckets := models.BucketTasks(m.st.TasksByCategory(categoryID))
	m.tasks = m.tasks[:0]
	m.tasks = append(m.tasks, buckets.Late...)
	m.tasks = append(m.tasks, buckets.Today...)
	m.tasks = append(m.tasks, buckets.Done...)
	if m.selectedTask >= len(m.tasks) {
		m.selectedTask = len(m.tasks) - 1
	}
	if m.selectedTask < 0 {
		m.selectedTask = 0
	}
}

// Init initializes the model
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.selectedTask > 0 {
				m.selectedTask--
			}
			return m, nil

		case "down", "j":
			if m.selectedTask < len(m.tasks)-1 {
				m.selectedTask++
			}
			return m, nil

		case "left", "h", "shift+tab":
			m.categoryIndex--
			if m.categoryIndex < 0 {
				m.categoryIndex = len(m.categories) - 1
			}
			m.selectedTask = 0
			m.reloadTasks()
			return m, nil

		case "right", "l", "tab":
			m.categoryIndex++
			if m.categoryIndex >= len(m.categories) {
				m.categoryIndex = 0
			}
			m.selectedTask = 0
			m.reloadTasks()
			return m, nil

		case " ", "enter":
			if m.selectedTask < len(m.tasks) {
				m.st.ToggleTask(context.Background(), m.tasks[m.selectedTask].ID)
				m.reload()
				m.reloadTasks()
			}
			return m, nil

		case "d", "x":
			if m.selectedTask < len(m.tasks) {
				m.st.DeleteTask(context.Background(), m.tasks[m.selectedTask].ID)
				m.reload()
				m.reloadTasks()
			}
			return m, nil

		case "r":
			m.st.FetchTasks(context.Background())
			m.st.FetchCategories(context.Background())
			m.reload()
			m.reloadTasks()
			return m, nil
		}
	}

	return m, nil
}

// View renders the category tabs and the sectioned task list
func (m ListModel) View() string {
	var b strings.Builder

	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	categoryID := models.AllCategoryID
	if len(m.categories) > 0 {
		categoryID = m.categories[m.categoryIndex].ID
	}
	buckets := models.BucketTasks(m.st.TasksByCategory(categoryID))

	row := 0
	b.WriteString(m.sectionView("Late", buckets.Late, ColorLate, &row))
	b.WriteString(m.sectionView("Today", buckets.Today, ColorPrimaryText, &row))
	b.WriteString(m.sectionView("Done", buckets.Done, ColorDone, &row))

	if len(m.tasks) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		b.WriteString(empty.Render("No tasks in this list."))
		b.WriteString("\n")
	}

	help := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString("\n")
	b.WriteString(help.Render("↑/↓ navigate • ←/→ category • space toggle • d delete • r refresh • q quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// tabsView renders one tab per category with its live count
func (m ListModel) tabsView() string {
	var tabs []string
	for i, c := range m.categories {
		label := fmt.Sprintf("%s (%d)", c.Name, c.TaskCount)
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
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

// sectionView renders one status bucket, tracking the global row index so
// the selection cursor spans sections
func (m ListModel) sectionView(title string, tasks []models.Task, color string, row *int) string {
	if len(tasks) == 0 {
		return ""
	}

	header := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorCardBackground)).
		Bold(true)
	normal := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	var b strings.Builder
	b.WriteString(header.Render(fmt.Sprintf("%s (%d)", title, len(tasks))))
	b.WriteString("\n")

	for _, task := range tasks {
		mark := "○"
		if task.Completed {
			mark = "●"
		}
		line := fmt.Sprintf("%s %s", mark, task.Title)
		if task.Date != "" {
			line += muted.Render("  " + task.Date)
		}
		if task.Time != "" {
			line += muted.Render(" " + task.Time)
		}

		if *row == m.selectedTask {
			b.WriteString(selected.Render("▸ " + line))
		} else {
			b.WriteString(normal.Render("  " + line))
		}
		b.WriteString("\n")
		*row++
	}

	b.WriteString("\n")
	return b.String()
}
