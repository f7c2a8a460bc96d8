package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/listo/internal/models"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Toggle a task between done and today",
	Long: `Toggle a task's completed state.

Completing a task sets its status to done; un-completing always returns
it to today, whatever its status was before.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		task, err := resolveTask(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		appState.ToggleTask(cmd.Context(), task.ID)

		for _, t := range appState.Tasks() {
			if t.ID == task.ID {
				if t.Completed {
					fmt.Printf("✅ Marked task as done: %s\n", t.Title)
				} else {
					fmt.Printf("↩️  Marked task back to today: %s\n", t.Title)
				}
				return
			}
		}
	}),
}

// resolveTask finds a task by full id or unique prefix (ls shows
// truncated ids)
func resolveTask(id string) (models.Task, error) {
	var matches []models.Task
	for _, t := range appState.Tasks() {
		if t.ID == id {
			return t, nil
		}
		if strings.HasPrefix(t.ID, id) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Task{}, fmt.Errorf("task '%s' not found", id)
	default:
		return models.Task{}, fmt.Errorf("task id '%s' is ambiguous (%d matches)", id, len(matches))
	}
}
