package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		task, err := resolveTask(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		appState.DeleteTask(cmd.Context(), task.ID)

		// The optimistic removal is rolled back when the backend refuses
		// the delete, so report from the current state
		for _, t := range appState.Tasks() {
			if t.ID == task.ID {
				fmt.Printf("❌ Could not delete task: %s\n", task.Title)
				return
			}
		}
		fmt.Printf("🗑  Deleted task: %s\n", task.Title)
	}),
}
