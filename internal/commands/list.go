package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/balkashynov/listo/internal/models"
	"github.com/balkashynov/listo/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls [category]",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long: `List tasks grouped into late, today and done sections.

Pass a category id to show only that list, or run without arguments for
all tasks. Use -i for the interactive UI.`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		categoryID := models.AllCategoryID
		if len(args) > 0 {
			categoryID = args[0]
		}

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			if err := tui.RunListTUI(appState, categoryID); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		tasks := appState.TasksByCategory(categoryID)
		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'listo add \"task title\"' to create your first task.")
			return
		}

		buckets := models.BucketTasks(tasks)
		renderSection("Late", buckets.Late, text.FgHiRed)
		renderSection("Today", buckets.Today, text.FgHiWhite)
		renderSection("Done", buckets.Done, text.FgHiBlack)
	}),
}

// renderSection prints one status bucket as a table, skipping empty ones
func renderSection(title string, tasks []models.Task, color text.Color) {
	if len(tasks) == 0 {
		return
	}

	fmt.Println(color.Sprintf("%s (%d)", title, len(tasks)))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("ID"),
		text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
		text.FgGreen.Sprintf("Category"),
		text.FgGreen.Sprintf("Due"),
		text.FgGreen.Sprintf("Time"),
	})

	for _, task := range tasks {
		mark := " "
		if task.Completed {
			mark = "✓"
		}
		t.AppendRow(table.Row{
			shortID(task.ID),
			fmt.Sprintf("%s %s", mark, task.Title),
			task.Category,
			task.Date,
			task.Time,
		})
	}

	t.Render()
	fmt.Println()
}

// shortID truncates server ids for display; full ids still work everywhere
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	listCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
}
