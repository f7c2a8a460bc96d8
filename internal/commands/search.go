package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/balkashynov/listo/internal/models"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search tasks by title and note",
	Long: `Search tasks with case-insensitive matching across title and note.

Combine with a category filter to narrow the scope.`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		query := strings.ToLower(args[0])
		categoryID, _ := cmd.Flags().GetString("category")
		if categoryID == "" {
			categoryID = models.AllCategoryID
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")

		var matches []models.Task
		for _, t := range appState.TasksByCategory(categoryID) {
			if strings.Contains(strings.ToLower(t.Title), query) ||
				strings.Contains(strings.ToLower(t.Note), query) {
				matches = append(matches, t)
			}
		}

		if jsonOutput {
			out, err := json.MarshalIndent(matches, "", "  ")
			if err != nil {
				fmt.Printf("Error encoding results: %v\n", err)
				return
			}
			fmt.Println(string(out))
			return
		}

		if len(matches) == 0 {
			fmt.Printf("No tasks matching '%s'\n", args[0])
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"),
			text.FgGreen.Sprintf("Title"),
			text.FgGreen.Sprintf("Category"),
			text.FgGreen.Sprintf("Status"),
		})
		for _, task := range matches {
			t.AppendRow(table.Row{shortID(task.ID), task.Title, task.Category, task.Status})
		}
		t.Render()
	}),
}

func init() {
	searchCmd.Flags().StringP("category", "c", "", "Limit search to a category")
	searchCmd.Flags().Bool("json", false, "JSON output")
}
