package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/listo/internal/models"
	"github.com/balkashynov/listo/internal/parser"
	"github.com/balkashynov/listo/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [task title]",
	Short: "Add a new task",
	Long: `Add a new task with optional date, time, note and category.

Modes:
  Interactive: listo add -i (or just 'listo add' with no arguments)
  Quick: listo add "Task title" (with optional flags)
  Smart parsing: listo add "Practice piano @music due:tomorrow at:16:00"

Smart parsing syntax:
  @category   - Category id
  due:...     - Due date (dd/mm/yyyy, today, tomorrow, X days, X weeks)
  at:HH:MM    - Due time (schedules a reminder when a date is set too)`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		loadAll(cmd.Context())
		interactive, _ := cmd.Flags().GetBool("interactive")

		// If no args and not explicitly interactive, go interactive
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			prefilled := make(map[string]string)
			if len(args) > 0 {
				prefilled["title"] = strings.Join(args, " ")
			}
			if err := tui.RunAddTaskTUI(appState, prefilled); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		title := strings.Join(args, " ")
		parsed := parser.ParseTitle(title)
		if len(parsed.Errors) > 0 {
			fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			return
		}

		runDirectAdd(cmd, parsed)
	},
}

// runDirectAdd creates the task without the TUI
func runDirectAdd(cmd *cobra.Command, parsed parser.ParsedTask) {
	title := parsed.Title
	category := parsed.Category
	date := parsed.Date
	clock := parsed.Time

	// Override with explicit flags (flags take precedence)
	if flagCategory, _ := cmd.Flags().GetString("category"); flagCategory != "" {
		category = flagCategory
	}
	if flagDue, _ := cmd.Flags().GetString("due"); flagDue != "" {
		parsedDate, err := parser.ParseDate(flagDue)
		if err != nil {
			fmt.Printf("Error parsing due date: %v\n", err)
			return
		}
		date = parsedDate
	}
	if flagAt, _ := cmd.Flags().GetString("at"); flagAt != "" {
		parsedClock, err := parser.ParseClock(flagAt)
		if err != nil {
			fmt.Printf("Error parsing time: %v\n", err)
			return
		}
		clock = parsedClock
	}
	note, _ := cmd.Flags().GetString("note")

	if title == "" {
		fmt.Println("Error: task title is required")
		return
	}
	if category == "" {
		category = models.AllCategoryID
	}

	draft := models.Task{
		Title:     title,
		Date:      date,
		Time:      clock,
		Note:      note,
		Category:  category,
		Completed: false,
		Status:    parser.DeriveStatus(date, time.Now()),
	}

	appState.AddTask(cmd.Context(), draft)

	fmt.Printf("✅ Created task: %s\n", title)
	if category != models.AllCategoryID {
		fmt.Printf("  Category: %s\n", category)
	}
	if date != "" {
		fmt.Printf("  %s\n", parser.FormatDate(date))
	}
	if clock != "" {
		fmt.Printf("  At: %s\n", clock)
	}
}

func init() {
	// Add flags to the add command
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("category", "c", "", "Category id")
	addCmd.Flags().StringP("due", "", "", "Due date: dd/mm/yyyy, today, tomorrow, X days, X weeks")
	addCmd.Flags().StringP("at", "", "", "Due time: HH:MM (24-hour)")
	addCmd.Flags().StringP("note", "", "", "Additional notes")
}
