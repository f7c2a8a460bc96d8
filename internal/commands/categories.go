package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/balkashynov/listo/internal/models"
	"github.com/balkashynov/listo/internal/parser"
	"github.com/balkashynov/listo/internal/store"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "Show and manage categories",
	Long: `Show categories with live task counts.

The add/edit/rm subcommands are the admin flow: they write straight to
the backend and then refresh the cached category list. The built-in
"all" category cannot be edited or deleted.`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"),
			text.FgGreen.Sprintf("Name"),
			text.FgGreen.Sprintf("Icon"),
			text.FgGreen.Sprintf("Color"),
			text.FgGreen.Sprintf("Tasks"),
		})
		for _, c := range appState.Categories() {
			t.AppendRow(table.Row{shortID(c.ID), c.Name, c.Icon, c.Color, c.TaskCount})
		}
		t.Render()
	}),
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		icon, _ := cmd.Flags().GetString("icon")
		color, _ := cmd.Flags().GetString("color")
		normalized, err := parser.NormalizeHexColor(color)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		category := models.Category{Name: args[0], Icon: icon, Color: normalized}
		var created models.Category
		if err := appClient.InsertRow(cmd.Context(), store.Categories, category, &created); err != nil {
			fmt.Printf("Error creating category: %v\n", err)
			return
		}

		appState.RefreshCategories(cmd.Context())
		fmt.Printf("✅ Created category %s: %s\n", shortID(created.ID), created.Name)
	}),
}

var categoriesEditCmd = &cobra.Command{
	Use:   "edit [category-id]",
	Short: "Edit a category",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		category, err := resolveCategory(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if category.ID == models.AllCategoryID {
			fmt.Println("Error: the built-in 'all' category cannot be edited")
			return
		}

		patch := map[string]any{}
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			patch["name"] = name
		}
		if icon, _ := cmd.Flags().GetString("icon"); icon != "" {
			patch["icon"] = icon
		}
		if color, _ := cmd.Flags().GetString("color"); color != "" {
			normalized, err := parser.NormalizeHexColor(color)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			patch["color"] = normalized
		}
		if len(patch) == 0 {
			fmt.Println("Nothing to change. Use --name, --icon or --color.")
			return
		}

		if err := appClient.UpdateRow(cmd.Context(), store.Categories, category.ID, patch); err != nil {
			fmt.Printf("Error updating category: %v\n", err)
			return
		}

		appState.RefreshCategories(cmd.Context())
		fmt.Printf("✅ Updated category: %s\n", category.Name)
	}),
}

var categoriesRmCmd = &cobra.Command{
	Use:   "rm [category-id]",
	Short: "Delete a category",
	Long: `Delete a category from the backend.

Tasks keep their category reference; they simply stop matching any
count bucket until they are reassigned.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		category, err := resolveCategory(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if category.ID == models.AllCategoryID {
			fmt.Println("Error: the built-in 'all' category cannot be deleted")
			return
		}

		if err := appClient.DeleteRow(cmd.Context(), store.Categories, category.ID); err != nil {
			fmt.Printf("Error deleting category: %v\n", err)
			return
		}

		appState.RefreshCategories(cmd.Context())
		fmt.Printf("🗑  Deleted category: %s\n", category.Name)
	}),
}

// resolveCategory finds a category by full id or unique prefix
func resolveCategory(id string) (models.Category, error) {
	var matches []models.Category
	for _, c := range appState.Categories() {
		if c.ID == id {
			return c.Category, nil
		}
		if strings.HasPrefix(c.ID, id) {
			matches = append(matches, c.Category)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Category{}, fmt.Errorf("category '%s' not found", id)
	default:
		return models.Category{}, fmt.Errorf("category id '%s' is ambiguous (%d matches)", id, len(matches))
	}
}

func init() {
	categoriesAddCmd.Flags().String("icon", "tag", "Icon name")
	categoriesAddCmd.Flags().String("color", "#5B9EF8", "Display color (#RRGGBB)")
	categoriesEditCmd.Flags().String("name", "", "New name")
	categoriesEditCmd.Flags().String("icon", "", "New icon name")
	categoriesEditCmd.Flags().String("color", "", "New display color (#RRGGBB)")

	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesEditCmd)
	categoriesCmd.AddCommand(categoriesRmCmd)
}
