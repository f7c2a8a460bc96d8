package models

// AllCategoryID is the reserved id of the built-in category that shows
// every task. It never exists in the remote store and cannot be deleted.
const AllCategoryID = "all"

// Category represents a task grouping as stored remotely
type Category struct {
	ID    string `gorm:"primarykey" json:"id,omitempty"`
	Name  string `gorm:"not null" json:"name"`
	Icon  string `json:"icon"`  // symbolic icon name, resolved by the UI
	Color string `json:"color"` // display color, "#RRGGBB"
}

// CategoryView is a Category plus its live task count. Counts are
// recomputed from the task list on every read, never stored.
type CategoryView struct {
	Category
	TaskCount int `json:"taskCount"`
}

// AllCategory returns the sentinel "all" category
func AllCategory() Category {
	return Category{
		ID:    AllCategoryID,
		Name:  "All",
		Icon:  "list.bullet",
		Color: "#5B9EF8",
	}
}
