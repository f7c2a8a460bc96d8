package models

// Task status values as shown in the list screens
const (
	StatusLate     = "late"
	StatusToday    = "today"
	StatusDone     = "done"
	StatusUpcoming = "upcoming"
)

// Task represents a todo item
type Task struct {
	ID        string `gorm:"primarykey" json:"id,omitempty"`
	Title     string `gorm:"not null" json:"title"`
	Date      string `json:"date,omitempty"` // calendar date, "2006-01-02"
	Time      string `json:"time,omitempty"` // clock time, "15:04"
	Note      string `json:"note,omitempty"`
	Category  string `gorm:"not null" json:"category"` // Category ID
	Completed bool   `gorm:"default:false" json:"completed"`
	Status    string `gorm:"default:today" json:"status"` // late, today, done, upcoming
}

// Buckets holds tasks grouped into the sections a task list renders,
// in display order: late first, then today, then done.
type Buckets struct {
	Late  []Task
	Today []Task
	Done  []Task
}

// BucketTasks splits tasks by status. Upcoming tasks land in the today
// section so they are never hidden from the list.
func BucketTasks(tasks []Task) Buckets {
	var b Buckets
	for _, t := range tasks {
		switch t.Status {
		case StatusLate:
			b.Late = append(b.Late, t)
		case StatusDone:
			b.Done = append(b.Done, t)
		default:
			b.Today = append(b.Today, t)
		}
	}
	return b
}
