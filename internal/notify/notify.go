package notify

import (
	"strings"
	"time"

	"github.com/balkashynov/listo/internal/jsonlog"
	"github.com/balkashynov/listo/internal/models"
)

// Scheduler arms a local reminder for a task. Scheduling is best-effort:
// implementations swallow their own failures, callers never wait on it.
type Scheduler interface {
	Schedule(task models.Task)
}

// Reminder is the in-process Scheduler. It emits the reminder through the
// logger when the task's due moment arrives. Timers die with the process;
// there is no durable reminder queue.
type Reminder struct {
	log *jsonlog.Logger
}

func NewReminder(log *jsonlog.Logger) *Reminder {
	return &Reminder{log: log}
}

func (r *Reminder) Schedule(task models.Task) {
	fireAt, ok := FireTime(task, time.Now())
	if !ok {
		return
	}
	title := task.Title
	time.AfterFunc(time.Until(fireAt), func() {
		r.log.Info("Task due soon! Don't forget: "+title, map[string]any{
			"task_id": task.ID,
			"due":     fireAt.Format(time.RFC3339),
		})
	})
}

// FireTime computes when the reminder for task should fire. ok is false
// when the task has no date or time, either fails to parse, or the moment
// has already passed.
func FireTime(task models.Task, now time.Time) (time.Time, bool) {
	if task.Date == "" || task.Time == "" {
		return time.Time{}, false
	}

	// Tolerate full timestamps in either field, as the backend may
	// return "2006-01-02T15:04:05" for date columns
	datePart, _, _ := strings.Cut(task.Date, "T")
	timePart := task.Time
	if _, after, found := strings.Cut(task.Time, "T"); found {
		timePart = after
	}
	if len(timePart) > 5 {
		timePart = timePart[:5]
	}

	fireAt, err := time.ParseInLocation("2006-01-02 15:04", datePart+" "+timePart, now.Location())
	if err != nil {
		return time.Time{}, false
	}
	if !fireAt.After(now) {
		return time.Time{}, false
	}
	return fireAt, true
}
