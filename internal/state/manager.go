package state

import (
	"context"
	"sync"

	"github.com/balkashynov/listo/internal/ids"
	"github.com/balkashynov/listo/internal/jsonlog"
	"github.com/balkashynov/listo/internal/models"
	"github.com/balkashynov/listo/internal/notify"
	"github.com/balkashynov/listo/internal/store"
)

// Manager owns the in-memory task and category collections and keeps them
// reconciled against the remote store. Mutations apply optimistically and
// recover from remote failure by rollback (delete) or a full refetch
// (add, toggle). No error ever crosses this boundary: failures degrade to
// stale-but-consistent state plus a log line.
//
// Construct one Manager at startup and hand it to every consumer. All
// methods are safe for concurrent use; each operation re-reads the latest
// snapshot after its remote call returns, so overlapping operations on
// independent tasks settle last-write-wins.
type Manager struct {
	mu     sync.Mutex
	client store.Client
	sched  notify.Scheduler
	log    *jsonlog.Logger

	tasks      []models.Task
	categories []models.Category // sentinel first, then remote rows
	branding   models.Branding
	loading    bool
}

func New(client store.Client, sched notify.Scheduler, log *jsonlog.Logger) *Manager {
	return &Manager{
		client:     client,
		sched:      sched,
		log:        log,
		categories: []models.Category{models.AllCategory()},
		branding:   models.DefaultBranding(),
	}
}

// Tasks returns a copy of the current task list
func (m *Manager) Tasks() []models.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Task(nil), m.tasks...)
}

// TasksByCategory returns all tasks for the sentinel category, otherwise
// only tasks whose category matches. Pure read, safe during render.
func (m *Manager) TasksByCategory(categoryID string) []models.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	if categoryID == models.AllCategoryID {
		return append([]models.Task(nil), m.tasks...)
	}
	var out []models.Task
	for _, t := range m.tasks {
		if t.Category == categoryID {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the category list with live task counts. Counts are
// recomputed from the current task list on every call.
func (m *Manager) Categories() []models.CategoryView {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CategoryView, 0, len(m.categories))
	for _, c := range m.categories {
		view := models.CategoryView{Category: c}
		if c.ID == models.AllCategoryID {
			view.TaskCount = len(m.tasks)
		} else {
			for _, t := range m.tasks {
				if t.Category == c.ID {
					view.TaskCount++
				}
			}
		}
		out = append(out, view)
	}
	return out
}

// Branding returns the cached branding record
func (m *Manager) Branding() models.Branding {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.branding
}

// IsLoading reports whether the initial task fetch is in flight
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// FetchTasks replaces the task list with the remote rows. On failure the
// previous list stays untouched. This is the resynchronization primitive
// the mutation recovery paths rely on.
func (m *Manager) FetchTasks(ctx context.Context) {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	var rows []models.Task
	err := m.client.ListRows(ctx, store.Tasks, &rows)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.log.Error("fetch tasks failed", map[string]any{"error": err.Error()})
		return
	}
	m.tasks = rows
}

// FetchCategories replaces the category list with the sentinel followed
// by the remote rows. On failure the previous list stays untouched.
func (m *Manager) FetchCategories(ctx context.Context) {
	var rows []models.Category
	if err := m.client.ListRows(ctx, store.Categories, &rows); err != nil {
		m.log.Error("fetch categories failed", map[string]any{"error": err.Error()})
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append([]models.Category{models.AllCategory()}, rows...)
}

// FetchBranding overwrites the branding cache from the remote singleton,
// substituting defaults for blank fields. A missing row means "no
// override yet" and is not an error.
func (m *Manager) FetchBranding(ctx context.Context) {
	var row models.Branding
	err := m.client.GetSingleton(ctx, store.Branding, models.BrandingID, &row)
	if err != nil {
		if err != store.ErrNotFound {
			m.log.Error("fetch branding failed", map[string]any{"error": err.Error()})
		}
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.branding = models.DefaultBranding().Merge(row)
}

// RefreshCategories re-fetches categories after an admin edit
func (m *Manager) RefreshCategories(ctx context.Context) { m.FetchCategories(ctx) }

// RefreshBranding re-fetches branding after an admin edit
func (m *Manager) RefreshBranding(ctx context.Context) { m.FetchBranding(ctx) }

// AddTask inserts draft optimistically at the head of the list under a
// temporary id, schedules its reminder, then persists it. On success the
// optimistic record is replaced in place by the server row, matched by
// the temporary id. On failure the whole list is refetched, which drops
// the never-persisted optimistic row.
func (m *Manager) AddTask(ctx context.Context, draft models.Task) {
	draft.ID = ""
	optimistic := draft
	optimistic.ID = ids.NewTempID()

	m.mu.Lock()
	m.tasks = append([]models.Task{optimistic}, m.tasks...)
	m.mu.Unlock()

	// Best-effort; persistence does not wait on it
	m.sched.Schedule(optimistic)

	var created models.Task
	if err := m.client.InsertRow(ctx, store.Tasks, draft, &created); err != nil {
		m.log.Error("add task failed", map[string]any{"title": draft.Title, "error": err.Error()})
		m.FetchTasks(ctx)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tasks {
		if m.tasks[i].ID == optimistic.ID {
			m.tasks[i] = created
			return
		}
	}
	// The optimistic row is gone (a refetch raced the insert); keep the
	// confirmed row visible
	m.tasks = append([]models.Task{created}, m.tasks...)
}

// ToggleTask flips completed on the task with the given id. Status moves
// to "done" on completion and always back to "today" on un-completion,
// never to "late" or "upcoming". Unknown ids are a silent no-op. Remote
// failure recovers via a full refetch.
func (m *Manager) ToggleTask(ctx context.Context, id string) {
	m.mu.Lock()
	var completed bool
	found := false
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			completed = !m.tasks[i].Completed
			m.tasks[i].Completed = completed
			if completed {
				m.tasks[i].Status = models.StatusDone
			} else {
				m.tasks[i].Status = models.StatusToday
			}
			found = true
			break
		}
	}
	m.mu.Unlock()
	if !found {
		return
	}

	status := models.StatusToday
	if completed {
		status = models.StatusDone
	}
	patch := map[string]any{"completed": completed, "status": status}
	if err := m.client.UpdateRow(ctx, store.Tasks, id, patch); err != nil {
		m.log.Error("toggle task failed", map[string]any{"task_id": id, "error": err.Error()})
		m.FetchTasks(ctx)
	}
}

// DeleteTask removes the task optimistically and deletes it remotely. On
// failure the pre-delete list is restored verbatim. Unknown ids are a
// silent no-op.
func (m *Manager) DeleteTask(ctx context.Context, id string) {
	m.mu.Lock()
	snapshot := append([]models.Task(nil), m.tasks...)
	kept := m.tasks[:0:0]
	found := false
	for _, t := range m.tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if found {
		m.tasks = kept
	}
	m.mu.Unlock()
	if !found {
		return
	}

	if err := m.client.DeleteRow(ctx, store.Tasks, id); err != nil {
		m.log.Error("delete task failed", map[string]any{"task_id": id, "error": err.Error()})
		m.mu.Lock()
		m.tasks = snapshot
		m.mu.Unlock()
	}
}
