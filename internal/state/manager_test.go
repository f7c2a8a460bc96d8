package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/balkashynov/listo/internal/ids"
	"github.com/balkashynov/listo/internal/jsonlog"
	"github.com/balkashynov/listo/internal/models"
	"github.com/balkashynov/listo/internal/store"
)

// fakeClient is a scripted in-memory store.Client
type fakeClient struct {
	mu         sync.Mutex
	tasks      []models.Task
	categories []models.Category
	branding   *models.Branding

	failList   bool
	failInsert bool
	failUpdate bool
	failDelete bool

	inserts int
	updates int
	deletes int
}

func (f *fakeClient) ListRows(ctx context.Context, collection string, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return errors.New("backend down")
	}
	switch collection {
	case store.Tasks:
		*out.(*[]models.Task) = append([]models.Task(nil), f.tasks...)
	case store.Categories:
		*out.(*[]models.Category) = append([]models.Category(nil), f.categories...)
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
	return nil
}

func (f *fakeClient) InsertRow(ctx context.Context, collection string, record any, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	if f.failInsert {
		return errors.New("insert refused")
	}
	task := record.(models.Task)
	task.ID = fmt.Sprintf("srv_%d", f.inserts)
	f.tasks = append(f.tasks, task)
	*out.(*models.Task) = task
	return nil
}

func (f *fakeClient) UpdateRow(ctx context.Context, collection, id string, patch map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	if f.failUpdate {
		return errors.New("update refused")
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			if completed, ok := patch["completed"].(bool); ok {
				f.tasks[i].Completed = completed
			}
			if status, ok := patch["status"].(string); ok {
				f.tasks[i].Status = status
			}
		}
	}
	return nil
}

func (f *fakeClient) UpsertRow(ctx context.Context, collection string, record any) error {
	return nil
}

func (f *fakeClient) DeleteRow(ctx context.Context, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	if f.failDelete {
		return errors.New("delete refused")
	}
	kept := f.tasks[:0]
	for _, t := range f.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	f.tasks = kept
	return nil
}

func (f *fakeClient) GetSingleton(ctx context.Context, collection, id string, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return errors.New("backend down")
	}
	if f.branding == nil {
		return store.ErrNotFound
	}
	*out.(*models.Branding) = *f.branding
	return nil
}

func (f *fakeClient) UploadFile(ctx context.Context, bucket, filename string, data []byte, contentType string) (string, error) {
	return "https://example.test/" + bucket + "/" + filename, nil
}

// captureScheduler records every task handed to it
type captureScheduler struct {
	scheduled []models.Task
}

func (c *captureScheduler) Schedule(task models.Task) {
	c.scheduled = append(c.scheduled, task)
}

func newTestManager(client *fakeClient) (*Manager, *captureScheduler) {
	sched := &captureScheduler{}
	return New(client, sched, jsonlog.New(io.Discard)), sched
}

func task(id, title, category, status string, completed bool) models.Task {
	return models.Task{ID: id, Title: title, Category: category, Status: status, Completed: completed}
}

func TestTasksByCategory(t *testing.T) {
	client := &fakeClient{tasks: []models.Task{
		task("1", "Call Max", "work", models.StatusToday, false),
		task("2", "Practice piano", "music", models.StatusToday, false),
		task("3", "Finalize presentation", "work", models.StatusDone, true),
	}}
	m, _ := newTestManager(client)
	m.FetchTasks(context.Background())

	if got := m.TasksByCategory(models.AllCategoryID); len(got) != 3 {
		t.Fatalf("sentinel category returned %d tasks, want 3", len(got))
	}

	work := m.TasksByCategory("work")
	if len(work) != 2 {
		t.Fatalf("work returned %d tasks, want 2", len(work))
	}
	for _, task := range work {
		if task.Category != "work" {
			t.Errorf("task %s has category %q, want work", task.ID, task.Category)
		}
	}

	if got := m.TasksByCategory("nope"); len(got) != 0 {
		t.Fatalf("unknown category returned %d tasks, want 0", len(got))
	}
}

func TestFetchTasksIdempotent(t *testing.T) {
	client := &fakeClient{tasks: []models.Task{
		task("1", "a", "work", models.StatusToday, false),
		task("2", "b", "home", models.StatusLate, false),
	}}
	m, _ := newTestManager(client)

	m.FetchTasks(context.Background())
	first := m.Tasks()
	m.FetchTasks(context.Background())
	second := m.Tasks()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("fetching twice changed the task list:\n%v\n%v", first, second)
	}
}

func TestFetchTasksFailureKeepsState(t *testing.T) {
	client := &fakeClient{tasks: []models.Task{task("1", "a", "work", models.StatusToday, false)}}
	m, _ := newTestManager(client)
	m.FetchTasks(context.Background())

	client.mu.Lock()
	client.failList = true
	client.mu.Unlock()
	m.FetchTasks(context.Background())

	if got := m.Tasks(); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("failed fetch disturbed state: %v", got)
	}
	if m.IsLoading() {
		t.Error("isLoading stuck after failed fetch")
	}
}

func TestToggleCycle(t *testing.T) {
	// A late task never returns to late: done after one toggle, today
	// after two
	client := &fakeClient{tasks: []models.Task{task("1", "overdue", "work", models.StatusLate, false)}}
	m, _ := newTestManager(client)
	ctx := context.Background()
	m.FetchTasks(ctx)

	m.ToggleTask(ctx, "1")
	got := m.Tasks()[0]
	if !got.Completed || got.Status != models.StatusDone {
		t.Fatalf("after first toggle: completed=%v status=%q, want true/done", got.Completed, got.Status)
	}

	m.ToggleTask(ctx, "1")
	got = m.Tasks()[0]
	if got.Completed || got.Status != models.StatusToday {
		t.Fatalf("after second toggle: completed=%v status=%q, want false/today", got.Completed, got.Status)
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	client := &fakeClient{tasks: []models.Task{task("1", "a", "work", models.StatusToday, false)}}
	m, _ := newTestManager(client)
	ctx := context.Background()
	m.FetchTasks(ctx)

	m.ToggleTask(ctx, "missing")

	if client.updates != 0 {
		t.Errorf("toggle on unknown id hit the remote store %d times", client.updates)
	}
	if got := m.Tasks()[0]; got.Completed {
		t.Error("toggle on unknown id mutated another task")
	}
}

func TestToggleFailureResyncs(t *testing.T) {
	client := &fakeClient{tasks: []models.Task{task("1", "a", "work", models.StatusToday, false)}}
	m, _ := newTestManager(client)
	ctx := context.Background()
	m.FetchTasks(ctx)

	client.mu.Lock()
	client.failUpdate = true
	client.mu.Unlock()
	m.ToggleTask(ctx, "1")

	// Recovery refetches from the server, which never saw the flip
	got := m.Tasks()[0]
	if got.Completed || got.Status != models.StatusToday {
		t.Fatalf("failed toggle left optimistic state: completed=%v status=%q", got.Completed, got.Status)
	}
}

func TestCategoryCounts(t *testing.T) {
	client := &fakeClient{
		tasks: []models.Task{
			task("1", "a", "work", models.StatusToday, false),
			task("2", "b", "home", models.StatusToday, false),
			task("3", "c", "work", models.StatusToday, false),
		},
		categories: []models.Category{
			{ID: "work", Name: "Work"},
			{ID: "home", Name: "Home"},
		},
	}
	m, _ := newTestManager(client)
	ctx := context.Background()
	m.FetchTasks(ctx)
	m.FetchCategories(ctx)

	counts := map[string]int{}
	for _, c := range m.Categories() {
		counts[c.ID] = c.TaskCount
	}
	want := map[string]int{"all": 3, "work": 2, "home": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}

	// Counts follow the live task list with no caching
	m.DeleteTask(ctx, "1")
	counts = map[string]int{}
	for _, c := range m.Categories() {
		counts[c.ID] = c.TaskCount
	}
	want = map[string]int{"all": 2, "work": 1, "home": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("counts after delete = %v, want %v", counts, want)
	}
}

func TestFetchCategoriesPrependsSentinel(t *testing.T) {
	client := &fakeClient{categories: []models.Category{{ID: "work", Name: "Work"}}}
	m, _ := newTestManager(client)
	m.FetchCategories(context.Background())

	got := m.Categories()
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}
	if got[0].ID != models.AllCategoryID {
		t.Errorf("first category is %q, want the sentinel", got[0].ID)
	}

	// Failure leaves the previous list untouched
	client.mu.Lock()
	client.failList = true
	client.mu.Unlock()
	m.FetchCategories(context.Background())
	if got := m.Categories(); len(got) != 2 {
		t.Fatalf("failed fetch disturbed categories: %v", got)
	}
}

func TestDeleteRollback(t *testing.T) {
	client := &fakeClient{tasks: []models.Task{
		task("1", "a", "work", models.StatusToday, false),
		task("2", "b", "home", models.StatusLate, false),
		task("3", "c", "work", models.StatusDone, true),
	}}
	m, _ := newTestManager(client)
	ctx := context.Background()
	m.FetchTasks(ctx)
	before := m.Tasks()

	client.mu.Lock()
	client.failDelete = true
	client.mu.Unlock()
	m.DeleteTask(ctx, "2")

	after := m.Tasks()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("rollback did not restore the exact snapshot:\nbefore %v\nafter  %v", before, after)
	}
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	client := &fakeClient{tasks: []models.Task{task("1", "a", "work", models.StatusToday, false)}}
	m, _ := newTestManager(client)
	ctx := context.Background()
	m.FetchTasks(ctx)

	m.DeleteTask(ctx, "missing")

	if client.deletes != 0 {
		t.Errorf("delete on unknown id hit the remote store %d times", client.deletes)
	}
	if got := m.Tasks(); len(got) != 1 {
		t.Fatalf("delete on unknown id changed the list: %v", got)
	}
}

func TestDeleteSuccess(t *testing.T) {
	client := &fakeClient{tasks: []models.Task{
		task("1", "a", "work", models.StatusToday, false),
		task("2", "b", "home", models.StatusLate, false),
	}}
	m, _ := newTestManager(client)
	ctx := context.Background()
	m.FetchTasks(ctx)

	m.DeleteTask(ctx, "1")
	got := m.Tasks()
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("delete left %v", got)
	}
}

func TestAddReconciliation(t *testing.T) {
	client := &fakeClient{tasks: []models.Task{task("1", "existing", "work", models.StatusToday, false)}}
	m, _ := newTestManager(client)
	ctx := context.Background()
	m.FetchTasks(ctx)

	m.AddTask(ctx, models.Task{Title: "Buy milk", Category: "home", Status: models.StatusToday})

	tasks := m.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	// Optimistic prepend keeps the new task first, now under the server id
	created := tasks[0]
	if ids.IsTemp(created.ID) {
		t.Errorf("temporary id %q survived reconciliation", created.ID)
	}
	if !strings.HasPrefix(created.ID, "srv_") {
		t.Errorf("created task id = %q, want server-assigned", created.ID)
	}
	if created.Title != "Buy milk" || created.Category != "home" {
		t.Errorf("server record lost draft fields: %+v", created)
	}
	for _, task := range tasks {
		if ids.IsTemp(task.ID) {
			t.Errorf("temporary id %q still present in list", task.ID)
		}
	}
}

func TestAddFailureResyncs(t *testing.T) {
	client := &fakeClient{failInsert: true}
	m, _ := newTestManager(client)
	ctx := context.Background()

	m.AddTask(ctx, models.Task{Title: "doomed", Category: "work", Status: models.StatusToday})

	// The refetch drops the never-persisted optimistic row
	if got := m.Tasks(); len(got) != 0 {
		t.Fatalf("optimistic row survived a failed insert: %v", got)
	}
}

func TestAddSchedulesReminder(t *testing.T) {
	client := &fakeClient{}
	m, sched := newTestManager(client)

	m.AddTask(context.Background(), models.Task{Title: "remind me", Category: "all", Status: models.StatusToday})

	if len(sched.scheduled) != 1 {
		t.Fatalf("scheduler saw %d tasks, want 1", len(sched.scheduled))
	}
	if got := sched.scheduled[0]; got.Title != "remind me" || !ids.IsTemp(got.ID) {
		t.Errorf("scheduler got %+v, want the optimistic record", got)
	}
}

func TestAddToggleToggleScenario(t *testing.T) {
	client := &fakeClient{}
	m, _ := newTestManager(client)
	ctx := context.Background()

	m.AddTask(ctx, models.Task{Title: "Buy milk", Category: "home", Completed: false, Status: models.StatusToday})
	tasks := m.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Fatalf("after add: %v", tasks)
	}
	id := tasks[0].ID

	m.ToggleTask(ctx, id)
	got := m.Tasks()[0]
	if !got.Completed || got.Status != models.StatusDone {
		t.Fatalf("after toggle: completed=%v status=%q", got.Completed, got.Status)
	}

	m.ToggleTask(ctx, id)
	got = m.Tasks()[0]
	if got.Completed || got.Status != models.StatusToday {
		t.Fatalf("after second toggle: completed=%v status=%q", got.Completed, got.Status)
	}
}

func TestBrandingDefaultsAndOverride(t *testing.T) {
	client := &fakeClient{}
	m, _ := newTestManager(client)
	ctx := context.Background()

	// No remote row yet: defaults stay, not an error
	m.FetchBranding(ctx)
	if got := m.Branding(); got != models.DefaultBranding() {
		t.Fatalf("missing row changed branding: %+v", got)
	}

	// Partial override keeps defaults for blank fields
	client.mu.Lock()
	client.branding = &models.Branding{ID: models.BrandingID, Name: "Uni Planner"}
	client.mu.Unlock()
	m.FetchBranding(ctx)

	got := m.Branding()
	if got.Name != "Uni Planner" {
		t.Errorf("name = %q, want override", got.Name)
	}
	if got.Tagline != models.DefaultBranding().Tagline {
		t.Errorf("tagline = %q, want default kept", got.Tagline)
	}

	// Failure keeps the previous value, override included
	client.mu.Lock()
	client.failList = true
	client.mu.Unlock()
	m.FetchBranding(ctx)
	if got := m.Branding(); got.Name != "Uni Planner" {
		t.Errorf("failed fetch reset branding to %q", got.Name)
	}
}
