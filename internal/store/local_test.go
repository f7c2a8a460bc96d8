package store

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/balkashynov/listo/internal/models"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	local, err := OpenLocal(":memory:", t.TempDir())
	if err != nil {
		t.Fatalf("OpenLocal: %v", err)
	}
	t.Cleanup(func() { local.Close() })
	return local
}

func TestLocalTaskRoundTrip(t *testing.T) {
	local := newTestLocal(t)
	ctx := context.Background()

	draft := models.Task{Title: "Buy milk", Category: "home", Status: models.StatusToday}
	var created models.Task
	if err := local.InsertRow(ctx, Tasks, draft, &created); err != nil {
		t.Fatalf("InsertRow: %v", err)
	}
	if created.ID == "" {
		t.Fatal("insert did not assign an id")
	}
	if created.Title != "Buy milk" {
		t.Errorf("created = %+v", created)
	}

	var rows []models.Task
	if err := local.ListRows(ctx, Tasks, &rows); err != nil {
		t.Fatalf("ListRows: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != created.ID {
		t.Fatalf("rows = %v", rows)
	}

	patch := map[string]any{"completed": true, "status": models.StatusDone}
	if err := local.UpdateRow(ctx, Tasks, created.ID, patch); err != nil {
		t.Fatalf("UpdateRow: %v", err)
	}
	rows = nil
	if err := local.ListRows(ctx, Tasks, &rows); err != nil {
		t.Fatalf("ListRows: %v", err)
	}
	if !rows[0].Completed || rows[0].Status != models.StatusDone {
		t.Errorf("update not applied: %+v", rows[0])
	}

	if err := local.DeleteRow(ctx, Tasks, created.ID); err != nil {
		t.Fatalf("DeleteRow: %v", err)
	}
	rows = nil
	if err := local.ListRows(ctx, Tasks, &rows); err != nil {
		t.Fatalf("ListRows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows after delete = %v", rows)
	}
}

func TestLocalBrandingSingleton(t *testing.T) {
	local := newTestLocal(t)
	ctx := context.Background()

	var row models.Branding
	err := local.GetSingleton(ctx, Branding, models.BrandingID, &row)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing singleton: err = %v, want ErrNotFound", err)
	}

	record := models.Branding{ID: models.BrandingID, Name: "Uni Planner", PrimaryColor: "#FF9F43"}
	if err := local.UpsertRow(ctx, Branding, record); err != nil {
		t.Fatalf("UpsertRow: %v", err)
	}
	// Upsert again with a changed field rather than inserting a duplicate
	record.Tagline = "Plan everything"
	if err := local.UpsertRow(ctx, Branding, record); err != nil {
		t.Fatalf("second UpsertRow: %v", err)
	}

	if err := local.GetSingleton(ctx, Branding, models.BrandingID, &row); err != nil {
		t.Fatalf("GetSingleton: %v", err)
	}
	if row.Name != "Uni Planner" || row.Tagline != "Plan everything" {
		t.Errorf("singleton = %+v", row)
	}
}

func TestLocalCategoryInsertKeepsGivenID(t *testing.T) {
	local := newTestLocal(t)
	ctx := context.Background()

	var created models.Category
	if err := local.InsertRow(ctx, Categories, models.Category{ID: "work", Name: "Work"}, &created); err != nil {
		t.Fatalf("InsertRow: %v", err)
	}
	if created.ID != "work" {
		t.Errorf("id = %q, want the caller-provided one", created.ID)
	}
}

func TestLocalUnknownCollection(t *testing.T) {
	local := newTestLocal(t)
	var out []models.Task
	if err := local.ListRows(context.Background(), "sessions", &out); err == nil {
		t.Fatal("unknown collection accepted")
	}
}

func TestLocalUploadFile(t *testing.T) {
	local := newTestLocal(t)

	url, err := local.UploadFile(context.Background(), "branding", "logo.png", []byte{0x89, 0x50}, "image/png")
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if !strings.HasPrefix(url, "file://") {
		t.Fatalf("url = %q, want file:// scheme", url)
	}

	data, err := os.ReadFile(strings.TrimPrefix(url, "file://"))
	if err != nil {
		t.Fatalf("reading uploaded file: %v", err)
	}
	if len(data) != 2 || data[0] != 0x89 {
		t.Errorf("uploaded bytes = %v", data)
	}
}
